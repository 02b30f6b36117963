package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/safehub-io/safehub/internal/application/pricing/dto"
	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// CalculatePricingUseCase prices a set of modules for a customer's usage.
type CalculatePricingUseCase struct {
	calculator *pricing.Calculator
	logger     logger.Interface
}

// NewCalculatePricingUseCase creates a new calculate pricing use case
func NewCalculatePricingUseCase(
	calculator *pricing.Calculator,
	logger logger.Interface,
) *CalculatePricingUseCase {
	return &CalculatePricingUseCase{
		calculator: calculator,
		logger:     logger,
	}
}

// Execute executes the calculate pricing use case
func (uc *CalculatePricingUseCase) Execute(
	ctx context.Context,
	request dto.CalculatePricingRequest,
) (*dto.PricingBreakdownResponse, error) {
	cfg, err := buildConfig(request.ModuleIDs, request.UserCount, request.BuildingCount, request.BillingCycle, request.DiscountCode)
	if err != nil {
		return nil, err
	}

	breakdown, err := uc.calculator.Calculate(ctx, cfg)
	if err != nil {
		return nil, mapPricingError(uc.logger, err)
	}

	response := toBreakdownResponse(breakdown)
	return &response, nil
}

func buildConfig(moduleIDs []string, userCount, buildingCount int, billingCycle, discountCode string) (pricing.Config, error) {
	if len(moduleIDs) == 0 {
		return pricing.Config{}, errors.NewValidationError("at least one module ID is required")
	}

	cycle := pricing.BillingCycleMonthly
	if billingCycle != "" {
		cycle = pricing.BillingCycle(billingCycle)
		if !cycle.IsValid() {
			return pricing.Config{}, errors.NewValidationError(fmt.Sprintf("invalid billing cycle: %s", billingCycle))
		}
	}

	return pricing.Config{
		ModuleIDs:     moduleIDs,
		UserCount:     userCount,
		BuildingCount: buildingCount,
		BillingCycle:  cycle,
		DiscountCode:  discountCode,
	}, nil
}

// mapPricingError translates domain pricing errors into the API error
// taxonomy. Unknown modules and codes are not-found; a code failing its
// gates is a validation failure.
func mapPricingError(log logger.Interface, err error) error {
	switch {
	case stderrors.Is(err, pricing.ErrModuleNotFound):
		return errors.NewNotFoundError(err.Error())
	case stderrors.Is(err, pricing.ErrDiscountNotFound):
		return errors.NewNotFoundError(err.Error())
	case stderrors.Is(err, pricing.ErrDiscountExpired),
		stderrors.Is(err, pricing.ErrDiscountMinimumSpend),
		stderrors.Is(err, pricing.ErrDiscountNotApplicable),
		stderrors.Is(err, pricing.ErrZeroExpectedSavings):
		return errors.NewValidationError(err.Error())
	default:
		log.Errorw("pricing calculation failed", "error", err)
		return errors.NewInternalError("pricing calculation failed", err.Error())
	}
}
