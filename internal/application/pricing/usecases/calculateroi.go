package usecases

import (
	"context"

	"github.com/safehub-io/safehub/internal/application/pricing/dto"
	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// CalculateROIUseCase projects break-even time and yearly return for one
// module against the customer's expected savings.
type CalculateROIUseCase struct {
	calculator *pricing.Calculator
	logger     logger.Interface
}

// NewCalculateROIUseCase creates a new calculate ROI use case
func NewCalculateROIUseCase(
	calculator *pricing.Calculator,
	logger logger.Interface,
) *CalculateROIUseCase {
	return &CalculateROIUseCase{
		calculator: calculator,
		logger:     logger,
	}
}

// Execute executes the calculate ROI use case
func (uc *CalculateROIUseCase) Execute(
	ctx context.Context,
	request dto.CalculateROIRequest,
) (*dto.ROIResponse, error) {
	if request.ModuleID == "" {
		return nil, errors.NewValidationError("module ID is required")
	}

	projection, err := uc.calculator.ROI(
		ctx,
		request.ModuleID,
		request.UserCount,
		request.BuildingCount,
		money.Cents(request.ExpectedMonthlySavings),
	)
	if err != nil {
		return nil, mapPricingError(uc.logger, err)
	}

	return &dto.ROIResponse{
		ModuleID:               projection.ModuleID,
		MonthlyCost:            int64(projection.MonthlyCost),
		YearlyCost:             int64(projection.YearlyCost),
		ExpectedMonthlySavings: int64(projection.ExpectedMonthlySavings),
		BreakEvenMonths:        projection.BreakEvenMonths,
		YearlyROIPercent:       projection.YearlyROIPercent,
	}, nil
}
