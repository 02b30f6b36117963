package usecases

import (
	"context"

	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// GetCustomerModulesUseCase lists all entitlement records of a customer,
// seeding core module records on first access.
type GetCustomerModulesUseCase struct {
	service *entitlementapp.Service
	logger  logger.Interface
}

// NewGetCustomerModulesUseCase creates a new get customer modules use case
func NewGetCustomerModulesUseCase(
	service *entitlementapp.Service,
	logger logger.Interface,
) *GetCustomerModulesUseCase {
	return &GetCustomerModulesUseCase{
		service: service,
		logger:  logger,
	}
}

// Execute executes the get customer modules use case
func (uc *GetCustomerModulesUseCase) Execute(
	ctx context.Context,
	request dto.GetCustomerModulesRequest,
) ([]*dto.CustomerModuleResponse, error) {
	if request.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}

	records, err := uc.service.CustomerModules(ctx, request.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer modules", "error", err, "customer_id", request.CustomerID)
		return nil, errors.NewInternalError("failed to get customer modules", err.Error())
	}

	responses := make([]*dto.CustomerModuleResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}
