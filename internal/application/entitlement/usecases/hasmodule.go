package usecases

import (
	"context"

	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// HasModuleUseCase answers "is module X enabled for customer Y". Unknown
// modules answer false rather than erroring; feature gates degrade closed.
type HasModuleUseCase struct {
	service *entitlementapp.Service
	logger  logger.Interface
}

// NewHasModuleUseCase creates a new has module use case
func NewHasModuleUseCase(
	service *entitlementapp.Service,
	logger logger.Interface,
) *HasModuleUseCase {
	return &HasModuleUseCase{
		service: service,
		logger:  logger,
	}
}

// Execute executes the has module use case
func (uc *HasModuleUseCase) Execute(
	ctx context.Context,
	request dto.HasModuleRequest,
) (*dto.HasModuleResponse, error) {
	if request.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}
	if request.ModuleID == "" {
		return nil, errors.NewValidationError("module ID is required")
	}

	enabled, err := uc.service.HasModule(ctx, request.CustomerID, request.ModuleID)
	if err != nil {
		uc.logger.Errorw("failed to check module entitlement", "error", err,
			"customer_id", request.CustomerID,
			"module_id", request.ModuleID,
		)
		return nil, errors.NewInternalError("failed to check module entitlement", err.Error())
	}

	return &dto.HasModuleResponse{
		CustomerID: request.CustomerID,
		ModuleID:   request.ModuleID,
		Enabled:    enabled,
	}, nil
}
