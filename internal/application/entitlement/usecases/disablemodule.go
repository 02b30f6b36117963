package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// DisableModuleUseCase disables a module for a customer. Core modules are
// protected and can never be disabled.
type DisableModuleUseCase struct {
	service *entitlementapp.Service
	logger  logger.Interface
}

// NewDisableModuleUseCase creates a new disable module use case
func NewDisableModuleUseCase(
	service *entitlementapp.Service,
	logger logger.Interface,
) *DisableModuleUseCase {
	return &DisableModuleUseCase{
		service: service,
		logger:  logger,
	}
}

// Execute executes the disable module use case
func (uc *DisableModuleUseCase) Execute(
	ctx context.Context,
	request dto.DisableModuleRequest,
) (*dto.CustomerModuleResponse, error) {
	uc.logger.Infow("executing disable module use case",
		"customer_id", request.CustomerID,
		"module_id", request.ModuleID,
		"actor", request.Actor,
	)

	if request.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}
	if request.ModuleID == "" {
		return nil, errors.NewValidationError("module ID is required")
	}

	actor, err := entitlement.ParseActor(request.Actor)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid actor: %v", err))
	}

	record, err := uc.service.Disable(ctx, request.CustomerID, request.ModuleID, actor)
	if err != nil {
		switch {
		case stderrors.Is(err, entitlement.ErrModuleNotFound):
			return nil, errors.NewNotFoundError(fmt.Sprintf("module not found: %s", request.ModuleID))
		case stderrors.Is(err, entitlement.ErrCoreModuleProtected):
			uc.logger.Warnw("attempt to disable core module",
				"customer_id", request.CustomerID,
				"module_id", request.ModuleID,
			)
			return nil, errors.NewForbiddenError(fmt.Sprintf("core module cannot be disabled: %s", request.ModuleID))
		case stderrors.Is(err, entitlement.ErrCustomerModuleNotFound):
			return nil, errors.NewNotFoundError(
				fmt.Sprintf("module %s is not enabled for customer %s", request.ModuleID, request.CustomerID))
		default:
			uc.logger.Errorw("failed to disable module", "error", err,
				"customer_id", request.CustomerID,
				"module_id", request.ModuleID,
			)
			return nil, errors.NewInternalError("failed to disable module", err.Error())
		}
	}

	return toResponse(record), nil
}
