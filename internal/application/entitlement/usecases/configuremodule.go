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

// ConfigureModuleUseCase merges settings into a customer's module record.
type ConfigureModuleUseCase struct {
	service *entitlementapp.Service
	logger  logger.Interface
}

// NewConfigureModuleUseCase creates a new configure module use case
func NewConfigureModuleUseCase(
	service *entitlementapp.Service,
	logger logger.Interface,
) *ConfigureModuleUseCase {
	return &ConfigureModuleUseCase{
		service: service,
		logger:  logger,
	}
}

// Execute executes the configure module use case
func (uc *ConfigureModuleUseCase) Execute(
	ctx context.Context,
	request dto.ConfigureModuleRequest,
) (*dto.CustomerModuleResponse, error) {
	uc.logger.Infow("executing configure module use case",
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
	if len(request.Settings) == 0 {
		return nil, errors.NewValidationError("settings are required")
	}

	actor, err := entitlement.ParseActor(request.Actor)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid actor: %v", err))
	}

	record, err := uc.service.Configure(ctx, request.CustomerID, request.ModuleID, request.Settings, actor)
	if err != nil {
		switch {
		case stderrors.Is(err, entitlement.ErrModuleNotFound):
			return nil, errors.NewNotFoundError(fmt.Sprintf("module not found: %s", request.ModuleID))
		case stderrors.Is(err, entitlement.ErrCustomerModuleNotFound):
			return nil, errors.NewNotFoundError(
				fmt.Sprintf("module %s is not enabled for customer %s", request.ModuleID, request.CustomerID))
		default:
			uc.logger.Errorw("failed to configure module", "error", err,
				"customer_id", request.CustomerID,
				"module_id", request.ModuleID,
			)
			return nil, errors.NewInternalError("failed to configure module", err.Error())
		}
	}

	return toResponse(record), nil
}
