package usecases

import (
	"context"

	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// GetEnabledModulesUseCase returns the catalog view of the modules currently
// enabled for a customer. This is the hot path the admin console polls, so the
// id set is cached when a cache is configured.
type GetEnabledModulesUseCase struct {
	service *entitlementapp.Service
	logger  logger.Interface
}

// NewGetEnabledModulesUseCase creates a new get enabled modules use case
func NewGetEnabledModulesUseCase(
	service *entitlementapp.Service,
	logger logger.Interface,
) *GetEnabledModulesUseCase {
	return &GetEnabledModulesUseCase{
		service: service,
		logger:  logger,
	}
}

// Execute executes the get enabled modules use case
func (uc *GetEnabledModulesUseCase) Execute(
	ctx context.Context,
	request dto.GetEnabledModulesRequest,
) (*dto.EnabledModulesResponse, error) {
	if request.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}

	defs, err := uc.service.EnabledModules(ctx, request.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get enabled modules", "error", err, "customer_id", request.CustomerID)
		return nil, errors.NewInternalError("failed to get enabled modules", err.Error())
	}

	ids := make([]string, 0, len(defs))
	modules := make([]dto.EnabledModuleSummary, 0, len(defs))
	for _, def := range defs {
		ids = append(ids, def.ID())
		modules = append(modules, dto.EnabledModuleSummary{
			ID:       def.ID(),
			Name:     def.Name(),
			Category: def.Category().String(),
			Tier:     def.Tier().String(),
			Core:     def.IsCore(),
		})
	}

	return &dto.EnabledModulesResponse{
		CustomerID: request.CustomerID,
		ModuleIDs:  ids,
		Modules:    modules,
	}, nil
}
