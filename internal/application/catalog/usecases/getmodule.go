package usecases

import (
	"context"
	"fmt"

	"github.com/safehub-io/safehub/internal/application/catalog/dto"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// GetModuleUseCase fetches one catalog module by id.
type GetModuleUseCase struct {
	modules *catalog.Catalog
	logger  logger.Interface
}

// NewGetModuleUseCase creates a new get module use case
func NewGetModuleUseCase(
	modules *catalog.Catalog,
	logger logger.Interface,
) *GetModuleUseCase {
	return &GetModuleUseCase{
		modules: modules,
		logger:  logger,
	}
}

// Execute executes the get module use case
func (uc *GetModuleUseCase) Execute(
	ctx context.Context,
	request dto.GetModuleRequest,
) (*dto.ModuleResponse, error) {
	if request.ModuleID == "" {
		return nil, errors.NewValidationError("module ID is required")
	}

	m, ok := uc.modules.Get(request.ModuleID)
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("module not found: %s", request.ModuleID))
	}
	return toModuleResponse(m), nil
}
