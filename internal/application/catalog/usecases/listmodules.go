package usecases

import (
	"context"
	"fmt"

	"github.com/safehub-io/safehub/internal/application/catalog/dto"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// ListModulesUseCase lists catalog modules with optional filtering and
// text search.
type ListModulesUseCase struct {
	modules *catalog.Catalog
	logger  logger.Interface
}

// NewListModulesUseCase creates a new list modules use case
func NewListModulesUseCase(
	modules *catalog.Catalog,
	logger logger.Interface,
) *ListModulesUseCase {
	return &ListModulesUseCase{
		modules: modules,
		logger:  logger,
	}
}

// Execute executes the list modules use case
func (uc *ListModulesUseCase) Execute(
	ctx context.Context,
	request dto.ListModulesRequest,
) ([]*dto.ModuleResponse, error) {
	var category catalog.Category
	if request.Category != "" {
		category = catalog.Category(request.Category)
		if !category.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", request.Category))
		}
	}
	var tier catalog.Tier
	if request.Tier != "" {
		tier = catalog.Tier(request.Tier)
		if !tier.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid tier: %s", request.Tier))
		}
	}
	var status catalog.ModuleStatus
	if request.Status != "" {
		status = catalog.ModuleStatus(request.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid module status: %s", request.Status))
		}
	}

	// Search handles the empty query as "match all", so it doubles as the
	// unfiltered listing.
	matches := uc.modules.Search(request.Query)

	responses := make([]*dto.ModuleResponse, 0, len(matches))
	for _, m := range matches {
		if request.Category != "" && m.Category() != category {
			continue
		}
		if request.Tier != "" && m.Tier() != tier {
			continue
		}
		if request.Status != "" && m.Status() != status {
			continue
		}
		if request.OnlyVisible && !m.IsVisible() {
			continue
		}
		responses = append(responses, toModuleResponse(m))
	}
	return responses, nil
}
