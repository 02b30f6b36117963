package usecases

import (
	"github.com/safehub-io/safehub/internal/application/catalog/dto"
	"github.com/safehub-io/safehub/internal/domain/catalog"
)

func toModuleResponse(m *catalog.ModuleDefinition) *dto.ModuleResponse {
	pricing := m.Pricing()
	tiers := make([]dto.UserTierResponse, 0, len(pricing.UserTiers))
	for _, t := range pricing.UserTiers {
		tiers = append(tiers, dto.UserTierResponse{
			MinUsers:     t.MinUsers,
			MaxUsers:     t.MaxUsers,
			PricePerUser: int64(t.PricePerUser),
		})
	}

	return &dto.ModuleResponse{
		ID:          m.ID(),
		Name:        m.Name(),
		Description: m.Description(),
		Category:    m.Category().String(),
		Tier:        m.Tier().String(),
		Core:        m.IsCore(),
		Status:      m.Status().String(),
		Features:    m.Features(),
		Pricing: dto.PricingPolicyResponse{
			Model:            pricing.Model.String(),
			BasePrice:        int64(pricing.BasePrice),
			PricePerUser:     int64(pricing.PricePerUser),
			PricePerBuilding: int64(pricing.PricePerBuilding),
			UserTiers:        tiers,
			SetupFee:         int64(pricing.SetupFee),
			FreeTrialDays:    pricing.FreeTrialDays,
		},
		Rating:        m.Rating(),
		ReviewCount:   m.ReviewCount(),
		Popularity:    m.Popularity(),
		Dependencies:  m.Dependencies(),
		CustomerCount: m.CustomerCount(),
		UpdatedAt:     m.UpdatedAt(),
	}
}
