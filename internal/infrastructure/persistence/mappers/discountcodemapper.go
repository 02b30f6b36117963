package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// DiscountCodeMapper handles the conversion between domain entities and persistence models
type DiscountCodeMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.DiscountCodeModel) (*pricing.DiscountCode, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *pricing.DiscountCode) (*models.DiscountCodeModel, error)
}

// discountCodeMapper is the concrete implementation of DiscountCodeMapper
type discountCodeMapper struct{}

// NewDiscountCodeMapper creates a new discount code mapper
func NewDiscountCodeMapper() DiscountCodeMapper {
	return &discountCodeMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *discountCodeMapper) ToEntity(model *models.DiscountCodeModel) (*pricing.DiscountCode, error) {
	if model == nil {
		return nil, nil
	}

	var applicableModules []string
	if len(model.ApplicableModules) > 0 {
		if err := json.Unmarshal(model.ApplicableModules, &applicableModules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal applicable modules: %w", err)
		}
	}

	return &pricing.DiscountCode{
		Code:              model.Code,
		Type:              pricing.DiscountType(model.Type),
		Value:             model.Value,
		ExpiresAt:         model.ExpiresAt,
		ApplicableModules: applicableModules,
		MinimumSpend:      money.Cents(model.MinimumSpend),
		MaxDiscount:       money.Cents(model.MaxDiscount),
	}, nil
}

// ToModel converts a domain entity to a persistence model
func (m *discountCodeMapper) ToModel(entity *pricing.DiscountCode) (*models.DiscountCodeModel, error) {
	if entity == nil {
		return nil, nil
	}

	var modulesJSON datatypes.JSON
	if len(entity.ApplicableModules) > 0 {
		data, err := json.Marshal(entity.ApplicableModules)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal applicable modules: %w", err)
		}
		modulesJSON = data
	}

	return &models.DiscountCodeModel{
		Code:              entity.NormalizedCode(),
		Type:              entity.Type.String(),
		Value:             entity.Value,
		ExpiresAt:         entity.ExpiresAt,
		ApplicableModules: modulesJSON,
		MinimumSpend:      int64(entity.MinimumSpend),
		MaxDiscount:       int64(entity.MaxDiscount),
	}, nil
}
