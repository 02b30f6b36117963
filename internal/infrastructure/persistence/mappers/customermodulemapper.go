package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
)

// CustomerModuleMapper handles the conversion between domain entities and persistence models
type CustomerModuleMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.CustomerModuleModel) (*entitlement.CustomerModule, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *entitlement.CustomerModule) (*models.CustomerModuleModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.CustomerModuleModel) ([]*entitlement.CustomerModule, error)
}

// customerModuleMapper is the concrete implementation of CustomerModuleMapper
type customerModuleMapper struct{}

// NewCustomerModuleMapper creates a new customer module mapper
func NewCustomerModuleMapper() CustomerModuleMapper {
	return &customerModuleMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *customerModuleMapper) ToEntity(model *models.CustomerModuleModel) (*entitlement.CustomerModule, error) {
	if model == nil {
		return nil, nil
	}

	var settings map[string]any
	if len(model.Settings) > 0 {
		if err := json.Unmarshal(model.Settings, &settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}

	entity, err := entitlement.ReconstructCustomerModule(
		model.ID,
		model.CustomerID,
		model.ModuleID,
		model.Enabled,
		model.EnabledAt,
		model.EnabledBy,
		model.DisabledAt,
		model.DisabledBy,
		settings,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct customer module: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *customerModuleMapper) ToModel(entity *entitlement.CustomerModule) (*models.CustomerModuleModel, error) {
	if entity == nil {
		return nil, nil
	}

	var settingsJSON datatypes.JSON
	if settings := entity.Settings(); len(settings) > 0 {
		data, err := json.Marshal(settings)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings: %w", err)
		}
		settingsJSON = data
	}

	return &models.CustomerModuleModel{
		ID:         entity.ID(),
		CustomerID: entity.CustomerID(),
		ModuleID:   entity.ModuleID(),
		Enabled:    entity.IsEnabled(),
		EnabledAt:  entity.EnabledAt(),
		EnabledBy:  entity.EnabledBy(),
		DisabledAt: entity.DisabledAt(),
		DisabledBy: entity.DisabledBy(),
		Settings:   settingsJSON,
		Version:    entity.Version(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *customerModuleMapper) ToEntities(modelList []*models.CustomerModuleModel) ([]*entitlement.CustomerModule, error) {
	entities := make([]*entitlement.CustomerModule, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
