package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/safehub-io/safehub/internal/domain/audit"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
)

// AuditLogMapper handles the conversion between domain entities and persistence models
type AuditLogMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.AuditLogModel) (*audit.Entry, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *audit.Entry) (*models.AuditLogModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.AuditLogModel) ([]*audit.Entry, error)
}

// auditLogMapper is the concrete implementation of AuditLogMapper
type auditLogMapper struct{}

// NewAuditLogMapper creates a new audit log mapper
func NewAuditLogMapper() AuditLogMapper {
	return &auditLogMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *auditLogMapper) ToEntity(model *models.AuditLogModel) (*audit.Entry, error) {
	if model == nil {
		return nil, nil
	}

	var details map[string]any
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit details: %w", err)
		}
	}

	entity, err := audit.ReconstructEntry(
		model.SID,
		model.CustomerID,
		model.ModuleID,
		audit.Action(model.Action),
		model.PerformedBy,
		model.Timestamp,
		details,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct audit entry: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *auditLogMapper) ToModel(entity *audit.Entry) (*models.AuditLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	var detailsJSON datatypes.JSON
	if details := entity.Details(); len(details) > 0 {
		data, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal audit details: %w", err)
		}
		detailsJSON = data
	}

	return &models.AuditLogModel{
		SID:         entity.ID(),
		CustomerID:  entity.CustomerID(),
		ModuleID:    entity.ModuleID(),
		Action:      entity.Action().String(),
		PerformedBy: entity.PerformedBy(),
		Timestamp:   entity.Timestamp(),
		Details:     detailsJSON,
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *auditLogMapper) ToEntities(modelList []*models.AuditLogModel) ([]*audit.Entry, error) {
	entities := make([]*audit.Entry, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
