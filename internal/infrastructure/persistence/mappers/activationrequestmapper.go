package mappers

import (
	"fmt"

	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// ActivationRequestMapper handles the conversion between domain entities and persistence models
type ActivationRequestMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.ActivationRequestModel) (*approval.Request, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *approval.Request) *models.ActivationRequestModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.ActivationRequestModel) ([]*approval.Request, error)
}

// activationRequestMapper is the concrete implementation of ActivationRequestMapper
type activationRequestMapper struct{}

// NewActivationRequestMapper creates a new activation request mapper
func NewActivationRequestMapper() ActivationRequestMapper {
	return &activationRequestMapper{}
}

// ToEntity converts a persistence model to a domain entity
func (m *activationRequestMapper) ToEntity(model *models.ActivationRequestModel) (*approval.Request, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := approval.ReconstructRequest(
		model.SID,
		model.ModuleID,
		model.CustomerID,
		model.CustomerName,
		model.RequestedBy,
		model.RequestedByEmail,
		model.RequestedAt,
		approval.RequestStatus(model.Status),
		model.ApprovedBy,
		model.ApprovedAt,
		model.RejectedBy,
		model.RejectedAt,
		model.RejectionReason,
		money.Cents(model.MonthlyCost),
		money.Cents(model.YearlyCost),
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct activation request: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *activationRequestMapper) ToModel(entity *approval.Request) *models.ActivationRequestModel {
	if entity == nil {
		return nil
	}

	return &models.ActivationRequestModel{
		SID:              entity.ID(),
		ModuleID:         entity.ModuleID(),
		CustomerID:       entity.CustomerID(),
		CustomerName:     entity.CustomerName(),
		RequestedBy:      entity.RequestedBy(),
		RequestedByEmail: entity.RequestedByEmail(),
		RequestedAt:      entity.RequestedAt(),
		Status:           entity.Status().String(),
		ApprovedBy:       entity.ApprovedBy(),
		ApprovedAt:       entity.ApprovedAt(),
		RejectedBy:       entity.RejectedBy(),
		RejectedAt:       entity.RejectedAt(),
		RejectionReason:  entity.RejectionReason(),
		MonthlyCost:      int64(entity.MonthlyCost()),
		YearlyCost:       int64(entity.YearlyCost()),
		Version:          entity.Version(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *activationRequestMapper) ToEntities(modelList []*models.ActivationRequestModel) ([]*approval.Request, error) {
	entities := make([]*approval.Request, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
