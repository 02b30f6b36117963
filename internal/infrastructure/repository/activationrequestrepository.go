package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/mappers"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// ActivationRequestRepositoryImpl implements the approval.Repository interface
type ActivationRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ActivationRequestMapper
	logger logger.Interface
}

// NewActivationRequestRepository creates a new activation request repository instance
func NewActivationRequestRepository(db *gorm.DB, logger logger.Interface) approval.Repository {
	return &ActivationRequestRepositoryImpl{
		db:     db,
		mapper: mappers.NewActivationRequestMapper(),
		logger: logger,
	}
}

// Create persists a new activation request
func (r *ActivationRequestRepositoryImpl) Create(ctx context.Context, request *approval.Request) error {
	model := r.mapper.ToModel(request)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("activation request already exists")
		}
		r.logger.Errorw("failed to create activation request",
			"request_id", request.ID(),
			"error", err)
		return fmt.Errorf("failed to create activation request: %w", err)
	}
	return nil
}

// Update persists changes to an existing activation request
func (r *ActivationRequestRepositoryImpl) Update(ctx context.Context, request *approval.Request) error {
	model := r.mapper.ToModel(request)

	result := r.db.WithContext(ctx).
		Model(&models.ActivationRequestModel{}).
		Where("sid = ?", request.ID()).
		Select("Status", "ApprovedBy", "ApprovedAt", "RejectedBy", "RejectedAt", "RejectionReason", "Version").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update activation request",
			"request_id", request.ID(),
			"error", result.Error)
		return fmt.Errorf("failed to update activation request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return approval.ErrRequestNotFound
	}
	return nil
}

// GetByID returns the activation request with the given id
func (r *ActivationRequestRepositoryImpl) GetByID(ctx context.Context, requestID string) (*approval.Request, error) {
	var model models.ActivationRequestModel
	err := r.db.WithContext(ctx).Where("sid = ?", requestID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, approval.ErrRequestNotFound
		}
		r.logger.Errorw("failed to get activation request", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("failed to get activation request: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// List returns activation requests sorted newest-first by requested time.
// An empty customerID returns requests for all customers.
func (r *ActivationRequestRepositoryImpl) List(ctx context.Context, customerID string) ([]*approval.Request, error) {
	query := r.db.WithContext(ctx).Order("requested_at DESC")
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var modelList []*models.ActivationRequestModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list activation requests", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to list activation requests: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
