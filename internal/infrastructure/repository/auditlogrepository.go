package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/safehub-io/safehub/internal/domain/audit"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/mappers"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// AuditLogRepositoryImpl implements the audit.Repository interface. The table
// is trimmed to audit.MaxEntries on every append, oldest rows first.
type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
	logger logger.Interface
}

// NewAuditLogRepository creates a new audit log repository instance
func NewAuditLogRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
		logger: logger,
	}
}

// Append writes one entry and trims the table to the retention bound
func (r *AuditLogRepositoryImpl) Append(ctx context.Context, entry *audit.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return fmt.Errorf("failed to map audit entry: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit entry", "entry_id", entry.ID(), "error", err)
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	if err := r.trim(ctx); err != nil {
		// retention is best effort; the entry itself is already written
		r.logger.Warnw("failed to trim audit log", "error", err)
	}
	return nil
}

// List returns entries sorted newest-first by timestamp. An empty customerID
// returns entries for all customers.
func (r *AuditLogRepositoryImpl) List(ctx context.Context, customerID string) ([]*audit.Entry, error) {
	query := r.db.WithContext(ctx).Order("timestamp DESC, id DESC")
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var modelList []*models.AuditLogModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list audit entries", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *AuditLogRepositoryImpl) trim(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AuditLogModel{}).Count(&count).Error; err != nil {
		return err
	}

	excess := count - audit.MaxEntries
	if excess <= 0 {
		return nil
	}

	var oldestIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.AuditLogModel{}).
		Order("timestamp ASC, id ASC").
		Limit(int(excess)).
		Pluck("id", &oldestIDs).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.AuditLogModel{}, oldestIDs).Error
}
