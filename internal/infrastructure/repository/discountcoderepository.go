package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/mappers"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// DiscountCodeRepositoryImpl implements the pricing.DiscountStore interface.
// Codes are stored normalized; re-registering a code overwrites it.
type DiscountCodeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DiscountCodeMapper
	logger logger.Interface
}

// NewDiscountCodeRepository creates a new discount code repository instance
func NewDiscountCodeRepository(db *gorm.DB, logger logger.Interface) pricing.DiscountStore {
	return &DiscountCodeRepositoryImpl{
		db:     db,
		mapper: mappers.NewDiscountCodeMapper(),
		logger: logger,
	}
}

// Register stores a discount code, overwriting any previous definition
func (r *DiscountCodeRepositoryImpl) Register(ctx context.Context, code *pricing.DiscountCode) error {
	model, err := r.mapper.ToModel(code)
	if err != nil {
		return fmt.Errorf("failed to map discount code: %w", err)
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to register discount code", "code", code.NormalizedCode(), "error", err)
		return fmt.Errorf("failed to register discount code: %w", err)
	}
	return nil
}

// Get returns the discount code with the given case-insensitive key
func (r *DiscountCodeRepositoryImpl) Get(ctx context.Context, code string) (*pricing.DiscountCode, error) {
	var model models.DiscountCodeModel
	err := r.db.WithContext(ctx).
		Where("code = ?", pricing.NormalizeCode(code)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pricing.ErrDiscountNotFound
		}
		r.logger.Errorw("failed to get discount code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get discount code: %w", err)
	}
	return r.mapper.ToEntity(&model)
}
