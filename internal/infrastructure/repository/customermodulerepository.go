package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/mappers"
	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// CustomerModuleRepositoryImpl implements the entitlement.Repository interface
type CustomerModuleRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomerModuleMapper
	logger logger.Interface
}

// NewCustomerModuleRepository creates a new customer module repository instance
func NewCustomerModuleRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &CustomerModuleRepositoryImpl{
		db:     db,
		mapper: mappers.NewCustomerModuleMapper(),
		logger: logger,
	}
}

// Create persists a new customer module record and assigns its ID
func (r *CustomerModuleRepositoryImpl) Create(ctx context.Context, record *entitlement.CustomerModule) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map customer module: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("customer module record already exists")
		}
		r.logger.Errorw("failed to create customer module",
			"customer_id", record.CustomerID(),
			"module_id", record.ModuleID(),
			"error", err)
		return fmt.Errorf("failed to create customer module: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set customer module ID", "error", err)
		return fmt.Errorf("failed to set customer module ID: %w", err)
	}
	return nil
}

// Update persists changes to an existing customer module record
func (r *CustomerModuleRepositoryImpl) Update(ctx context.Context, record *entitlement.CustomerModule) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map customer module: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.CustomerModuleModel{}).
		Where("id = ?", record.ID()).
		Select("Enabled", "EnabledAt", "EnabledBy", "DisabledAt", "DisabledBy", "Settings", "Version", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update customer module",
			"customer_id", record.CustomerID(),
			"module_id", record.ModuleID(),
			"error", result.Error)
		return fmt.Errorf("failed to update customer module: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entitlement.ErrCustomerModuleNotFound
	}
	return nil
}

// GetByCustomerAndModule returns the record for the pair
func (r *CustomerModuleRepositoryImpl) GetByCustomerAndModule(ctx context.Context, customerID, moduleID string) (*entitlement.CustomerModule, error) {
	var model models.CustomerModuleModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND module_id = ?", customerID, moduleID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entitlement.ErrCustomerModuleNotFound
		}
		r.logger.Errorw("failed to get customer module",
			"customer_id", customerID,
			"module_id", moduleID,
			"error", err)
		return nil, fmt.Errorf("failed to get customer module: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// ListByCustomer returns all records for a customer, enabled or not
func (r *CustomerModuleRepositoryImpl) ListByCustomer(ctx context.Context, customerID string) ([]*entitlement.CustomerModule, error) {
	var modelList []*models.CustomerModuleModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("module_id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list customer modules", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to list customer modules: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}
