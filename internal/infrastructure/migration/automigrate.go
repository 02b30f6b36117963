// Package migration applies the database schema with gorm AutoMigrate.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/safehub-io/safehub/internal/infrastructure/persistence/models"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model included in the schema.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModuleModel{},
		&models.ActivationRequestModel{},
		&models.AuditLogModel{},
		&models.DiscountCodeModel{},
	}
}

// Run applies the schema to the given database.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	logger.Info("database schema migrated", "models", len(AutoMigrateModels()))
	return nil
}
