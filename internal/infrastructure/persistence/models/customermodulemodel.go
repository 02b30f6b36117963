package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/safehub-io/safehub/internal/shared/constants"
)

// CustomerModuleModel represents the database persistence model for customer
// module entitlements. This is the anti-corruption layer between domain and
// database. One row per (customer, module) pair that has ever been touched;
// rows are never deleted, disabling just flips the flag.
type CustomerModuleModel struct {
	ID         uint      `gorm:"primarykey"`
	CustomerID string    `gorm:"not null;size:50;uniqueIndex:idx_customer_module,priority:1"`
	ModuleID   string    `gorm:"not null;size:50;uniqueIndex:idx_customer_module,priority:2"`
	Enabled    bool      `gorm:"not null;default:false;index:idx_customer_enabled"`
	EnabledAt  time.Time `gorm:"not null"`
	EnabledBy  string    `gorm:"not null;size:100"`
	DisabledAt *time.Time
	DisabledBy *string `gorm:"size:100"`
	Settings   datatypes.JSON
	Version    int `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CustomerModuleModel) TableName() string {
	return constants.TableCustomerModules
}

// BeforeCreate hook for GORM
func (m *CustomerModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
