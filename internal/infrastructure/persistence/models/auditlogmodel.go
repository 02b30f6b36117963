package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/safehub-io/safehub/internal/shared/constants"
)

// AuditLogModel represents the database persistence model for entitlement
// audit entries. The table is capped: the repository trims it to the
// retention bound on every write, oldest rows first.
type AuditLogModel struct {
	ID          uint      `gorm:"primarykey"`
	SID         string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: aud_xxx"`
	CustomerID  string    `gorm:"not null;size:50;index:idx_audit_customer"`
	ModuleID    string    `gorm:"not null;size:50"`
	Action      string    `gorm:"not null;size:20"`
	PerformedBy string    `gorm:"not null;size:100"`
	Timestamp   time.Time `gorm:"not null;index:idx_audit_timestamp"`
	Details     datatypes.JSON
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
