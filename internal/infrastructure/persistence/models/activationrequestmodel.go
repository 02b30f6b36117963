package models

import (
	"time"

	"github.com/safehub-io/safehub/internal/shared/constants"
)

// ActivationRequestModel represents the database persistence model for module
// activation requests. Costs are frozen at request-creation time in cents.
type ActivationRequestModel struct {
	ID               uint      `gorm:"primarykey"`
	SID              string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: req_xxx"`
	ModuleID         string    `gorm:"not null;size:50;index:idx_module_request"`
	CustomerID       string    `gorm:"not null;size:50;index:idx_customer_request"`
	CustomerName     string    `gorm:"size:200"`
	RequestedBy      string    `gorm:"not null;size:100"`
	RequestedByEmail string    `gorm:"size:200"`
	RequestedAt      time.Time `gorm:"not null;index:idx_requested_at"`
	Status           string    `gorm:"not null;size:20;index:idx_request_status"`
	ApprovedBy       *string   `gorm:"size:100"`
	ApprovedAt       *time.Time
	RejectedBy       *string `gorm:"size:100"`
	RejectedAt       *time.Time
	RejectionReason  *string `gorm:"size:500"`
	MonthlyCost      int64   `gorm:"not null"`
	YearlyCost       int64   `gorm:"not null"`
	Version          int     `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ActivationRequestModel) TableName() string {
	return constants.TableActivationRequests
}
