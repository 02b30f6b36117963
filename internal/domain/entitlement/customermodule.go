// Package entitlement provides domain models for per-customer module
// entitlements. A CustomerModule is the single source of truth for
// "is module X active for customer Y".
package entitlement

import (
	"fmt"
	"time"
)

// CustomerModule is the entitlement aggregate: one record per
// (customer, module) pair that has ever been touched. Records are mutated in
// place and never physically deleted; disabling stamps the record and
// preserves history.
type CustomerModule struct {
	id         uint
	customerID string
	moduleID   string
	enabled    bool
	enabledAt  time.Time
	enabledBy  string
	disabledAt *time.Time
	disabledBy *string
	settings   map[string]any
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

// NewCustomerModule creates an enabled entitlement record for the pair.
func NewCustomerModule(customerID, moduleID string, enabledBy Actor) (*CustomerModule, error) {
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if moduleID == "" {
		return nil, ErrModuleIDRequired
	}

	now := time.Now()
	return &CustomerModule{
		customerID: customerID,
		moduleID:   moduleID,
		enabled:    true,
		enabledAt:  now,
		enabledBy:  enabledBy.String(),
		settings:   make(map[string]any),
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructCustomerModule rebuilds a record from persistence.
func ReconstructCustomerModule(
	id uint,
	customerID, moduleID string,
	enabled bool,
	enabledAt time.Time,
	enabledBy string,
	disabledAt *time.Time,
	disabledBy *string,
	settings map[string]any,
	version int,
	createdAt, updatedAt time.Time,
) (*CustomerModule, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer module ID cannot be zero")
	}
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if moduleID == "" {
		return nil, ErrModuleIDRequired
	}
	if settings == nil {
		settings = make(map[string]any)
	}

	return &CustomerModule{
		id:         id,
		customerID: customerID,
		moduleID:   moduleID,
		enabled:    enabled,
		enabledAt:  enabledAt,
		enabledBy:  enabledBy,
		disabledAt: disabledAt,
		disabledBy: disabledBy,
		settings:   settings,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the record ID
func (cm *CustomerModule) ID() uint {
	return cm.id
}

// SetID sets the record ID (only for persistence layer use)
func (cm *CustomerModule) SetID(id uint) error {
	if cm.id != 0 {
		return fmt.Errorf("customer module ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer module ID cannot be zero")
	}
	cm.id = id
	return nil
}

// CustomerID returns the customer id
func (cm *CustomerModule) CustomerID() string {
	return cm.customerID
}

// ModuleID returns the module id
func (cm *CustomerModule) ModuleID() string {
	return cm.moduleID
}

// IsEnabled reports whether the module is currently enabled for the customer
func (cm *CustomerModule) IsEnabled() bool {
	return cm.enabled
}

// EnabledAt returns when the module was last enabled
func (cm *CustomerModule) EnabledAt() time.Time {
	return cm.enabledAt
}

// EnabledBy returns the audit attribution of the enabling actor
func (cm *CustomerModule) EnabledBy() string {
	return cm.enabledBy
}

// DisabledAt returns when the module was last disabled, nil if never
func (cm *CustomerModule) DisabledAt() *time.Time {
	return cm.disabledAt
}

// DisabledBy returns who last disabled the module, nil if never
func (cm *CustomerModule) DisabledBy() *string {
	return cm.disabledBy
}

// Settings returns the free-form module settings
func (cm *CustomerModule) Settings() map[string]any {
	return cm.settings
}

// Version returns the aggregate version
func (cm *CustomerModule) Version() int {
	return cm.version
}

// CreatedAt returns when the record was created
func (cm *CustomerModule) CreatedAt() time.Time {
	return cm.createdAt
}

// UpdatedAt returns when the record was last updated
func (cm *CustomerModule) UpdatedAt() time.Time {
	return cm.updatedAt
}

// Enable flips the record to enabled, stamping the actor and clearing any
// prior disabled stamps. Re-enabling an already enabled record refreshes the
// stamps (last write wins).
func (cm *CustomerModule) Enable(by Actor) {
	now := time.Now()
	cm.enabled = true
	cm.enabledAt = now
	cm.enabledBy = by.String()
	cm.disabledAt = nil
	cm.disabledBy = nil
	cm.updatedAt = now
	cm.version++
}

// Disable flips the record to disabled and stamps the actor. The record is
// kept; history is preserved.
func (cm *CustomerModule) Disable(by Actor) {
	now := time.Now()
	attribution := by.String()
	cm.enabled = false
	cm.disabledAt = &now
	cm.disabledBy = &attribution
	cm.updatedAt = now
	cm.version++
}

// UpdateSettings merges the given settings into the record.
func (cm *CustomerModule) UpdateSettings(settings map[string]any) {
	if cm.settings == nil {
		cm.settings = make(map[string]any)
	}
	for k, v := range settings {
		cm.settings[k] = v
	}
	cm.updatedAt = time.Now()
	cm.version++
}
