// Package audit provides the append-only entitlement change log. The backing
// store keeps only the most recent MaxEntries records; it is a best-effort
// trail, not a durability guarantee.
package audit

import (
	"fmt"
	"time"

	"github.com/safehub-io/safehub/internal/shared/id"
)

// MaxEntries is the retention bound: the store is trimmed to this many
// entries on every write, oldest dropped first.
const MaxEntries = 1000

// Action represents what happened to an entitlement
type Action string

const (
	ActionEnabled    Action = "enabled"
	ActionDisabled   Action = "disabled"
	ActionConfigured Action = "configured"
)

// IsValid checks if the action is valid
func (a Action) IsValid() bool {
	switch a {
	case ActionEnabled, ActionDisabled, ActionConfigured:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action
func (a Action) String() string {
	return string(a)
}

// Entry is one record of an entitlement change. Entries are never mutated or
// individually deleted.
type Entry struct {
	id          string
	customerID  string
	moduleID    string
	action      Action
	performedBy string
	timestamp   time.Time
	details     map[string]any
}

// NewEntry creates an audit entry with a generated id.
func NewEntry(customerID, moduleID string, action Action, performedBy string, details map[string]any) (*Entry, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if moduleID == "" {
		return nil, fmt.Errorf("module ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if performedBy == "" {
		return nil, fmt.Errorf("performed by is required")
	}

	entryID, err := id.NewAuditEntryID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate audit entry ID: %w", err)
	}

	return &Entry{
		id:          entryID,
		customerID:  customerID,
		moduleID:    moduleID,
		action:      action,
		performedBy: performedBy,
		timestamp:   time.Now(),
		details:     details,
	}, nil
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(entryID, customerID, moduleID string, action Action, performedBy string, timestamp time.Time, details map[string]any) (*Entry, error) {
	if entryID == "" {
		return nil, fmt.Errorf("entry ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	return &Entry{
		id:          entryID,
		customerID:  customerID,
		moduleID:    moduleID,
		action:      action,
		performedBy: performedBy,
		timestamp:   timestamp,
		details:     details,
	}, nil
}

// ID returns the entry id
func (e *Entry) ID() string {
	return e.id
}

// CustomerID returns the customer the change applies to
func (e *Entry) CustomerID() string {
	return e.customerID
}

// ModuleID returns the module the change applies to
func (e *Entry) ModuleID() string {
	return e.moduleID
}

// Action returns what happened
func (e *Entry) Action() Action {
	return e.action
}

// PerformedBy returns the audit attribution of the acting party
func (e *Entry) PerformedBy() string {
	return e.performedBy
}

// Timestamp returns when the change happened
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// Details returns the optional detail map
func (e *Entry) Details() map[string]any {
	return e.details
}
