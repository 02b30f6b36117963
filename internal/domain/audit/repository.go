package audit

import "context"

// Repository defines the persistence port for the audit log.
type Repository interface {
	// Append writes one entry and trims the store to MaxEntries, oldest
	// dropped first. Under concurrent writers the trim is best effort.
	Append(ctx context.Context, entry *Entry) error

	// List returns entries sorted newest-first by timestamp.
	// An empty customerID returns entries for all customers.
	List(ctx context.Context, customerID string) ([]*Entry, error)
}
