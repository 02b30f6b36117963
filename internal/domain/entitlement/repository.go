package entitlement

import "context"

// Repository defines the persistence port for customer module records.
// Implementations treat "not found" as an empty default for list operations;
// a customer with no rows simply has no entitlements yet.
type Repository interface {
	// Create persists a new record and assigns its ID.
	Create(ctx context.Context, record *CustomerModule) error

	// Update persists changes to an existing record. Last write wins; the
	// engine assumes a single writer per customer.
	Update(ctx context.Context, record *CustomerModule) error

	// GetByCustomerAndModule returns the record for the pair, or
	// ErrCustomerModuleNotFound.
	GetByCustomerAndModule(ctx context.Context, customerID, moduleID string) (*CustomerModule, error)

	// ListByCustomer returns all records for a customer, enabled or not.
	ListByCustomer(ctx context.Context, customerID string) ([]*CustomerModule, error)
}
