package approval

import "context"

// Repository defines the persistence port for activation requests.
type Repository interface {
	// Create persists a new request.
	Create(ctx context.Context, request *Request) error

	// Update persists changes to an existing request.
	Update(ctx context.Context, request *Request) error

	// GetByID returns the request, or ErrRequestNotFound.
	GetByID(ctx context.Context, requestID string) (*Request, error)

	// List returns requests sorted newest-first by requested time.
	// An empty customerID returns requests for all customers.
	List(ctx context.Context, customerID string) ([]*Request, error)
}
