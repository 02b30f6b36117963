package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/shared/errors"
)

// ActivationRequestRepository is an in-memory approval.Repository.
type ActivationRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*approval.Request
}

// NewActivationRequestRepository creates an empty in-memory repository.
func NewActivationRequestRepository() *ActivationRequestRepository {
	return &ActivationRequestRepository{
		requests: make(map[string]*approval.Request),
	}
}

// Create persists a new request.
func (r *ActivationRequestRepository) Create(_ context.Context, request *approval.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[request.ID()]; exists {
		return errors.NewConflictError("activation request already exists")
	}
	r.requests[request.ID()] = request
	return nil
}

// Update persists changes to an existing request.
func (r *ActivationRequestRepository) Update(_ context.Context, request *approval.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[request.ID()]; !exists {
		return approval.ErrRequestNotFound
	}
	r.requests[request.ID()] = request
	return nil
}

// GetByID returns the request, or approval.ErrRequestNotFound.
func (r *ActivationRequestRepository) GetByID(_ context.Context, requestID string) (*approval.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, exists := r.requests[requestID]
	if !exists {
		return nil, approval.ErrRequestNotFound
	}
	return request, nil
}

// List returns requests sorted newest-first by requested time. An empty
// customerID returns requests for all customers.
func (r *ActivationRequestRepository) List(_ context.Context, customerID string) ([]*approval.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*approval.Request
	for _, request := range r.requests {
		if customerID == "" || request.CustomerID() == customerID {
			result = append(result, request)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RequestedAt().After(result[j].RequestedAt())
	})
	return result, nil
}
