package memory

import (
	"context"
	"sync"

	"github.com/safehub-io/safehub/internal/domain/audit"
)

// AuditLogRepository is an in-memory audit.Repository with the retention
// bound applied on every append.
type AuditLogRepository struct {
	mu      sync.RWMutex
	entries []*audit.Entry
}

// NewAuditLogRepository creates an empty in-memory audit log.
func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

// Append writes one entry and trims the log to audit.MaxEntries, oldest
// dropped first.
func (r *AuditLogRepository) Append(_ context.Context, entry *audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if excess := len(r.entries) - audit.MaxEntries; excess > 0 {
		r.entries = r.entries[excess:]
	}
	return nil
}

// List returns entries newest-first. An empty customerID returns entries for
// all customers.
func (r *AuditLogRepository) List(_ context.Context, customerID string) ([]*audit.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*audit.Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if customerID == "" || entry.CustomerID() == customerID {
			result = append(result, entry)
		}
	}
	return result, nil
}
