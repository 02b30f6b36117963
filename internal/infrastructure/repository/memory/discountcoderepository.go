package memory

import (
	"context"
	"sync"

	"github.com/safehub-io/safehub/internal/domain/pricing"
)

// DiscountCodeRepository is an in-memory pricing.DiscountStore. Lookups are
// case-insensitive; re-registering a code overwrites it.
type DiscountCodeRepository struct {
	mu    sync.RWMutex
	codes map[string]*pricing.DiscountCode
}

// NewDiscountCodeRepository creates an empty in-memory discount store.
func NewDiscountCodeRepository() *DiscountCodeRepository {
	return &DiscountCodeRepository{
		codes: make(map[string]*pricing.DiscountCode),
	}
}

// Register stores a discount code under its normalized key.
func (r *DiscountCodeRepository) Register(_ context.Context, code *pricing.DiscountCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[code.NormalizedCode()] = code
	return nil
}

// Get returns the discount code, or pricing.ErrDiscountNotFound.
func (r *DiscountCodeRepository) Get(_ context.Context, code string) (*pricing.DiscountCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.codes[pricing.NormalizeCode(code)]
	if !exists {
		return nil, pricing.ErrDiscountNotFound
	}
	return c, nil
}
