// Package memory provides in-memory repository implementations. They back
// the library defaults and tests; no state survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/safehub-io/safehub/internal/domain/entitlement"
)

// CustomerModuleRepository is an in-memory entitlement.Repository.
type CustomerModuleRepository struct {
	mu      sync.RWMutex
	records map[string]*entitlement.CustomerModule
	nextID  uint
}

// NewCustomerModuleRepository creates an empty in-memory repository.
func NewCustomerModuleRepository() *CustomerModuleRepository {
	return &CustomerModuleRepository{
		records: make(map[string]*entitlement.CustomerModule),
		nextID:  1,
	}
}

func pairKey(customerID, moduleID string) string {
	return customerID + "\x00" + moduleID
}

// Create persists a new record and assigns its ID.
func (r *CustomerModuleRepository) Create(_ context.Context, record *entitlement.CustomerModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(record.CustomerID(), record.ModuleID())
	if _, exists := r.records[key]; exists {
		return fmt.Errorf("customer module record already exists: %s/%s", record.CustomerID(), record.ModuleID())
	}
	if err := record.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.records[key] = record
	return nil
}

// Update persists changes to an existing record.
func (r *CustomerModuleRepository) Update(_ context.Context, record *entitlement.CustomerModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(record.CustomerID(), record.ModuleID())
	if _, exists := r.records[key]; !exists {
		return entitlement.ErrCustomerModuleNotFound
	}
	r.records[key] = record
	return nil
}

// GetByCustomerAndModule returns the record for the pair.
func (r *CustomerModuleRepository) GetByCustomerAndModule(_ context.Context, customerID, moduleID string) (*entitlement.CustomerModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[pairKey(customerID, moduleID)]
	if !exists {
		return nil, entitlement.ErrCustomerModuleNotFound
	}
	return record, nil
}

// ListByCustomer returns all records for a customer sorted by module id.
func (r *CustomerModuleRepository) ListByCustomer(_ context.Context, customerID string) ([]*entitlement.CustomerModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entitlement.CustomerModule
	for _, record := range r.records {
		if record.CustomerID() == customerID {
			result = append(result, record)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ModuleID() < result[j].ModuleID()
	})
	return result, nil
}
