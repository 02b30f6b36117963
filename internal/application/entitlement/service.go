// Package entitlement provides the application service that owns all
// entitlement mutations. Every enable, disable and configure call funnels
// through the Service so that seeding, audit logging and cache invalidation
// happen in exactly one place.
package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/safehub-io/safehub/internal/domain/audit"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// Cache is an optional read-through cache for enabled module id sets.
// Implementations treat a miss as "not cached", never as "no modules".
type Cache interface {
	GetEnabledModules(ctx context.Context, customerID string) ([]string, bool, error)
	SetEnabledModules(ctx context.Context, customerID string, moduleIDs []string) error
	Invalidate(ctx context.Context, customerID string) error
}

// Service owns entitlement state transitions for all customers.
type Service struct {
	modules   *catalog.Catalog
	repo      entitlement.Repository
	auditRepo audit.Repository
	cache     Cache
	logger    logger.Interface
}

// NewService creates the entitlement service. cache may be nil, in which case
// every read goes to the repository.
func NewService(
	modules *catalog.Catalog,
	repo entitlement.Repository,
	auditRepo audit.Repository,
	cache Cache,
	logger logger.Interface,
) *Service {
	return &Service{
		modules:   modules,
		repo:      repo,
		auditRepo: auditRepo,
		cache:     cache,
		logger:    logger,
	}
}

// CustomerModules returns all entitlement records for the customer, seeding
// records for any core module the customer does not have yet. Seeding is
// idempotent: existing records, enabled or disabled, are never touched.
func (s *Service) CustomerModules(ctx context.Context, customerID string) ([]*entitlement.CustomerModule, error) {
	if customerID == "" {
		return nil, entitlement.ErrCustomerIDRequired
	}

	records, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer modules: %w", err)
	}

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		seen[r.ModuleID()] = true
	}

	for _, def := range s.modules.CoreModules() {
		if seen[def.ID()] {
			continue
		}
		record, err := s.createEnabled(ctx, customerID, def.ID(), entitlement.SystemActor())
		if err != nil {
			return nil, fmt.Errorf("failed to seed core module %s: %w", def.ID(), err)
		}
		s.appendAudit(ctx, customerID, def.ID(), audit.ActionEnabled, entitlement.SystemActor(), nil)
		records = append(records, record)
		s.logger.Infow("seeded core module",
			"customer_id", customerID,
			"module_id", def.ID(),
		)
	}

	return records, nil
}

// Enable turns a module on for a customer without consulting the approval
// workflow. Callers are responsible for routing non-bypass actors through
// approval first; this method trusts the actor it is given.
func (s *Service) Enable(ctx context.Context, customerID, moduleID string, by entitlement.Actor) (*entitlement.CustomerModule, error) {
	if _, ok := s.modules.Get(moduleID); !ok {
		return nil, fmt.Errorf("%w: %s", entitlement.ErrModuleNotFound, moduleID)
	}

	record, err := s.repo.GetByCustomerAndModule(ctx, customerID, moduleID)
	switch {
	case err == nil:
		record.Enable(by)
		if err := s.repo.Update(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to update customer module: %w", err)
		}
	case errors.Is(err, entitlement.ErrCustomerModuleNotFound):
		record, err = s.createEnabled(ctx, customerID, moduleID, by)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to load customer module: %w", err)
	}

	s.appendAudit(ctx, customerID, moduleID, audit.ActionEnabled, by, nil)
	s.invalidateCache(ctx, customerID)

	s.logger.Infow("module enabled",
		"customer_id", customerID,
		"module_id", moduleID,
		"enabled_by", by.String(),
	)
	return record, nil
}

// Disable turns a module off for a customer. Core modules can never be
// disabled, regardless of the actor.
func (s *Service) Disable(ctx context.Context, customerID, moduleID string, by entitlement.Actor) (*entitlement.CustomerModule, error) {
	def, ok := s.modules.Get(moduleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entitlement.ErrModuleNotFound, moduleID)
	}
	if def.IsCore() {
		return nil, fmt.Errorf("%w: %s", entitlement.ErrCoreModuleProtected, moduleID)
	}

	record, err := s.repo.GetByCustomerAndModule(ctx, customerID, moduleID)
	if err != nil {
		return nil, err
	}

	record.Disable(by)
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update customer module: %w", err)
	}

	s.appendAudit(ctx, customerID, moduleID, audit.ActionDisabled, by, nil)
	s.invalidateCache(ctx, customerID)

	s.logger.Infow("module disabled",
		"customer_id", customerID,
		"module_id", moduleID,
		"disabled_by", by.String(),
	)
	return record, nil
}

// Configure merges settings into the customer's module record.
func (s *Service) Configure(ctx context.Context, customerID, moduleID string, settings map[string]any, by entitlement.Actor) (*entitlement.CustomerModule, error) {
	if _, ok := s.modules.Get(moduleID); !ok {
		return nil, fmt.Errorf("%w: %s", entitlement.ErrModuleNotFound, moduleID)
	}

	record, err := s.repo.GetByCustomerAndModule(ctx, customerID, moduleID)
	if err != nil {
		return nil, err
	}

	record.UpdateSettings(settings)
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update customer module: %w", err)
	}

	details := make(map[string]any, len(settings))
	for k, v := range settings {
		details[k] = v
	}
	s.appendAudit(ctx, customerID, moduleID, audit.ActionConfigured, by, details)

	return record, nil
}

// HasModule reports whether the module is enabled for the customer. Core
// modules are implicitly enabled for everyone, record or not.
func (s *Service) HasModule(ctx context.Context, customerID, moduleID string) (bool, error) {
	def, ok := s.modules.Get(moduleID)
	if !ok {
		return false, nil
	}
	if def.IsCore() {
		return true, nil
	}

	if s.cache != nil {
		ids, hit, err := s.cache.GetEnabledModules(ctx, customerID)
		if err != nil {
			s.logger.Warnw("enabled modules cache read failed",
				"error", err,
				"customer_id", customerID,
			)
		} else if hit {
			for _, id := range ids {
				if id == moduleID {
					return true, nil
				}
			}
			return false, nil
		}
	}

	ids, err := s.EnabledModuleIDs(ctx, customerID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == moduleID {
			return true, nil
		}
	}
	return false, nil
}

// EnabledModuleIDs returns the module ids currently enabled for the customer,
// core modules included. The result is written back to the cache when one is
// configured.
func (s *Service) EnabledModuleIDs(ctx context.Context, customerID string) ([]string, error) {
	records, err := s.CustomerModules(ctx, customerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		if r.IsEnabled() {
			ids = append(ids, r.ModuleID())
		}
	}

	if s.cache != nil {
		if err := s.cache.SetEnabledModules(ctx, customerID, ids); err != nil {
			s.logger.Warnw("enabled modules cache write failed",
				"error", err,
				"customer_id", customerID,
			)
		}
	}
	return ids, nil
}

// EnabledModules returns the catalog definitions of the modules currently
// enabled for the customer. Ids without a catalog entry are skipped.
func (s *Service) EnabledModules(ctx context.Context, customerID string) ([]*catalog.ModuleDefinition, error) {
	ids, err := s.EnabledModuleIDs(ctx, customerID)
	if err != nil {
		return nil, err
	}

	defs := make([]*catalog.ModuleDefinition, 0, len(ids))
	for _, id := range ids {
		if def, ok := s.modules.Get(id); ok {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

func (s *Service) createEnabled(ctx context.Context, customerID, moduleID string, by entitlement.Actor) (*entitlement.CustomerModule, error) {
	record, err := entitlement.NewCustomerModule(customerID, moduleID, by)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create customer module: %w", err)
	}
	return record, nil
}

// appendAudit is best effort: a failed audit write is logged, never surfaced.
func (s *Service) appendAudit(ctx context.Context, customerID, moduleID string, action audit.Action, by entitlement.Actor, details map[string]any) {
	entry, err := audit.NewEntry(customerID, moduleID, action, by.String(), details)
	if err != nil {
		s.logger.Warnw("failed to build audit entry",
			"error", err,
			"customer_id", customerID,
			"module_id", moduleID,
			"action", action.String(),
		)
		return
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		s.logger.Warnw("failed to append audit entry",
			"error", err,
			"customer_id", customerID,
			"module_id", moduleID,
			"action", action.String(),
		)
	}
}

func (s *Service) invalidateCache(ctx context.Context, customerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, customerID); err != nil {
		s.logger.Warnw("enabled modules cache invalidation failed",
			"error", err,
			"customer_id", customerID,
		)
	}
}
