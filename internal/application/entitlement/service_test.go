package entitlement

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safehub-io/safehub/internal/domain/audit"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	domainentitlement "github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/infrastructure/repository/memory"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

type fakeCache struct {
	mu   sync.Mutex
	sets map[string][]string
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{sets: make(map[string][]string)}
}

func (c *fakeCache) GetEnabledModules(_ context.Context, customerID string) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := c.sets[customerID]
	if ok {
		c.hits++
	}
	return ids, ok, nil
}

func (c *fakeCache) SetEnabledModules(_ context.Context, customerID string, moduleIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets[customerID] = moduleIDs
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, customerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sets, customerID)
	return nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	core, err := catalog.NewModuleDefinition("incident_reporting", "Incident Reporting", "core module",
		catalog.CategoryCore, catalog.TierStarter, true, catalog.ModuleStatusActive, nil,
		catalog.PricingPolicy{Model: catalog.PricingModelFixed})
	require.NoError(t, err)

	premium, err := catalog.NewModuleDefinition("equipment_tracking", "Equipment Tracking", "premium module",
		catalog.CategoryPremium, catalog.TierProfessional, false, catalog.ModuleStatusActive, nil,
		catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: 2900})
	require.NoError(t, err)

	cat, err := catalog.NewCatalog([]*catalog.ModuleDefinition{core, premium})
	require.NoError(t, err)
	return cat
}

func newTestService(t *testing.T, cache Cache) (*Service, *memory.AuditLogRepository) {
	t.Helper()
	auditLog := memory.NewAuditLogRepository()
	svc := NewService(testCatalog(t), memory.NewCustomerModuleRepository(), auditLog, cache, logger.NewLogger())
	return svc, auditLog
}

func TestService_SeedsCoreModulesOnFirstAccess(t *testing.T) {
	svc, auditLog := newTestService(t, nil)

	records, err := svc.CustomerModules(context.Background(), "cust_1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "incident_reporting", records[0].ModuleID())
	assert.True(t, records[0].IsEnabled())
	assert.Equal(t, "system", records[0].EnabledBy())

	// seeding is audited
	entries, err := auditLog.List(context.Background(), "cust_1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionEnabled, entries[0].Action())
	assert.Equal(t, "system", entries[0].PerformedBy())

	// second access is idempotent
	records, err = svc.CustomerModules(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
	entries, err = auditLog.List(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_EnableCreatesAndReenables(t *testing.T) {
	svc, auditLog := newTestService(t, nil)
	actor, err := domainentitlement.UserActor("usr_alice")
	require.NoError(t, err)

	record, err := svc.Enable(context.Background(), "cust_1", "equipment_tracking", domainentitlement.SystemActor())
	require.NoError(t, err)
	assert.True(t, record.IsEnabled())

	_, err = svc.Disable(context.Background(), "cust_1", "equipment_tracking", actor)
	require.NoError(t, err)

	record, err = svc.Enable(context.Background(), "cust_1", "equipment_tracking", domainentitlement.SystemActor())
	require.NoError(t, err)
	assert.True(t, record.IsEnabled())
	assert.Nil(t, record.DisabledAt())

	entries, err := auditLog.List(context.Background(), "cust_1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, audit.ActionEnabled, entries[0].Action())
	assert.Equal(t, audit.ActionDisabled, entries[1].Action())
}

func TestService_EnableUnknownModule(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Enable(context.Background(), "cust_1", "ghost", domainentitlement.SystemActor())
	assert.True(t, errors.Is(err, domainentitlement.ErrModuleNotFound))
}

func TestService_DisableCoreModuleIsProtected(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Disable(context.Background(), "cust_1", "incident_reporting", domainentitlement.SystemActor())
	assert.True(t, errors.Is(err, domainentitlement.ErrCoreModuleProtected))
}

func TestService_DisableWithoutRecord(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Disable(context.Background(), "cust_1", "equipment_tracking", domainentitlement.SystemActor())
	assert.True(t, errors.Is(err, domainentitlement.ErrCustomerModuleNotFound))
}

func TestService_HasModule(t *testing.T) {
	svc, _ := newTestService(t, nil)

	// core modules are implicitly enabled, no record required
	enabled, err := svc.HasModule(context.Background(), "cust_1", "incident_reporting")
	require.NoError(t, err)
	assert.True(t, enabled)

	// unknown modules degrade closed
	enabled, err = svc.HasModule(context.Background(), "cust_1", "ghost")
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = svc.HasModule(context.Background(), "cust_1", "equipment_tracking")
	require.NoError(t, err)
	assert.False(t, enabled)

	_, err = svc.Enable(context.Background(), "cust_1", "equipment_tracking", domainentitlement.SystemActor())
	require.NoError(t, err)

	enabled, err = svc.HasModule(context.Background(), "cust_1", "equipment_tracking")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestService_CacheReadThroughAndInvalidation(t *testing.T) {
	cache := newFakeCache()
	svc, _ := newTestService(t, cache)

	// first call misses and populates the cache
	ids, err := svc.EnabledModuleIDs(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"incident_reporting"}, ids)
	assert.Equal(t, []string{"incident_reporting"}, cache.sets["cust_1"])

	// cached set answers HasModule without touching the repository
	enabled, err := svc.HasModule(context.Background(), "cust_1", "equipment_tracking")
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Equal(t, 1, cache.hits)

	// enabling invalidates
	_, err = svc.Enable(context.Background(), "cust_1", "equipment_tracking", domainentitlement.SystemActor())
	require.NoError(t, err)
	_, cached := cache.sets["cust_1"]
	assert.False(t, cached)

	enabled, err = svc.HasModule(context.Background(), "cust_1", "equipment_tracking")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestService_ConfigureMergesSettings(t *testing.T) {
	svc, auditLog := newTestService(t, nil)

	_, err := svc.Enable(context.Background(), "cust_1", "equipment_tracking", domainentitlement.SystemActor())
	require.NoError(t, err)

	actor, err := domainentitlement.UserActor("usr_alice")
	require.NoError(t, err)

	record, err := svc.Configure(context.Background(), "cust_1", "equipment_tracking",
		map[string]any{"inspection_interval_days": 30}, actor)
	require.NoError(t, err)

	record, err = svc.Configure(context.Background(), "cust_1", "equipment_tracking",
		map[string]any{"qr_scanning": true}, actor)
	require.NoError(t, err)

	assert.Equal(t, 30, record.Settings()["inspection_interval_days"])
	assert.Equal(t, true, record.Settings()["qr_scanning"])

	entries, err := auditLog.List(context.Background(), "cust_1")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, audit.ActionConfigured, entries[0].Action())
	assert.Equal(t, "usr_alice", entries[0].PerformedBy())
}
