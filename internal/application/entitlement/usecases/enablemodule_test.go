package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	approvalusecases "github.com/safehub-io/safehub/internal/application/approval/usecases"
	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/infrastructure/repository/memory"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
	"github.com/safehub-io/safehub/internal/shared/money"
)

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []approval.Notification
}

func (n *recordingNotifier) NotifyPendingRequest(_ context.Context, notification approval.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *recordingNotifier) sent() []approval.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]approval.Notification(nil), n.notifications...)
}

type enableFixture struct {
	requests *memory.ActivationRequestRepository
	service  *entitlementapp.Service
	notifier *recordingNotifier
	enable   *EnableModuleUseCase
}

func fixtureModule(t *testing.T, id string, core bool, basePrice int64) *catalog.ModuleDefinition {
	t.Helper()
	category := catalog.CategoryPremium
	if core {
		category = catalog.CategoryCore
	}
	def, err := catalog.NewModuleDefinition(id, "Module "+id, "test module",
		category, catalog.TierStarter, core, catalog.ModuleStatusActive, nil,
		catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: money.Cents(basePrice)})
	require.NoError(t, err)
	return def
}

func newEnableFixture(t *testing.T, defs ...*catalog.ModuleDefinition) *enableFixture {
	t.Helper()

	cat, err := catalog.NewCatalog(defs)
	require.NoError(t, err)

	log := logger.NewLogger()
	requests := memory.NewActivationRequestRepository()
	notifier := &recordingNotifier{}
	service := entitlementapp.NewService(cat, memory.NewCustomerModuleRepository(),
		memory.NewAuditLogRepository(), nil, log)

	requestActivation := approvalusecases.NewRequestActivationUseCase(
		requests, cat, service, notifier,
		approvalusecases.ApprovalPolicy{
			AutoApproveThreshold:   5000,
			ReferenceUserCount:     25,
			ReferenceBuildingCount: 1,
		}, log)

	return &enableFixture{
		requests: requests,
		service:  service,
		notifier: notifier,
		enable:   NewEnableModuleUseCase(service, requestActivation, log),
	}
}

func TestEnableModule_UserActorIsRedirectedToApproval(t *testing.T) {
	fx := newEnableFixture(t, fixtureModule(t, "equipment_tracking", false, 9900))

	response, err := fx.enable.Execute(context.Background(), dto.EnableModuleRequest{
		CustomerID:     "cust_1",
		ModuleID:       "equipment_tracking",
		Actor:          "usr_alice",
		CustomerName:   "Acme BV",
		RequesterEmail: "alice@acme.example",
	})
	require.NoError(t, err)

	assert.False(t, response.Activated)
	assert.Nil(t, response.Module)
	assert.Contains(t, response.ActivationRequestID, "req_")
	assert.Equal(t, "pending", response.RequestStatus)

	// entitlement untouched until a human approves
	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "equipment_tracking")
	require.NoError(t, err)
	assert.False(t, enabled)

	// one pending request on file, approvers notified
	pending, err := fx.requests.List(context.Background(), "cust_1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "usr_alice", pending[0].RequestedBy())

	sent := fx.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, response.ActivationRequestID, sent[0].RequestID)
}

func TestEnableModule_UserActorCheapModuleActivatesImmediately(t *testing.T) {
	fx := newEnableFixture(t, fixtureModule(t, "floor_plan_viewer", false, 1500))

	response, err := fx.enable.Execute(context.Background(), dto.EnableModuleRequest{
		CustomerID: "cust_1",
		ModuleID:   "floor_plan_viewer",
		Actor:      "usr_alice",
	})
	require.NoError(t, err)

	assert.True(t, response.Activated)
	assert.Equal(t, "auto_approved", response.RequestStatus)
	assert.Contains(t, response.ActivationRequestID, "req_")

	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "floor_plan_viewer")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Empty(t, fx.notifier.sent())
}

func TestEnableModule_SystemActorEnablesDirectly(t *testing.T) {
	fx := newEnableFixture(t, fixtureModule(t, "equipment_tracking", false, 9900))

	response, err := fx.enable.Execute(context.Background(), dto.EnableModuleRequest{
		CustomerID: "cust_1",
		ModuleID:   "equipment_tracking",
		Actor:      "system",
	})
	require.NoError(t, err)

	assert.True(t, response.Activated)
	require.NotNil(t, response.Module)
	assert.True(t, response.Module.Enabled)
	assert.Empty(t, response.ActivationRequestID)

	// no approval workflow involvement at all
	requests, err := fx.requests.List(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.Empty(t, fx.notifier.sent())

	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "equipment_tracking")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestEnableModule_ApprovalActorBypasses(t *testing.T) {
	fx := newEnableFixture(t, fixtureModule(t, "equipment_tracking", false, 9900))

	response, err := fx.enable.Execute(context.Background(), dto.EnableModuleRequest{
		CustomerID: "cust_1",
		ModuleID:   "equipment_tracking",
		Actor:      "approved_by_admin_bob",
	})
	require.NoError(t, err)

	assert.True(t, response.Activated)
	require.NotNil(t, response.Module)
	assert.Equal(t, "approved_by_admin_bob", response.Module.EnabledBy)
}

func TestEnableModule_UnknownModule(t *testing.T) {
	fx := newEnableFixture(t, fixtureModule(t, "equipment_tracking", false, 9900))

	_, err := fx.enable.Execute(context.Background(), dto.EnableModuleRequest{
		CustomerID: "cust_1",
		ModuleID:   "ghost",
		Actor:      "system",
	})
	assert.True(t, errors.IsNotFoundError(err))
}

// failingModuleRepository simulates a storage outage.
type failingModuleRepository struct{}

func (failingModuleRepository) Create(context.Context, *entitlement.CustomerModule) error {
	return fmt.Errorf("storage unavailable")
}

func (failingModuleRepository) Update(context.Context, *entitlement.CustomerModule) error {
	return fmt.Errorf("storage unavailable")
}

func (failingModuleRepository) GetByCustomerAndModule(context.Context, string, string) (*entitlement.CustomerModule, error) {
	return nil, fmt.Errorf("storage unavailable")
}

func (failingModuleRepository) ListByCustomer(context.Context, string) ([]*entitlement.CustomerModule, error) {
	return nil, fmt.Errorf("storage unavailable")
}

func TestGetCustomerModules_PersistenceFailureIsInternalError(t *testing.T) {
	cat, err := catalog.NewCatalog([]*catalog.ModuleDefinition{
		fixtureModule(t, "equipment_tracking", false, 9900),
	})
	require.NoError(t, err)

	log := logger.NewLogger()
	service := entitlementapp.NewService(cat, failingModuleRepository{},
		memory.NewAuditLogRepository(), nil, log)
	uc := NewGetCustomerModulesUseCase(service, log)

	_, err = uc.Execute(context.Background(), dto.GetCustomerModulesRequest{CustomerID: "cust_1"})
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}
