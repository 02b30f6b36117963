package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	approvaldto "github.com/safehub-io/safehub/internal/application/approval/dto"
	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/infrastructure/repository/memory"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
	"github.com/safehub-io/safehub/internal/shared/money"
)

type captureNotifier struct {
	mu            sync.Mutex
	notifications []approval.Notification
}

func (n *captureNotifier) NotifyPendingRequest(_ context.Context, notification approval.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *captureNotifier) sent() []approval.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]approval.Notification(nil), n.notifications...)
}

type approvalFixture struct {
	requests    *memory.ActivationRequestRepository
	entitlement *memory.CustomerModuleRepository
	auditLog    *memory.AuditLogRepository
	notifier    *captureNotifier
	service     *entitlementapp.Service
	request     *RequestActivationUseCase
	approve     *ApproveRequestUseCase
	reject      *RejectRequestUseCase
	list        *ListRequestsUseCase
}

func testModule(t *testing.T, id string, core bool, basePrice int64) *catalog.ModuleDefinition {
	t.Helper()
	category := catalog.CategoryPremium
	if core {
		category = catalog.CategoryCore
	}
	def, err := catalog.NewModuleDefinition(id, "Module "+id, "desc", category,
		catalog.TierProfessional, core, catalog.ModuleStatusActive, nil, catalog.PricingPolicy{
			Model:     catalog.PricingModelFixed,
			BasePrice: money.Cents(basePrice),
		})
	require.NoError(t, err)
	return def
}

func newApprovalFixture(t *testing.T, defs ...*catalog.ModuleDefinition) *approvalFixture {
	t.Helper()

	cat, err := catalog.NewCatalog(defs)
	require.NoError(t, err)

	log := logger.NewLogger()
	requests := memory.NewActivationRequestRepository()
	modules := memory.NewCustomerModuleRepository()
	auditLog := memory.NewAuditLogRepository()
	notifier := &captureNotifier{}

	service := entitlementapp.NewService(cat, modules, auditLog, nil, log)
	policy := ApprovalPolicy{
		AutoApproveThreshold:   5000,
		ReferenceUserCount:     25,
		ReferenceBuildingCount: 1,
	}

	return &approvalFixture{
		requests:    requests,
		entitlement: modules,
		auditLog:    auditLog,
		notifier:    notifier,
		service:     service,
		request:     NewRequestActivationUseCase(requests, cat, service, notifier, policy, log),
		approve:     NewApproveRequestUseCase(requests, service, log),
		reject:      NewRejectRequestUseCase(requests, log),
		list:        NewListRequestsUseCase(requests, log),
	}
}

func TestRequestActivation_AutoApprovesCheapModule(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "cheap", false, 1000))

	response, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "cheap",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.RequestStatusAutoApproved.String(), response.Status)
	assert.Contains(t, response.ID, "req_")
	assert.Equal(t, int64(1000), response.MonthlyCost)
	// 1000 * 12 - 10% = 10800
	assert.Equal(t, int64(10800), response.YearlyCost)

	// enabled immediately, no notification
	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "cheap")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Empty(t, fx.notifier.sent())
}

func TestRequestActivation_AutoApprovesCoreModuleRegardlessOfPrice(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "base", true, 99900))

	response, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "base",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.RequestStatusAutoApproved.String(), response.Status)
	assert.Empty(t, fx.notifier.sent())
}

func TestRequestActivation_ThresholdIsExclusive(t *testing.T) {
	// exactly at the threshold goes to human review
	fx := newApprovalFixture(t, testModule(t, "edge", false, 5000))

	response, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "edge",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.RequestStatusPending.String(), response.Status)
}

func TestRequestActivation_PendingPathNotifiesApprovers(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "expensive", false, 9900))

	response, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:         "expensive",
		CustomerID:       "cust_1",
		CustomerName:     "Acme Facilities",
		RequestedBy:      "usr_alice",
		RequestedByEmail: "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, approval.RequestStatusPending.String(), response.Status)

	// module stays off until someone approves
	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "expensive")
	require.NoError(t, err)
	assert.False(t, enabled)

	sent := fx.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, response.ID, sent[0].RequestID)
	assert.Equal(t, "Module expensive", sent[0].ModuleName)
	assert.Equal(t, "alice@example.com", sent[0].RequesterEmail)
	assert.Equal(t, money.Cents(9900), sent[0].MonthlyCost)
}

func TestRequestActivation_UnknownModule(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "cheap", false, 1000))

	_, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "ghost",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestApproveRequest_EnablesModuleWithApproverAttribution(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "expensive", false, 9900))

	pending, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "expensive",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})
	require.NoError(t, err)

	approved, err := fx.approve.Execute(context.Background(), approvaldto.ApproveRequestRequest{
		RequestID:  pending.ID,
		ApprovedBy: "admin_bob",
	})
	require.NoError(t, err)
	assert.Equal(t, approval.RequestStatusApproved.String(), approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin_bob", *approved.ApprovedBy)

	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "expensive")
	require.NoError(t, err)
	assert.True(t, enabled)

	// the audit trail attributes the enable to the approval workflow
	entries, err := fx.auditLog.List(context.Background(), "cust_1")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "approved_by_admin_bob", entries[0].PerformedBy())
}

func TestApproveRequest_AlreadyFinalizedIsConflict(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "expensive", false, 9900))

	pending, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "expensive",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})
	require.NoError(t, err)

	_, err = fx.approve.Execute(context.Background(), approvaldto.ApproveRequestRequest{
		RequestID:  pending.ID,
		ApprovedBy: "admin_bob",
	})
	require.NoError(t, err)

	_, err = fx.approve.Execute(context.Background(), approvaldto.ApproveRequestRequest{
		RequestID:  pending.ID,
		ApprovedBy: "admin_carol",
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestRejectRequest(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "expensive", false, 9900))

	pending, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "expensive",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})
	require.NoError(t, err)

	rejected, err := fx.reject.Execute(context.Background(), approvaldto.RejectRequestRequest{
		RequestID:  pending.ID,
		RejectedBy: "admin_bob",
		Reason:     "budget freeze this quarter",
	})
	require.NoError(t, err)
	assert.Equal(t, approval.RequestStatusRejected.String(), rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "budget freeze this quarter", *rejected.RejectionReason)

	enabled, err := fx.service.HasModule(context.Background(), "cust_1", "expensive")
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestRejectRequest_ReasonRequired(t *testing.T) {
	fx := newApprovalFixture(t, testModule(t, "expensive", false, 9900))

	pending, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID:    "expensive",
		CustomerID:  "cust_1",
		RequestedBy: "usr_alice",
	})
	require.NoError(t, err)

	_, err = fx.reject.Execute(context.Background(), approvaldto.RejectRequestRequest{
		RequestID:  pending.ID,
		RejectedBy: "admin_bob",
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestListRequests(t *testing.T) {
	fx := newApprovalFixture(t,
		testModule(t, "cheap", false, 1000),
		testModule(t, "expensive", false, 9900),
	)

	_, err := fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID: "cheap", CustomerID: "cust_1", RequestedBy: "usr_alice",
	})
	require.NoError(t, err)
	_, err = fx.request.Execute(context.Background(), approvaldto.CreateActivationRequest{
		ModuleID: "expensive", CustomerID: "cust_2", RequestedBy: "usr_bob",
	})
	require.NoError(t, err)

	all, err := fx.list.Execute(context.Background(), approvaldto.ListRequestsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := fx.list.Execute(context.Background(), approvaldto.ListRequestsRequest{CustomerID: "cust_2"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "expensive", mine[0].ModuleID)
}
