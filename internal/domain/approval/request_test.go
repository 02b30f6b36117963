package approval

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newPendingRequest(t *testing.T) *Request {
	t.Helper()
	req, err := NewRequest("incident-reporting", "cust-1", "Acme BV", "alice", "alice@acme.example", 7900, 85320, false)
	require.NoError(t, err)
	require.NotNil(t, req)
	return req
}

func TestNewRequest_Pending(t *testing.T) {
	req := newPendingRequest(t)

	assert.True(t, strings.HasPrefix(req.ID(), "req_"))
	assert.Equal(t, RequestStatusPending, req.Status())
	assert.False(t, req.IsTerminal())
	assert.Equal(t, int64(7900), int64(req.MonthlyCost()))
	assert.Equal(t, int64(85320), int64(req.YearlyCost()))
	assert.Nil(t, req.ApprovedBy())
	assert.Nil(t, req.RejectedBy())
	assert.Equal(t, 1, req.Version())
}

func TestNewRequest_AutoApproved(t *testing.T) {
	req, err := NewRequest("visitors", "cust-1", "Acme BV", "alice", "alice@acme.example", 0, 0, true)

	require.NoError(t, err)
	// auto-approved requests are born terminal, never pending
	assert.Equal(t, RequestStatusAutoApproved, req.Status())
	assert.True(t, req.IsTerminal())
}

func TestNewRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name                            string
		moduleID, customerID, requester string
	}{
		{"missing module", "", "c", "r"},
		{"missing customer", "m", "", "r"},
		{"missing requester", "m", "c", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewRequest(tc.moduleID, tc.customerID, "name", tc.requester, "e@x", 0, 0, false)
			assert.Error(t, err)
			assert.Nil(t, req)
		})
	}
}

func TestRequest_Approve(t *testing.T) {
	req := newPendingRequest(t)

	require.NoError(t, req.Approve("bob"))

	assert.Equal(t, RequestStatusApproved, req.Status())
	require.NotNil(t, req.ApprovedBy())
	assert.Equal(t, "bob", *req.ApprovedBy())
	require.NotNil(t, req.ApprovedAt())
	assert.Equal(t, 2, req.Version())
}

func TestRequest_ApproveTerminalFails(t *testing.T) {
	req := newPendingRequest(t)
	require.NoError(t, req.Approve("bob"))

	err := req.Approve("carol")

	assert.ErrorIs(t, err, ErrRequestAlreadyFinalized)
	// original approval stamps untouched
	assert.Equal(t, "bob", *req.ApprovedBy())
	assert.Equal(t, 2, req.Version())
}

func TestRequest_Reject(t *testing.T) {
	req := newPendingRequest(t)

	require.NoError(t, req.Reject("bob", "budget freeze"))

	assert.Equal(t, RequestStatusRejected, req.Status())
	require.NotNil(t, req.RejectedBy())
	assert.Equal(t, "bob", *req.RejectedBy())
	require.NotNil(t, req.RejectionReason())
	assert.Equal(t, "budget freeze", *req.RejectionReason())
}

func TestRequest_RejectRequiresReason(t *testing.T) {
	req := newPendingRequest(t)

	err := req.Reject("bob", "")

	assert.ErrorIs(t, err, ErrRejectionReasonRequired)
	assert.Equal(t, RequestStatusPending, req.Status())
}

func TestRequest_RejectTerminalFails(t *testing.T) {
	req := newPendingRequest(t)
	require.NoError(t, req.Reject("bob", "no"))

	assert.ErrorIs(t, req.Reject("carol", "again"), ErrRequestAlreadyFinalized)
	assert.ErrorIs(t, req.Approve("carol"), ErrRequestAlreadyFinalized)
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.True(t, RequestStatusApproved.IsTerminal())
	assert.True(t, RequestStatusRejected.IsTerminal())
	assert.True(t, RequestStatusAutoApproved.IsTerminal())
}

func TestReconstructRequest(t *testing.T) {
	now := time.Now()
	approver := "bob"

	req, err := ReconstructRequest("req_abc123", "m", "c", "Acme", "alice", "a@x", now,
		RequestStatusApproved, &approver, &now, nil, nil, nil, 7900, 85320, 2)

	require.NoError(t, err)
	assert.Equal(t, "req_abc123", req.ID())
	assert.Equal(t, RequestStatusApproved, req.Status())
	assert.Equal(t, 2, req.Version())
}

func TestReconstructRequest_InvalidStatus(t *testing.T) {
	req, err := ReconstructRequest("req_abc", "m", "c", "n", "r", "e", time.Now(),
		RequestStatus("bogus"), nil, nil, nil, nil, nil, 0, 0, 1)

	assert.Error(t, err)
	assert.Nil(t, req)
}
