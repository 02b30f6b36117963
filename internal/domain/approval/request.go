// Package approval provides the activation request aggregate and its state
// machine. pending is the only non-terminal state; approved, rejected and
// auto_approved are terminal and immutable.
package approval

import (
	"fmt"
	"time"

	"github.com/safehub-io/safehub/internal/shared/id"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// RequestStatus represents the status of a module activation request
type RequestStatus string

const (
	RequestStatusPending      RequestStatus = "pending"
	RequestStatusApproved     RequestStatus = "approved"
	RequestStatusRejected     RequestStatus = "rejected"
	RequestStatusAutoApproved RequestStatus = "auto_approved"
)

// IsValid checks if the request status is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusAutoApproved:
		return true
	default:
		return false
	}
}

// String returns the string representation of the request status
func (s RequestStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status allows no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s != RequestStatusPending
}

// Request is the module activation request aggregate.
type Request struct {
	id               string
	moduleID         string
	customerID       string
	customerName     string
	requestedBy      string
	requestedByEmail string
	requestedAt      time.Time
	status           RequestStatus
	approvedBy       *string
	approvedAt       *time.Time
	rejectedBy       *string
	rejectedAt       *time.Time
	rejectionReason  *string
	monthlyCost      money.Cents
	yearlyCost       money.Cents
	version          int
}

// NewRequest creates an activation request. When autoApproved is true the
// request is created directly in the terminal auto_approved state; it never
// passes through pending.
func NewRequest(
	moduleID, customerID, customerName, requestedBy, requestedByEmail string,
	monthlyCost, yearlyCost money.Cents,
	autoApproved bool,
) (*Request, error) {
	if moduleID == "" {
		return nil, fmt.Errorf("module ID is required")
	}
	if customerID == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if requestedBy == "" {
		return nil, fmt.Errorf("requested by is required")
	}

	requestID, err := id.NewActivationRequestID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request ID: %w", err)
	}

	status := RequestStatusPending
	if autoApproved {
		status = RequestStatusAutoApproved
	}

	return &Request{
		id:               requestID,
		moduleID:         moduleID,
		customerID:       customerID,
		customerName:     customerName,
		requestedBy:      requestedBy,
		requestedByEmail: requestedByEmail,
		requestedAt:      time.Now(),
		status:           status,
		monthlyCost:      monthlyCost,
		yearlyCost:       yearlyCost,
		version:          1,
	}, nil
}

// ReconstructRequest rebuilds a request from persistence.
func ReconstructRequest(
	requestID, moduleID, customerID, customerName, requestedBy, requestedByEmail string,
	requestedAt time.Time,
	status RequestStatus,
	approvedBy *string, approvedAt *time.Time,
	rejectedBy *string, rejectedAt *time.Time, rejectionReason *string,
	monthlyCost, yearlyCost money.Cents,
	version int,
) (*Request, error) {
	if requestID == "" {
		return nil, fmt.Errorf("request ID is required")
	}
	if moduleID == "" {
		return nil, fmt.Errorf("module ID is required")
	}
	if customerID == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid request status: %s", status)
	}

	return &Request{
		id:               requestID,
		moduleID:         moduleID,
		customerID:       customerID,
		customerName:     customerName,
		requestedBy:      requestedBy,
		requestedByEmail: requestedByEmail,
		requestedAt:      requestedAt,
		status:           status,
		approvedBy:       approvedBy,
		approvedAt:       approvedAt,
		rejectedBy:       rejectedBy,
		rejectedAt:       rejectedAt,
		rejectionReason:  rejectionReason,
		monthlyCost:      monthlyCost,
		yearlyCost:       yearlyCost,
		version:          version,
	}, nil
}

// ID returns the request ID
func (r *Request) ID() string {
	return r.id
}

// ModuleID returns the module being requested
func (r *Request) ModuleID() string {
	return r.moduleID
}

// CustomerID returns the requesting customer id
func (r *Request) CustomerID() string {
	return r.customerID
}

// CustomerName returns the requesting customer display name
func (r *Request) CustomerName() string {
	return r.customerName
}

// RequestedBy returns who filed the request
func (r *Request) RequestedBy() string {
	return r.requestedBy
}

// RequestedByEmail returns the requester's email address
func (r *Request) RequestedByEmail() string {
	return r.requestedByEmail
}

// RequestedAt returns when the request was filed
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// Status returns the request status
func (r *Request) Status() RequestStatus {
	return r.status
}

// ApprovedBy returns who approved the request, nil if not approved
func (r *Request) ApprovedBy() *string {
	return r.approvedBy
}

// ApprovedAt returns when the request was approved, nil if not approved
func (r *Request) ApprovedAt() *time.Time {
	return r.approvedAt
}

// RejectedBy returns who rejected the request, nil if not rejected
func (r *Request) RejectedBy() *string {
	return r.rejectedBy
}

// RejectedAt returns when the request was rejected, nil if not rejected
func (r *Request) RejectedAt() *time.Time {
	return r.rejectedAt
}

// RejectionReason returns the rejection reason, nil if not rejected
func (r *Request) RejectionReason() *string {
	return r.rejectionReason
}

// MonthlyCost returns the monthly cost computed at request-creation time.
// Costs are never recomputed for an existing request.
func (r *Request) MonthlyCost() money.Cents {
	return r.monthlyCost
}

// YearlyCost returns the yearly cost computed at request-creation time
func (r *Request) YearlyCost() money.Cents {
	return r.yearlyCost
}

// Version returns the aggregate version
func (r *Request) Version() int {
	return r.version
}

// IsTerminal reports whether the request is in a terminal state
func (r *Request) IsTerminal() bool {
	return r.status.IsTerminal()
}

// Approve transitions pending→approved. Terminal requests are immutable;
// re-approving one returns ErrRequestAlreadyFinalized rather than silently
// re-triggering activation.
func (r *Request) Approve(approvedBy string) error {
	if approvedBy == "" {
		return fmt.Errorf("approved by is required")
	}
	if r.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrRequestAlreadyFinalized, r.status)
	}

	now := time.Now()
	r.status = RequestStatusApproved
	r.approvedBy = &approvedBy
	r.approvedAt = &now
	r.version++
	return nil
}

// Reject transitions pending→rejected. A non-empty reason is required.
func (r *Request) Reject(rejectedBy, reason string) error {
	if rejectedBy == "" {
		return fmt.Errorf("rejected by is required")
	}
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	if r.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrRequestAlreadyFinalized, r.status)
	}

	now := time.Now()
	r.status = RequestStatusRejected
	r.rejectedBy = &rejectedBy
	r.rejectedAt = &now
	r.rejectionReason = &reason
	r.version++
	return nil
}
