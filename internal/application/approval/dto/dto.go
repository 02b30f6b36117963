package dto

import "time"

// CreateActivationRequest asks for a module to be activated for a customer.
type CreateActivationRequest struct {
	ModuleID         string `json:"module_id"`
	CustomerID       string `json:"customer_id"`
	CustomerName     string `json:"customer_name,omitempty"`
	RequestedBy      string `json:"requested_by"`
	RequestedByEmail string `json:"requested_by_email,omitempty"`
}

// ActivationRequestResponse represents an activation request in API responses.
// Costs are the values frozen at request-creation time, in cents.
type ActivationRequestResponse struct {
	ID               string     `json:"id"`
	ModuleID         string     `json:"module_id"`
	CustomerID       string     `json:"customer_id"`
	CustomerName     string     `json:"customer_name,omitempty"`
	RequestedBy      string     `json:"requested_by"`
	RequestedByEmail string     `json:"requested_by_email,omitempty"`
	RequestedAt      time.Time  `json:"requested_at"`
	Status           string     `json:"status"`
	ApprovedBy       *string    `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	RejectedBy       *string    `json:"rejected_by,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	MonthlyCost      int64      `json:"monthly_cost"`
	YearlyCost       int64      `json:"yearly_cost"`
}

// ApproveRequestRequest approves one pending activation request
type ApproveRequestRequest struct {
	RequestID  string `json:"request_id"`
	ApprovedBy string `json:"approved_by"`
}

// RejectRequestRequest rejects one pending activation request
type RejectRequestRequest struct {
	RequestID  string `json:"request_id"`
	RejectedBy string `json:"rejected_by"`
	Reason     string `json:"reason"`
}

// ListRequestsRequest lists activation requests. An empty CustomerID lists
// requests for all customers.
type ListRequestsRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
}
