package dto

import "time"

// ListAuditLogsRequest lists audit entries, newest first. An empty
// CustomerID lists entries for all customers.
type ListAuditLogsRequest struct {
	CustomerID string `json:"customer_id,omitempty"`
}

// AuditEntryResponse represents one audit entry in API responses
type AuditEntryResponse struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customer_id"`
	ModuleID    string         `json:"module_id"`
	Action      string         `json:"action"`
	PerformedBy string         `json:"performed_by"`
	Timestamp   time.Time      `json:"timestamp"`
	Details     map[string]any `json:"details,omitempty"`
}
