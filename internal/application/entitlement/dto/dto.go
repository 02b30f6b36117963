package dto

import "time"

// CustomerModuleResponse represents an entitlement record in API responses
type CustomerModuleResponse struct {
	CustomerID string         `json:"customer_id"`
	ModuleID   string         `json:"module_id"`
	Enabled    bool           `json:"enabled"`
	EnabledAt  time.Time      `json:"enabled_at"`
	EnabledBy  string         `json:"enabled_by"`
	DisabledAt *time.Time     `json:"disabled_at,omitempty"`
	DisabledBy *string        `json:"disabled_by,omitempty"`
	Settings   map[string]any `json:"settings,omitempty"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// GetCustomerModulesRequest lists the entitlement records of one customer
type GetCustomerModulesRequest struct {
	CustomerID string `json:"customer_id"`
}

// GetEnabledModulesRequest lists the enabled module ids of one customer
type GetEnabledModulesRequest struct {
	CustomerID string `json:"customer_id"`
}

// EnabledModuleSummary is the catalog view of one enabled module
type EnabledModuleSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Tier     string `json:"tier"`
	Core     bool   `json:"core"`
}

// EnabledModulesResponse carries the enabled modules of one customer
type EnabledModulesResponse struct {
	CustomerID string                 `json:"customer_id"`
	ModuleIDs  []string               `json:"module_ids"`
	Modules    []EnabledModuleSummary `json:"modules"`
}

// HasModuleRequest asks whether a module is enabled for a customer
type HasModuleRequest struct {
	CustomerID string `json:"customer_id"`
	ModuleID   string `json:"module_id"`
}

// HasModuleResponse answers a HasModuleRequest
type HasModuleResponse struct {
	CustomerID string `json:"customer_id"`
	ModuleID   string `json:"module_id"`
	Enabled    bool   `json:"enabled"`
}

// EnableModuleRequest asks to enable a module for a customer. Actor is the
// audit attribution of the caller; ordinary users are routed through the
// approval workflow instead of enabling directly.
type EnableModuleRequest struct {
	CustomerID     string `json:"customer_id"`
	ModuleID       string `json:"module_id"`
	Actor          string `json:"actor"`
	CustomerName   string `json:"customer_name,omitempty"`
	RequesterEmail string `json:"requester_email,omitempty"`
}

// EnableModuleResponse reports the outcome of an enable request. Exactly one
// of Module or ActivationRequestID is set: Module when the module was enabled
// immediately, ActivationRequestID when the request went to approval.
type EnableModuleResponse struct {
	Activated           bool                    `json:"activated"`
	Module              *CustomerModuleResponse `json:"module,omitempty"`
	ActivationRequestID string                  `json:"activation_request_id,omitempty"`
	RequestStatus       string                  `json:"request_status,omitempty"`
}

// DisableModuleRequest asks to disable a module for a customer
type DisableModuleRequest struct {
	CustomerID string `json:"customer_id"`
	ModuleID   string `json:"module_id"`
	Actor      string `json:"actor"`
}

// ConfigureModuleRequest merges settings into a customer's module record
type ConfigureModuleRequest struct {
	CustomerID string         `json:"customer_id"`
	ModuleID   string         `json:"module_id"`
	Actor      string         `json:"actor"`
	Settings   map[string]any `json:"settings"`
}
