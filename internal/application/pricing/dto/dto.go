package dto

import "time"

// CalculatePricingRequest prices a set of modules for a customer's usage.
// All monetary values in requests and responses are cents.
type CalculatePricingRequest struct {
	ModuleIDs     []string `json:"module_ids"`
	UserCount     int      `json:"user_count"`
	BuildingCount int      `json:"building_count"`
	BillingCycle  string   `json:"billing_cycle,omitempty"`
	DiscountCode  string   `json:"discount_code,omitempty"`
}

// LineItemResponse is the monthly price of one module
type LineItemResponse struct {
	ModuleID    string `json:"module_id"`
	ModuleName  string `json:"module_name"`
	MonthlyCost int64  `json:"monthly_cost"`
}

// PricingBreakdownResponse is a full pricing calculation result
type PricingBreakdownResponse struct {
	Lines          []LineItemResponse `json:"lines"`
	Subtotal       int64              `json:"subtotal"`
	SetupFees      int64              `json:"setup_fees"`
	DiscountCode   string             `json:"discount_code,omitempty"`
	DiscountAmount int64              `json:"discount_amount"`
	Total          int64              `json:"total"`
	YearlyDiscount int64              `json:"yearly_discount"`
	FinalTotal     int64              `json:"final_total"`
	BillingCycle   string             `json:"billing_cycle"`
}

// GenerateQuoteRequest generates a persistent-looking quote document for a
// pricing configuration.
type GenerateQuoteRequest struct {
	ModuleIDs     []string `json:"module_ids"`
	UserCount     int      `json:"user_count"`
	BuildingCount int      `json:"building_count"`
	BillingCycle  string   `json:"billing_cycle,omitempty"`
	DiscountCode  string   `json:"discount_code,omitempty"`
}

// QuoteResponse is a generated quote
type QuoteResponse struct {
	ID         string                   `json:"id"`
	CreatedAt  time.Time                `json:"created_at"`
	ValidUntil time.Time                `json:"valid_until"`
	Breakdown  PricingBreakdownResponse `json:"breakdown"`
	Terms      []string                 `json:"terms"`
}

// CalculateROIRequest projects return on investment for one module
type CalculateROIRequest struct {
	ModuleID               string `json:"module_id"`
	UserCount              int    `json:"user_count"`
	BuildingCount          int    `json:"building_count"`
	ExpectedMonthlySavings int64  `json:"expected_monthly_savings"`
}

// ROIResponse is an ROI projection
type ROIResponse struct {
	ModuleID               string  `json:"module_id"`
	MonthlyCost            int64   `json:"monthly_cost"`
	YearlyCost             int64   `json:"yearly_cost"`
	ExpectedMonthlySavings int64   `json:"expected_monthly_savings"`
	BreakEvenMonths        float64 `json:"break_even_months"`
	YearlyROIPercent       float64 `json:"yearly_roi_percent"`
}

// RegisterDiscountCodeRequest registers a discount code
type RegisterDiscountCodeRequest struct {
	Code              string     `json:"code"`
	Type              string     `json:"type"`
	Value             int64      `json:"value"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	ApplicableModules []string   `json:"applicable_modules,omitempty"`
	MinimumSpend      int64      `json:"minimum_spend,omitempty"`
	MaxDiscount       int64      `json:"max_discount,omitempty"`
}

// DiscountCodeResponse represents a registered discount code
type DiscountCodeResponse struct {
	Code              string     `json:"code"`
	Type              string     `json:"type"`
	Value             int64      `json:"value"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	ApplicableModules []string   `json:"applicable_modules,omitempty"`
	MinimumSpend      int64      `json:"minimum_spend,omitempty"`
	MaxDiscount       int64      `json:"max_discount,omitempty"`
}
