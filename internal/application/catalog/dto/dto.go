package dto

import "time"

// UserTierResponse is one per-user pricing band
type UserTierResponse struct {
	MinUsers     int   `json:"min_users"`
	MaxUsers     int   `json:"max_users"`
	PricePerUser int64 `json:"price_per_user"`
}

// PricingPolicyResponse summarizes how a module is priced. Amounts are cents.
type PricingPolicyResponse struct {
	Model            string             `json:"model"`
	BasePrice        int64              `json:"base_price,omitempty"`
	PricePerUser     int64              `json:"price_per_user,omitempty"`
	PricePerBuilding int64              `json:"price_per_building,omitempty"`
	UserTiers        []UserTierResponse `json:"user_tiers,omitempty"`
	SetupFee         int64              `json:"setup_fee,omitempty"`
	FreeTrialDays    int                `json:"free_trial_days,omitempty"`
}

// ModuleResponse represents a catalog module in API responses
type ModuleResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Tier          string                `json:"tier"`
	Core          bool                  `json:"core"`
	Status        string                `json:"status"`
	Features      []string              `json:"features"`
	Pricing       PricingPolicyResponse `json:"pricing"`
	Rating        float64               `json:"rating,omitempty"`
	ReviewCount   int                   `json:"review_count,omitempty"`
	Popularity    int                   `json:"popularity,omitempty"`
	Dependencies  []string              `json:"dependencies,omitempty"`
	CustomerCount int                   `json:"customer_count,omitempty"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// ListModulesRequest filters the catalog listing. Empty filters match
// everything; Query performs a case-insensitive substring search.
type ListModulesRequest struct {
	Category    string `json:"category,omitempty"`
	Tier        string `json:"tier,omitempty"`
	Status      string `json:"status,omitempty"`
	Query       string `json:"query,omitempty"`
	OnlyVisible bool   `json:"only_visible,omitempty"`
}

// GetModuleRequest fetches one module by id
type GetModuleRequest struct {
	ModuleID string `json:"module_id"`
}
