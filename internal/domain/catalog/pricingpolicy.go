package catalog

import (
	"fmt"

	"github.com/safehub-io/safehub/internal/shared/money"
)

// UserTier is one band of a tiered per-user rate table.
// Bands are checked in list order; the first band whose [MinUsers, MaxUsers]
// range contains the user count wins. Overlapping bands are a configuration
// error, not a runtime one.
type UserTier struct {
	MinUsers     int         `yaml:"min_users" json:"minUsers"`
	MaxUsers     int         `yaml:"max_users" json:"maxUsers"`
	PricePerUser money.Cents `yaml:"price_per_user" json:"pricePerUser"`
}

// Contains reports whether the band covers the given user count.
func (t UserTier) Contains(userCount int) bool {
	return userCount >= t.MinUsers && userCount <= t.MaxUsers
}

// PricingPolicy describes how a module is priced. All amounts are cents.
type PricingPolicy struct {
	Model            PricingModel `yaml:"model" json:"model"`
	BasePrice        money.Cents  `yaml:"base_price" json:"basePrice"`
	PricePerUser     money.Cents  `yaml:"price_per_user" json:"pricePerUser"`
	PricePerBuilding money.Cents  `yaml:"price_per_building" json:"pricePerBuilding"`
	UserTiers        []UserTier   `yaml:"user_tiers" json:"userTiers,omitempty"`
	SetupFee         money.Cents  `yaml:"setup_fee" json:"setupFee"`
	FreeTrialDays    int          `yaml:"free_trial_days" json:"freeTrialDays"`
}

// Validate performs structural validation of the policy.
func (p PricingPolicy) Validate() error {
	if !p.Model.IsValid() {
		return fmt.Errorf("invalid pricing model: %s", p.Model)
	}
	for i, tier := range p.UserTiers {
		if tier.MinUsers > tier.MaxUsers {
			return fmt.Errorf("user tier %d: min users %d exceeds max users %d", i, tier.MinUsers, tier.MaxUsers)
		}
	}
	if p.FreeTrialDays < 0 {
		return fmt.Errorf("free trial days cannot be negative")
	}
	return nil
}

// TieredRate resolves the per-user rate for the given user count.
// Falls back to the flat PricePerUser when no band matches or no bands exist.
func (p PricingPolicy) TieredRate(userCount int) money.Cents {
	for _, tier := range p.UserTiers {
		if tier.Contains(userCount) {
			return tier.PricePerUser
		}
	}
	return p.PricePerUser
}
