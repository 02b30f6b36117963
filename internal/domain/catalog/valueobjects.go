// Package catalog provides the static registry of purchasable feature modules.
// Definitions are immutable after construction; the catalog itself is a
// read-only value injected at process start.
package catalog

// Category represents the commercial category of a module
type Category string

const (
	CategoryCore       Category = "core"
	CategoryPremium    Category = "premium"
	CategoryEnterprise Category = "enterprise"
	CategoryAddon      Category = "addon"
)

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryCore, CategoryPremium, CategoryEnterprise, CategoryAddon:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// Tier represents the subscription tier a module belongs to
type Tier string

const (
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
	TierCustom       Tier = "custom"
)

// IsValid checks if the tier is valid
func (t Tier) IsValid() bool {
	switch t {
	case TierStarter, TierProfessional, TierEnterprise, TierCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// ModuleStatus represents the lifecycle status of a module definition
type ModuleStatus string

const (
	ModuleStatusActive     ModuleStatus = "active"
	ModuleStatusBeta       ModuleStatus = "beta"
	ModuleStatusDeprecated ModuleStatus = "deprecated"
)

// IsValid checks if the module status is valid
func (s ModuleStatus) IsValid() bool {
	switch s {
	case ModuleStatusActive, ModuleStatusBeta, ModuleStatusDeprecated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the module status
func (s ModuleStatus) String() string {
	return string(s)
}

// PricingModel represents how a module's price is computed
type PricingModel string

const (
	PricingModelFixed       PricingModel = "fixed"
	PricingModelPerUser     PricingModel = "per_user"
	PricingModelPerBuilding PricingModel = "per_building"
	PricingModelHybrid      PricingModel = "hybrid"
)

// IsValid checks if the pricing model is valid
func (m PricingModel) IsValid() bool {
	switch m {
	case PricingModelFixed, PricingModelPerUser, PricingModelPerBuilding, PricingModelHybrid:
		return true
	default:
		return false
	}
}

// String returns the string representation of the pricing model
func (m PricingModel) String() string {
	return string(m)
}
