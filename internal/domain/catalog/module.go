package catalog

import (
	"fmt"
	"time"
)

// ModuleDefinition is an immutable definition of a purchasable feature module.
// Definitions are seeded at startup and never mutated; the id is globally
// unique and stable.
type ModuleDefinition struct {
	id            string
	name          string
	description   string
	category      Category
	tier          Tier
	core          bool
	enabled       bool
	visible       bool
	implemented   bool
	status        ModuleStatus
	features      []string
	pricing       PricingPolicy
	rating        float64
	reviewCount   int
	popularity    int
	dependencies  []string
	customerCount int
	updatedAt     time.Time
}

// NewModuleDefinition creates a new module definition.
func NewModuleDefinition(
	id, name, description string,
	category Category,
	tier Tier,
	core bool,
	status ModuleStatus,
	features []string,
	pricing PricingPolicy,
) (*ModuleDefinition, error) {
	if id == "" {
		return nil, fmt.Errorf("module ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("module name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("module name too long (max 100 characters)")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid module status: %s", status)
	}
	if err := pricing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing policy: %w", err)
	}
	if features == nil {
		features = []string{}
	}

	return &ModuleDefinition{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		tier:        tier,
		core:        core,
		enabled:     true,
		visible:     true,
		implemented: true,
		status:      status,
		features:    features,
		pricing:     pricing,
		updatedAt:   time.Now(),
	}, nil
}

// ModuleDefinitionParams carries the optional metadata for ReconstructModuleDefinition.
type ModuleDefinitionParams struct {
	Enabled       bool
	Visible       bool
	Implemented   bool
	Rating        float64
	ReviewCount   int
	Popularity    int
	Dependencies  []string
	CustomerCount int
	UpdatedAt     time.Time
}

// ReconstructModuleDefinition rebuilds a full definition, metadata included.
// Used by the catalog loader.
func ReconstructModuleDefinition(
	id, name, description string,
	category Category,
	tier Tier,
	core bool,
	status ModuleStatus,
	features []string,
	pricing PricingPolicy,
	params ModuleDefinitionParams,
) (*ModuleDefinition, error) {
	def, err := NewModuleDefinition(id, name, description, category, tier, core, status, features, pricing)
	if err != nil {
		return nil, err
	}
	for _, dep := range params.Dependencies {
		if dep == id {
			return nil, fmt.Errorf("module %s cannot depend on itself", id)
		}
	}

	def.enabled = params.Enabled
	def.visible = params.Visible
	def.implemented = params.Implemented
	def.rating = params.Rating
	def.reviewCount = params.ReviewCount
	def.popularity = params.Popularity
	def.dependencies = params.Dependencies
	def.customerCount = params.CustomerCount
	if !params.UpdatedAt.IsZero() {
		def.updatedAt = params.UpdatedAt
	}
	return def, nil
}

// ID returns the module ID
func (m *ModuleDefinition) ID() string {
	return m.id
}

// Name returns the module name
func (m *ModuleDefinition) Name() string {
	return m.name
}

// Description returns the module description
func (m *ModuleDefinition) Description() string {
	return m.description
}

// Category returns the module category
func (m *ModuleDefinition) Category() Category {
	return m.category
}

// Tier returns the module tier
func (m *ModuleDefinition) Tier() Tier {
	return m.tier
}

// IsCore reports whether the module is a core module.
// Core modules are always enabled for every customer and can never be disabled.
func (m *ModuleDefinition) IsCore() bool {
	return m.core
}

// IsEnabled reports whether the module is globally enabled for sale
func (m *ModuleDefinition) IsEnabled() bool {
	return m.enabled
}

// IsVisible reports whether the module is shown in the catalog
func (m *ModuleDefinition) IsVisible() bool {
	return m.visible
}

// IsImplemented reports whether the module is implemented
func (m *ModuleDefinition) IsImplemented() bool {
	return m.implemented
}

// Status returns the module lifecycle status
func (m *ModuleDefinition) Status() ModuleStatus {
	return m.status
}

// Features returns the ordered feature list
func (m *ModuleDefinition) Features() []string {
	return m.features
}

// Pricing returns the module's pricing policy
func (m *ModuleDefinition) Pricing() PricingPolicy {
	return m.pricing
}

// Rating returns the average review rating
func (m *ModuleDefinition) Rating() float64 {
	return m.rating
}

// ReviewCount returns the number of reviews
func (m *ModuleDefinition) ReviewCount() int {
	return m.reviewCount
}

// Popularity returns the popularity score
func (m *ModuleDefinition) Popularity() int {
	return m.popularity
}

// Dependencies returns the module ids that must already be entitled
// before this module can be activated.
func (m *ModuleDefinition) Dependencies() []string {
	return m.dependencies
}

// CustomerCount returns the number of customers currently using the module
func (m *ModuleDefinition) CustomerCount() int {
	return m.customerCount
}

// UpdatedAt returns when the definition was last updated
func (m *ModuleDefinition) UpdatedAt() time.Time {
	return m.updatedAt
}
