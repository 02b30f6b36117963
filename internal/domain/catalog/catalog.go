package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is a read-only view over a set of module definitions.
// It performs no mutation and has no failure modes beyond "not found".
type Catalog struct {
	modules []*ModuleDefinition
	byID    map[string]*ModuleDefinition
}

// NewCatalog builds a catalog from the given definitions.
// Definition order is preserved for listing.
func NewCatalog(modules []*ModuleDefinition) (*Catalog, error) {
	byID := make(map[string]*ModuleDefinition, len(modules))
	for _, m := range modules {
		if _, exists := byID[m.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateModule, m.ID())
		}
		byID[m.ID()] = m
	}
	return &Catalog{
		modules: modules,
		byID:    byID,
	}, nil
}

// All returns every module definition in catalog order.
func (c *Catalog) All() []*ModuleDefinition {
	result := make([]*ModuleDefinition, len(c.modules))
	copy(result, c.modules)
	return result
}

// Get looks up a module by id. The second return value reports presence;
// a missing module is not an error.
func (c *Catalog) Get(id string) (*ModuleDefinition, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// ByCategory returns modules in the given category.
func (c *Catalog) ByCategory(category Category) []*ModuleDefinition {
	return c.filter(func(m *ModuleDefinition) bool {
		return m.Category() == category
	})
}

// ByTier returns modules in the given tier.
func (c *Catalog) ByTier(tier Tier) []*ModuleDefinition {
	return c.filter(func(m *ModuleDefinition) bool {
		return m.Tier() == tier
	})
}

// ByStatus returns modules with the given lifecycle status.
func (c *Catalog) ByStatus(status ModuleStatus) []*ModuleDefinition {
	return c.filter(func(m *ModuleDefinition) bool {
		return m.Status() == status
	})
}

// CoreModules returns all core modules.
func (c *Catalog) CoreModules() []*ModuleDefinition {
	return c.filter(func(m *ModuleDefinition) bool {
		return m.IsCore()
	})
}

// VisibleModules returns all catalog-visible modules.
func (c *Catalog) VisibleModules() []*ModuleDefinition {
	return c.filter(func(m *ModuleDefinition) bool {
		return m.IsVisible()
	})
}

// Search performs a case-insensitive substring match over name, description
// and features. An empty query returns the full catalog; this is documented
// behavior, not an accident.
func (c *Catalog) Search(query string) []*ModuleDefinition {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	return c.filter(func(m *ModuleDefinition) bool {
		if strings.Contains(strings.ToLower(m.Name()), q) {
			return true
		}
		if strings.Contains(strings.ToLower(m.Description()), q) {
			return true
		}
		for _, f := range m.Features() {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	})
}

// Popular returns modules sorted by descending popularity score.
// A limit of 0 or less returns all.
func (c *Catalog) Popular(limit int) []*ModuleDefinition {
	sorted := c.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity() > sorted[j].Popularity()
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// HighRated returns modules whose rating is at or above the threshold,
// sorted by descending rating.
func (c *Catalog) HighRated(threshold float64) []*ModuleDefinition {
	result := c.filter(func(m *ModuleDefinition) bool {
		return m.Rating() >= threshold
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rating() > result[j].Rating()
	})
	return result
}

// CanActivate reports whether every dependency of the module is present in
// activeIDs. A module without dependencies is always activatable.
// An unknown module id is never activatable.
func (c *Catalog) CanActivate(moduleID string, activeIDs []string) bool {
	m, ok := c.byID[moduleID]
	if !ok {
		return false
	}
	active := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}
	for _, dep := range m.Dependencies() {
		if !active[dep] {
			return false
		}
	}
	return true
}

func (c *Catalog) filter(keep func(*ModuleDefinition) bool) []*ModuleDefinition {
	var result []*ModuleDefinition
	for _, m := range c.modules {
		if keep(m) {
			result = append(result, m)
		}
	}
	return result
}
