// Package catalog loads module definitions from YAML files or the built-in
// seed. The catalog is immutable once loaded; changing it means restarting.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domain "github.com/safehub-io/safehub/internal/domain/catalog"
)

// moduleSpec is the YAML shape of one module definition.
type moduleSpec struct {
	ID           string               `yaml:"id"`
	Name         string               `yaml:"name"`
	Description  string               `yaml:"description"`
	Category     string               `yaml:"category"`
	Tier         string               `yaml:"tier"`
	Core         bool                 `yaml:"core"`
	Status       string               `yaml:"status"`
	Features     []string             `yaml:"features"`
	Pricing      domain.PricingPolicy `yaml:"pricing"`
	Rating       float64              `yaml:"rating"`
	ReviewCount  int                  `yaml:"review_count"`
	Popularity   int                  `yaml:"popularity"`
	Dependencies []string             `yaml:"dependencies"`
	Hidden       bool                 `yaml:"hidden"`
}

type catalogFile struct {
	Modules []moduleSpec `yaml:"modules"`
}

// Load reads a YAML catalog file. An empty path falls back to the built-in
// seed catalog.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(file.Modules) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no modules", path)
	}

	return build(file.Modules)
}

func build(specs []moduleSpec) (*domain.Catalog, error) {
	definitions := make([]*domain.ModuleDefinition, 0, len(specs))
	for _, spec := range specs {
		status := domain.ModuleStatus(spec.Status)
		if spec.Status == "" {
			status = domain.ModuleStatusActive
		}

		def, err := domain.ReconstructModuleDefinition(
			spec.ID,
			spec.Name,
			spec.Description,
			domain.Category(spec.Category),
			domain.Tier(spec.Tier),
			spec.Core,
			status,
			spec.Features,
			spec.Pricing,
			domain.ModuleDefinitionParams{
				Enabled:      true,
				Visible:      !spec.Hidden,
				Implemented:  true,
				Rating:       spec.Rating,
				ReviewCount:  spec.ReviewCount,
				Popularity:   spec.Popularity,
				Dependencies: spec.Dependencies,
			},
		)
		if err != nil {
			return nil, fmt.Errorf("invalid module definition %s: %w", spec.ID, err)
		}
		definitions = append(definitions, def)
	}
	return domain.NewCatalog(definitions)
}
