package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/safehub-io/safehub/internal/domain/catalog"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	all := cat.All()
	assert.NotEmpty(t, all)

	core := cat.CoreModules()
	require.NotEmpty(t, core)
	for _, m := range core {
		// core modules are bundled, never separately priced
		assert.Equal(t, domain.PricingModelFixed, m.Pricing().Model)
		assert.Zero(t, m.Pricing().BasePrice)
	}

	// dependencies must reference modules that exist
	for _, m := range all {
		for _, dep := range m.Dependencies() {
			_, ok := cat.Get(dep)
			assert.True(t, ok, "module %s depends on unknown module %s", m.ID(), dep)
		}
	}
}

func TestLoad_EmptyPathUsesSeed(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	_, ok := cat.Get("incident_reporting")
	assert.True(t, ok)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
modules:
  - id: lone_worker
    name: Lone Worker Protection
    description: Check-in timers and panic alerts for staff working alone.
    category: premium
    tier: professional
    features:
      - Check-in timers
      - Panic alerts
    pricing:
      model: per_user
      price_per_user: 300
    rating: 4.3
    popularity: 40
  - id: base
    name: Base
    description: Core platform.
    category: core
    tier: starter
    core: true
    pricing:
      model: fixed
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)

	m, ok := cat.Get("lone_worker")
	require.True(t, ok)
	assert.Equal(t, "Lone Worker Protection", m.Name())
	assert.Equal(t, domain.PricingModelPerUser, m.Pricing().Model)
	assert.True(t, m.IsVisible())
	// status defaults to active
	assert.Equal(t, domain.ModuleStatusActive, m.Status())

	base, ok := cat.Get("base")
	require.True(t, ok)
	assert.True(t, base.IsCore())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty module list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("modules: []"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid definition", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := "modules:\n  - id: bad\n    name: Bad\n    category: bogus\n    tier: starter\n    pricing:\n      model: fixed\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
