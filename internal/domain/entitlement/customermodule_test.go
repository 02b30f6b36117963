package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserActor(t *testing.T, userID string) Actor {
	t.Helper()
	actor, err := UserActor(userID)
	require.NoError(t, err)
	return actor
}

func TestNewCustomerModule_ValidInput(t *testing.T) {
	cm, err := NewCustomerModule("cust-1", "incident-reporting", SystemActor())

	require.NoError(t, err)
	require.NotNil(t, cm)
	assert.Equal(t, "cust-1", cm.CustomerID())
	assert.Equal(t, "incident-reporting", cm.ModuleID())
	assert.True(t, cm.IsEnabled())
	assert.Equal(t, "system", cm.EnabledBy())
	assert.False(t, cm.EnabledAt().IsZero())
	assert.Nil(t, cm.DisabledAt())
	assert.Nil(t, cm.DisabledBy())
	assert.Equal(t, 1, cm.Version())
}

func TestNewCustomerModule_MissingFields(t *testing.T) {
	cm, err := NewCustomerModule("", "m", SystemActor())
	assert.ErrorIs(t, err, ErrCustomerIDRequired)
	assert.Nil(t, cm)

	cm, err = NewCustomerModule("c", "", SystemActor())
	assert.ErrorIs(t, err, ErrModuleIDRequired)
	assert.Nil(t, cm)
}

func TestCustomerModule_DisableStampsAndPreservesHistory(t *testing.T) {
	cm, err := NewCustomerModule("cust-1", "analytics", SystemActor())
	require.NoError(t, err)

	cm.Disable(newUserActor(t, "alice@example.com"))

	assert.False(t, cm.IsEnabled())
	require.NotNil(t, cm.DisabledAt())
	require.NotNil(t, cm.DisabledBy())
	assert.Equal(t, "alice@example.com", *cm.DisabledBy())
	// enable stamps remain: history is preserved
	assert.Equal(t, "system", cm.EnabledBy())
	assert.Equal(t, 2, cm.Version())
}

func TestCustomerModule_ReEnableClearsDisabledStamps(t *testing.T) {
	cm, err := NewCustomerModule("cust-1", "analytics", SystemActor())
	require.NoError(t, err)
	cm.Disable(newUserActor(t, "alice"))

	approver, err := ApprovalActor("bob")
	require.NoError(t, err)
	cm.Enable(approver)

	assert.True(t, cm.IsEnabled())
	assert.Nil(t, cm.DisabledAt())
	assert.Nil(t, cm.DisabledBy())
	assert.Equal(t, "approved_by_bob", cm.EnabledBy())
}

func TestCustomerModule_UpdateSettingsMerges(t *testing.T) {
	cm, err := NewCustomerModule("cust-1", "visitors", SystemActor())
	require.NoError(t, err)

	cm.UpdateSettings(map[string]any{"badge_layout": "compact"})
	cm.UpdateSettings(map[string]any{"self_checkin": true})

	assert.Equal(t, "compact", cm.Settings()["badge_layout"])
	assert.Equal(t, true, cm.Settings()["self_checkin"])
}

func TestReconstructCustomerModule(t *testing.T) {
	now := time.Now()
	disabledBy := "carol"

	cm, err := ReconstructCustomerModule(42, "cust-9", "analytics", false, now, "system",
		&now, &disabledBy, map[string]any{"k": "v"}, 3, now, now)

	require.NoError(t, err)
	assert.Equal(t, uint(42), cm.ID())
	assert.False(t, cm.IsEnabled())
	assert.Equal(t, 3, cm.Version())
	assert.Equal(t, "v", cm.Settings()["k"])
}

func TestReconstructCustomerModule_ZeroID(t *testing.T) {
	now := time.Now()
	cm, err := ReconstructCustomerModule(0, "c", "m", true, now, "system", nil, nil, nil, 1, now, now)

	assert.Error(t, err)
	assert.Nil(t, cm)
}

func TestCustomerModule_SetID(t *testing.T) {
	cm, err := NewCustomerModule("c", "m", SystemActor())
	require.NoError(t, err)

	require.NoError(t, cm.SetID(7))
	assert.Equal(t, uint(7), cm.ID())

	// already set
	assert.Error(t, cm.SetID(8))
}
