package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor_Bypass(t *testing.T) {
	system := SystemActor()
	assert.True(t, system.BypassesApproval())
	assert.Equal(t, ActorKindSystem, system.Kind())
	assert.Equal(t, "system", system.String())

	approval, err := ApprovalActor("dave")
	require.NoError(t, err)
	assert.True(t, approval.BypassesApproval())
	assert.Equal(t, "approved_by_dave", approval.String())
	assert.Equal(t, "dave", approval.Subject())

	user, err := UserActor("erin@example.com")
	require.NoError(t, err)
	assert.False(t, user.BypassesApproval())
	assert.Equal(t, "erin@example.com", user.String())
}

func TestActor_RequiredSubjects(t *testing.T) {
	_, err := ApprovalActor("")
	assert.Error(t, err)

	_, err = UserActor("")
	assert.Error(t, err)
}

func TestParseActor(t *testing.T) {
	tests := []struct {
		input    string
		kind     ActorKind
		rendered string
	}{
		{"system", ActorKindSystem, "system"},
		{"system_seed", ActorKindSystem, "system"},
		{"approved_by_frank", ActorKindApproval, "approved_by_frank"},
		{"grace@example.com", ActorKindUser, "grace@example.com"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			actor, err := ParseActor(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, actor.Kind())
			assert.Equal(t, tc.rendered, actor.String())
		})
	}

	_, err := ParseActor("")
	assert.Error(t, err)
}
