package scopes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manyinyire/fleetbackend-sub008/pkg/scopes"
)

func TestScopeMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scope   string
		pattern string
		want    bool
	}{
		{"vehicles.read", "vehicles.read", true},
		{"vehicles.read", "*", true},
		{"vehicles.read", "vehicles.*", true},
		{"vehicles.read", "tenant.*", false},
		{"vehicles.read", "vehicles.write", false},
		{"vehicles", "vehicles.*", false},
		{"platform.tenants.list", "platform.*", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scopes.ScopeMatches(tt.scope, tt.pattern),
			"scope=%s pattern=%s", tt.scope, tt.pattern)
	}
}

func TestHasScope(t *testing.T) {
	t.Parallel()

	granted := []string{"vehicles.*", "tenant.read"}

	assert.True(t, scopes.HasScope(granted, "vehicles.read"))
	assert.True(t, scopes.HasScope(granted, "tenant.read"))
	assert.False(t, scopes.HasScope(granted, "tenant.manage"))
	assert.False(t, scopes.HasScope(nil, "vehicles.read"))
}

func TestHasAllScopes(t *testing.T) {
	t.Parallel()

	granted := []string{"vehicles.*", "tenant.read"}

	assert.True(t, scopes.HasAllScopes(granted, []string{"vehicles.read", "vehicles.write"}))
	assert.False(t, scopes.HasAllScopes(granted, []string{"vehicles.read", "tenant.manage"}))
	assert.True(t, scopes.HasAllScopes(granted, nil))
}

func TestHasAnyScopes(t *testing.T) {
	t.Parallel()

	granted := []string{"tenant.read"}

	assert.True(t, scopes.HasAnyScopes(granted, []string{"tenant.manage", "tenant.read"}))
	assert.False(t, scopes.HasAnyScopes(granted, []string{"tenant.manage"}))
	assert.True(t, scopes.HasAnyScopes(granted, nil))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Nil(t, scopes.Normalize(nil))
	assert.Equal(t, []string{"*"}, scopes.Normalize([]string{"a.b", "*", "c"}))
	assert.Equal(t, []string{"a", "b"}, scopes.Normalize([]string{"b", "a", "b"}))
}
