package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
)

func regularMember(tenantID uuid.UUID) *auth.Principal {
	return &auth.Principal{
		ID:       uuid.New(),
		Email:    "driver@acme.test",
		Role:     auth.RoleRegular,
		TenantID: &tenantID,
	}
}

func platformAdmin() *auth.Principal {
	return &auth.Principal{
		ID:    uuid.New(),
		Email: "ops@fleet.test",
		Role:  auth.RoleSuperAdmin,
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("nil principal fails", func(t *testing.T) {
		t.Parallel()

		_, err := auth.RequireAuth(nil)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("valid principal passes", func(t *testing.T) {
		t.Parallel()

		p := regularMember(uuid.New())
		got, err := auth.RequireAuth(p)
		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("permanent ban fails", func(t *testing.T) {
		t.Parallel()

		p := regularMember(uuid.New())
		p.Banned = true

		_, err := auth.RequireAuth(p)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("unexpired ban fails", func(t *testing.T) {
		t.Parallel()

		p := regularMember(uuid.New())
		p.Banned = true
		expires := time.Now().Add(time.Hour)
		p.BanExpiresAt = &expires

		_, err := auth.RequireAuth(p)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("expired ban passes", func(t *testing.T) {
		t.Parallel()

		p := regularMember(uuid.New())
		p.Banned = true
		expired := time.Now().Add(-time.Hour)
		p.BanExpiresAt = &expired

		_, err := auth.RequireAuth(p)
		assert.NoError(t, err)
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	t.Run("regular cannot act as super admin", func(t *testing.T) {
		t.Parallel()

		_, err := auth.RequireRole(regularMember(uuid.New()), auth.RoleSuperAdmin)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("super admin satisfies every requirement regardless of tenant", func(t *testing.T) {
		t.Parallel()

		p := platformAdmin()
		require.Nil(t, p.TenantID)

		for _, required := range []auth.Role{auth.RoleRegular, auth.RoleTenantAdmin, auth.RoleSuperAdmin} {
			_, err := auth.RequireRole(p, required)
			assert.NoError(t, err, "required role %s", required)
		}
	})

	t.Run("tenant admin satisfies regular but not super admin", func(t *testing.T) {
		t.Parallel()

		p := regularMember(uuid.New())
		p.Role = auth.RoleTenantAdmin

		_, err := auth.RequireRole(p, auth.RoleRegular)
		assert.NoError(t, err)

		_, err = auth.RequireRole(p, auth.RoleSuperAdmin)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("banned principal is unauthenticated, not forbidden", func(t *testing.T) {
		t.Parallel()

		p := platformAdmin()
		p.Banned = true

		_, err := auth.RequireRole(p, auth.RoleRegular)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("unknown role satisfies nothing", func(t *testing.T) {
		t.Parallel()

		p := regularMember(uuid.New())
		p.Role = auth.Role("intern")

		_, err := auth.RequireRole(p, auth.RoleRegular)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestRequireTenant(t *testing.T) {
	t.Parallel()

	t.Run("member with tenant passes", func(t *testing.T) {
		t.Parallel()

		tenantID := uuid.New()
		p := regularMember(tenantID)

		got, gotTenant, err := auth.RequireTenant(p)
		require.NoError(t, err)
		assert.Same(t, p, got)
		assert.Equal(t, tenantID, gotTenant)
	})

	t.Run("platform account without tenant fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := auth.RequireTenant(platformAdmin())
		assert.ErrorIs(t, err, auth.ErrTenantRequired)
	})

	t.Run("anonymous fails with unauthenticated", func(t *testing.T) {
		t.Parallel()

		_, _, err := auth.RequireTenant(nil)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestRoleSatisfies(t *testing.T) {
	t.Parallel()

	assert.True(t, auth.RoleSuperAdmin.Satisfies(auth.RoleRegular))
	assert.True(t, auth.RoleTenantAdmin.Satisfies(auth.RoleTenantAdmin))
	assert.False(t, auth.RoleRegular.Satisfies(auth.RoleTenantAdmin))
	assert.False(t, auth.Role("intern").Satisfies(auth.RoleRegular))
	assert.False(t, auth.RoleSuperAdmin.Satisfies(auth.Role("intern")))
	assert.True(t, auth.RoleRegular.Valid())
	assert.False(t, auth.Role("intern").Valid())
}
