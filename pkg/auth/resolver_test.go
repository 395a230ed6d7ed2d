package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/session"
)

type stubSessionGetter struct {
	sess *session.Session
	err  error
}

func (g *stubSessionGetter) Get(ctx context.Context, r *http.Request) (*session.Session, error) {
	return g.sess, g.err
}

type failingIdentityStore struct{ err error }

func (s *failingIdentityStore) Lookup(ctx context.Context, userID uuid.UUID) (*auth.Principal, error) {
	return nil, s.err
}

func authenticatedSession(userID uuid.UUID) *session.Session {
	return session.New("test-token", &userID, 24*time.Hour)
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)

	t.Run("no session is anonymous", func(t *testing.T) {
		t.Parallel()

		resolver := auth.NewResolver(
			&stubSessionGetter{err: session.ErrSessionNotFound},
			auth.NewMemoryStore(), nil)

		p, err := resolver.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("expired session is anonymous", func(t *testing.T) {
		t.Parallel()

		resolver := auth.NewResolver(
			&stubSessionGetter{err: session.ErrSessionExpired},
			auth.NewMemoryStore(), nil)

		p, err := resolver.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("session without user is anonymous", func(t *testing.T) {
		t.Parallel()

		resolver := auth.NewResolver(
			&stubSessionGetter{sess: session.New("anon-token", nil, time.Hour)},
			auth.NewMemoryStore(), nil)

		p, err := resolver.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("session for deleted user is anonymous", func(t *testing.T) {
		t.Parallel()

		resolver := auth.NewResolver(
			&stubSessionGetter{sess: authenticatedSession(uuid.New())},
			auth.NewMemoryStore(), nil)

		p, err := resolver.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("resolves principal for valid session", func(t *testing.T) {
		t.Parallel()

		tenantID := uuid.New()
		want := &auth.Principal{
			ID:       uuid.New(),
			Email:    "driver@acme.test",
			Role:     auth.RoleRegular,
			TenantID: &tenantID,
		}

		identity := auth.NewMemoryStore()
		require.NoError(t, identity.Add(want, ""))

		resolver := auth.NewResolver(
			&stubSessionGetter{sess: authenticatedSession(want.ID)},
			identity, nil)

		got, err := resolver.Resolve(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, auth.RoleRegular, got.Role)
		require.NotNil(t, got.TenantID)
		assert.Equal(t, tenantID, *got.TenantID)
	})

	t.Run("session store failure surfaces as infrastructure error", func(t *testing.T) {
		t.Parallel()

		resolver := auth.NewResolver(
			&stubSessionGetter{err: session.ErrStoreUnavailable},
			auth.NewMemoryStore(), nil)

		_, err := resolver.Resolve(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrIdentityStoreUnavailable)
	})

	t.Run("identity store failure surfaces as infrastructure error", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection refused")
		resolver := auth.NewResolver(
			&stubSessionGetter{sess: authenticatedSession(uuid.New())},
			&failingIdentityStore{err: storeErr}, nil)

		_, err := resolver.Resolve(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrIdentityStoreUnavailable)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestMemoryStoreAuthenticate(t *testing.T) {
	t.Parallel()

	store := auth.NewMemoryStore()
	p := &auth.Principal{ID: uuid.New(), Email: "ops@fleet.test", Role: auth.RoleSuperAdmin}
	require.NoError(t, store.Add(p, "correct-horse"))

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		got, err := store.Authenticate(context.Background(), "ops@fleet.test", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		_, err := store.Authenticate(context.Background(), "ops@fleet.test", "battery-staple")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		_, err := store.Authenticate(context.Background(), "ghost@fleet.test", "correct-horse")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
