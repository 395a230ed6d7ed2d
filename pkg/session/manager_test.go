package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyinyire/fleetbackend-sub008/pkg/cookie"
	"github.com/manyinyire/fleetbackend-sub008/pkg/session"
)

func newManagerWithConfig(t *testing.T, cfg session.Config) (*session.Manager, *session.MemoryStore) {
	t.Helper()

	cookieMgr, err := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)

	store := session.NewMemoryStore(0)
	transport := session.NewCookieTransport(cookieMgr, "fleet_session", false)

	return session.NewManager(store, transport, cfg), store
}

func newCookieManager(t *testing.T) (*session.Manager, *session.MemoryStore) {
	return newManagerWithConfig(t, session.Config{
		TTL:                     time.Hour,
		ActivityUpdateThreshold: time.Minute,
	})
}

func issueSession(t *testing.T, mgr *session.Manager, userID uuid.UUID) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	_, err := mgr.Issue(context.Background(), rec, userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManagerIssueAndGet(t *testing.T) {
	t.Parallel()

	mgr, _ := newCookieManager(t)
	uid := uuid.New()

	req := issueSession(t, mgr, uid)

	got, err := mgr.Get(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, got.IsAuthenticated())
	assert.Equal(t, uid, *got.UserID)
}

func TestManagerGetWithoutCredential(t *testing.T) {
	t.Parallel()

	mgr, _ := newCookieManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := mgr.Get(context.Background(), req)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManagerDestroy(t *testing.T) {
	t.Parallel()

	mgr, _ := newCookieManager(t)
	req := issueSession(t, mgr, uuid.New())

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Destroy(context.Background(), rec, req))

	_, err := mgr.Get(context.Background(), req)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// The clearing cookie must expire the credential client-side too.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestManagerRevokeUser(t *testing.T) {
	t.Parallel()

	mgr, _ := newCookieManager(t)
	uid := uuid.New()
	req := issueSession(t, mgr, uid)

	require.NoError(t, mgr.RevokeUser(context.Background(), uid))

	_, err := mgr.Get(context.Background(), req)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManagerResolutionIsReadOnly(t *testing.T) {
	t.Parallel()

	mgr, store := newManagerWithConfig(t, session.Config{TTL: time.Hour})

	rec := httptest.NewRecorder()
	issued, err := mgr.Issue(context.Background(), rec, uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	time.Sleep(10 * time.Millisecond)
	_, err = mgr.Get(context.Background(), req)
	require.NoError(t, err)

	stored, err := store.Get(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.LastActivityAt, stored.LastActivityAt)
}

func TestManagerTouchOnResolve(t *testing.T) {
	t.Parallel()

	mgr, store := newManagerWithConfig(t, session.Config{TTL: time.Hour, TouchOnResolve: true})

	rec := httptest.NewRecorder()
	issued, err := mgr.Issue(context.Background(), rec, uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	time.Sleep(10 * time.Millisecond)
	_, err = mgr.Get(context.Background(), req)
	require.NoError(t, err)

	stored, err := store.Get(context.Background(), issued.Token)
	require.NoError(t, err)
	assert.True(t, stored.LastActivityAt.After(issued.LastActivityAt))
}

func TestManagerRefreshExtendsExpiry(t *testing.T) {
	t.Parallel()

	mgr, _ := newCookieManager(t)
	req := issueSession(t, mgr, uuid.New())

	before, err := mgr.Get(context.Background(), req)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	rec := httptest.NewRecorder()
	after, err := mgr.Refresh(context.Background(), rec, req)
	require.NoError(t, err)

	assert.True(t, after.ExpiresAt.After(before.ExpiresAt))
}
