package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Config holds session lifecycle settings. TouchOnResolve opts into sliding
// activity tracking: when set, Get records the last activity time once per
// ActivityUpdateThreshold. It is off by default so that resolving a request
// credential never writes to the store.
type Config struct {
	TTL                     time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	TouchOnResolve          bool          `env:"SESSION_TOUCH_ON_RESOLVE" envDefault:"false"`
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_THRESHOLD" envDefault:"5m"`
	CookieName              string        `env:"SESSION_COOKIE_NAME" envDefault:"fleet_session"`
	SecureCookies           bool          `env:"SESSION_SECURE_COOKIES" envDefault:"true"`
	CleanupInterval         time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`
}

// Manager issues, resolves, refreshes and destroys sessions. It never
// interprets credential formats itself; that is the transport's job.
type Manager struct {
	store     Store
	transport Transport
	cfg       Config
}

// NewManager creates a session manager over the given store and transport.
func NewManager(store Store, transport Transport, cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = 168 * time.Hour
	}
	return &Manager{store: store, transport: transport, cfg: cfg}
}

// Issue creates an authenticated session for the user and writes the
// credential to the response. Called at login only.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := New(token, &userID, m.cfg.TTL)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, session.Token, m.cfg.TTL); err != nil {
		// Do not leave an orphaned session the client never learned about.
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}

	return session, nil
}

// Get resolves the session referenced by the request's credential.
// Returns ErrSessionNotFound or ErrSessionExpired for the anonymous cases.
// Resolution is a pure read unless Config.TouchOnResolve is set.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	if m.cfg.TouchOnResolve && time.Since(session.LastActivityAt) >= m.cfg.ActivityUpdateThreshold {
		session.Touch()
		_ = m.store.UpdateActivity(ctx, session.Token, session.LastActivityAt)
	}

	return session, nil
}

// Refresh extends the session expiry and re-sends the credential.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	session, err := m.Get(ctx, r)
	if err != nil {
		return nil, err
	}

	session.ExpiresAt = time.Now().Add(m.cfg.TTL)
	session.Touch()

	if err := m.store.Update(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, session.Token, m.cfg.TTL); err != nil {
		return nil, err
	}

	return session, nil
}

// Destroy deletes the session and clears the client credential.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.GetToken(r)
	if err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}

	return m.transport.ClearToken(w)
}

// RevokeUser deletes all sessions of a user. Called on ban.
func (m *Manager) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	return m.store.DeleteByUserID(ctx, userID.String())
}

// generateToken produces a 256-bit random URL-safe token.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
