package account

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	fleetbackend "github.com/manyinyire/fleetbackend-sub008"
	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/ratelimit"
	"github.com/manyinyire/fleetbackend-sub008/pkg/session"
)

// Authenticator verifies email/password credentials. *auth.PGStore
// satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*auth.Principal, error)
}

// SessionManager issues and revokes sessions. *session.Manager satisfies it.
type SessionManager interface {
	Issue(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (*session.Session, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
	RevokeUser(ctx context.Context, userID uuid.UUID) error
}

// Service owns the account endpoints: login, logout, current principal and
// bulk session revocation.
type Service struct {
	identity   Authenticator
	sessions   SessionManager
	loginLimit *ratelimit.Limiter
}

// Option configures the service.
type Option func(*Service)

// WithLoginLimiter throttles login attempts per email address.
func WithLoginLimiter(l *ratelimit.Limiter) Option {
	return func(s *Service) { s.loginLimit = l }
}

// NewService creates the account service.
func NewService(identity Authenticator, sessions SessionManager, opts ...Option) *Service {
	s := &Service{identity: identity, sessions: sessions}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router mounts the account routes.
func (s *Service) Router(deps *fleetbackend.Deps) http.Handler {
	r := chi.NewRouter()
	r.Post("/login", fleetbackend.Wrap(deps, fleetbackend.Public(), s.login))
	r.Post("/logout", fleetbackend.Wrap(deps, fleetbackend.Public(), s.logout))
	r.Get("/me", fleetbackend.Wrap(deps, fleetbackend.RequireAuth(), s.me))
	r.Post("/sessions/revoke", fleetbackend.Wrap(deps, fleetbackend.RequireAuth(), s.revokeSessions))
	return r
}
