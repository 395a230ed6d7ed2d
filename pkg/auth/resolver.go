package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/manyinyire/fleetbackend-sub008/pkg/session"
)

// IdentityStore is the single source of truth for user identity. The
// resolver queries it on every request instead of caching, so bans and role
// changes take effect immediately.
type IdentityStore interface {
	// Lookup returns the principal for a user id, or ErrUserNotFound.
	Lookup(ctx context.Context, userID uuid.UUID) (*Principal, error)
}

// SessionGetter resolves the session referenced by a request's credential.
// *session.Manager satisfies it.
type SessionGetter interface {
	Get(ctx context.Context, r *http.Request) (*session.Session, error)
}

// Resolver recovers a Principal from inbound request credentials.
type Resolver struct {
	sessions SessionGetter
	identity IdentityStore
	log      *slog.Logger
}

// NewResolver creates a resolver over the given session and identity
// stores. A nil logger disables resolution logging.
func NewResolver(sessions SessionGetter, identity IdentityStore, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{sessions: sessions, identity: identity, log: log}
}

// Resolve recovers the principal behind the request's credential.
//
// A missing, invalid or expired credential yields (nil, nil): anonymous is
// not an error at this layer, so public endpoints can share the resolver
// with protected ones. Only infrastructure failures return a non-nil error.
// Resolving never mutates session state.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) (*Principal, error) {
	sess, err := r.sessions.Get(ctx, req)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			r.log.DebugContext(ctx, "session resolution: anonymous", slog.String("reason", err.Error()))
			return nil, nil
		}
		return nil, errors.Join(ErrIdentityStoreUnavailable, err)
	}

	if !sess.IsAuthenticated() {
		r.log.DebugContext(ctx, "session resolution: anonymous session")
		return nil, nil
	}

	principal, err := r.identity.Lookup(ctx, *sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// A session pointing at a deleted user is treated as anonymous,
			// not as an infrastructure failure.
			r.log.DebugContext(ctx, "session resolution: user gone",
				slog.String("user_id", sess.UserID.String()))
			return nil, nil
		}
		return nil, errors.Join(ErrIdentityStoreUnavailable, err)
	}

	r.log.DebugContext(ctx, "session resolution: resolved",
		slog.String("principal_id", principal.ID.String()),
		slog.String("role", string(principal.Role)))

	return principal, nil
}
