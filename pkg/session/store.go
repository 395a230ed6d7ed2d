package session

import (
	"context"
	"time"
)

// Store defines session persistence. It is the single source of truth for
// session state; implementations must not cache entries across requests,
// otherwise bans and logouts would not take effect immediately.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token.
	Get(ctx context.Context, token string) (*Session, error)

	// Update replaces an existing session.
	Update(ctx context.Context, session *Session) error

	// UpdateActivity updates only the last activity time.
	UpdateActivity(ctx context.Context, token string, lastActivity time.Time) error

	// Delete removes a session by token.
	Delete(ctx context.Context, token string) error

	// DeleteByUserID removes all sessions for a user, used when a user is
	// banned or changes credentials.
	DeleteByUserID(ctx context.Context, userID string) error
}
