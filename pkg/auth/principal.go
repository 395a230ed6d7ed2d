package auth

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request. It is
// rebuilt from the identity store on every request and is immutable for the
// request's lifetime; nothing in this layer persists it.
type Principal struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	TenantID         *uuid.UUID `json:"tenant_id,omitempty"`
	EmailVerified    bool       `json:"email_verified"`
	Banned           bool       `json:"banned"`
	BanExpiresAt     *time.Time `json:"ban_expires_at,omitempty"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
}

// HasActiveBan reports whether the principal is currently banned. A ban with
// no expiry is permanent; an expired ban no longer counts.
func (p *Principal) HasActiveBan() bool {
	if p == nil || !p.Banned {
		return false
	}
	return p.BanExpiresAt == nil || time.Now().Before(*p.BanExpiresAt)
}

// IsPlatform reports whether the principal is a platform-level account with
// no tenant membership.
func (p *Principal) IsPlatform() bool {
	return p != nil && p.TenantID == nil
}
