package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	fleetbackend "github.com/manyinyire/fleetbackend-sub008"
	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type principalView struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Role          auth.Role  `json:"role"`
	TenantID      *uuid.UUID `json:"tenant_id,omitempty"`
	EmailVerified bool       `json:"email_verified"`
}

type loginResponse struct {
	User      principalView `json:"user"`
	ExpiresAt time.Time     `json:"expires_at"`
}

func viewOf(p *auth.Principal) principalView {
	return principalView{
		ID:            p.ID,
		Email:         p.Email,
		Role:          p.Role,
		TenantID:      p.TenantID,
		EmailVerified: p.EmailVerified,
	}
}

func (s *Service) login(ctx *fleetbackend.Context) (fleetbackend.Response, error) {
	var req loginRequest
	if err := json.NewDecoder(ctx.Request().Body).Decode(&req); err != nil {
		return nil, fleetbackend.BadRequest("Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return nil, fleetbackend.BadRequest("Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if s.loginLimit != nil {
		res, err := s.loginLimit.Allow(ctx, "login:"+email)
		// A limiter outage fails open: losing throttling is better than
		// losing logins.
		if err == nil && !res.Allowed {
			return nil, fleetbackend.NewError(http.StatusTooManyRequests, "Too many login attempts", nil)
		}
	}

	p, err := s.identity.Authenticate(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}

	// A banned account cannot open new sessions; the response is
	// indistinguishable from a wrong password.
	if p.HasActiveBan() {
		return nil, auth.ErrInvalidCredentials
	}

	sess, err := s.sessions.Issue(ctx, ctx.ResponseWriter(), p.ID)
	if err != nil {
		return nil, err
	}

	return fleetbackend.JSON(loginResponse{
		User:      viewOf(p),
		ExpiresAt: sess.ExpiresAt,
	}), nil
}

func (s *Service) logout(ctx *fleetbackend.Context) (fleetbackend.Response, error) {
	err := s.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request())
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return nil, err
	}
	return fleetbackend.NoContent(), nil
}

func (s *Service) me(ctx *fleetbackend.Context) (fleetbackend.Response, error) {
	return fleetbackend.JSON(viewOf(ctx.Principal())), nil
}

// revokeSessions destroys every session of the calling user, including the
// current one. Used after password changes or on suspected token theft.
func (s *Service) revokeSessions(ctx *fleetbackend.Context) (fleetbackend.Response, error) {
	p := ctx.Principal()

	if err := s.sessions.RevokeUser(ctx, p.ID); err != nil {
		return nil, err
	}
	if err := s.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil &&
		!errors.Is(err, session.ErrSessionNotFound) {
		return nil, err
	}

	return fleetbackend.NoContent(), nil
}
