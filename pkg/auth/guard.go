package auth

import "github.com/google/uuid"

// Guards are pure assertions over an already-resolved principal. They do no
// I/O and are idempotent; callers compose them in front of business logic.
//
// A banned principal whose ban has not expired is indistinguishable from an
// unauthenticated one: no partial access.

// RequireAuth asserts that a principal is present and not actively banned.
func RequireAuth(p *Principal) (*Principal, error) {
	if p == nil || p.HasActiveBan() {
		return nil, ErrUnauthenticated
	}
	return p, nil
}

// RequireRole asserts authentication and that the principal's role
// satisfies the required role in the hierarchy
// super_admin > tenant_admin > regular.
func RequireRole(p *Principal, required Role) (*Principal, error) {
	p, err := RequireAuth(p)
	if err != nil {
		return nil, err
	}

	if !p.Role.Satisfies(required) {
		return nil, ErrForbidden
	}

	return p, nil
}

// RequireTenant asserts authentication and tenant membership, returning the
// principal together with its tenant id. Platform accounts without a tenant
// (and users mid-onboarding) fail with ErrTenantRequired.
func RequireTenant(p *Principal) (*Principal, uuid.UUID, error) {
	p, err := RequireAuth(p)
	if err != nil {
		return nil, uuid.Nil, err
	}

	if p.TenantID == nil {
		return nil, uuid.Nil, ErrTenantRequired
	}

	return p, *p.TenantID, nil
}
