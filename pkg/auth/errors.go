package auth

import "errors"

var (
	// ErrUnauthenticated indicates no usable identity: missing, invalid or
	// expired credentials, or an actively banned account. Recoverable by
	// re-authenticating.
	ErrUnauthenticated = errors.New("auth.unauthenticated")

	// ErrForbidden indicates an authenticated principal whose role does not
	// satisfy the requirement.
	ErrForbidden = errors.New("auth.forbidden")

	// ErrTenantRequired indicates an authenticated principal with no tenant
	// membership calling a tenant-scoped operation.
	ErrTenantRequired = errors.New("auth.tenant_required")

	// ErrUserNotFound indicates the identity store has no such user.
	ErrUserNotFound = errors.New("auth.user_not_found")

	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrIdentityStoreUnavailable indicates an infrastructure failure
	// talking to the identity store, distinct from "no such session".
	ErrIdentityStoreUnavailable = errors.New("auth.identity_store_unavailable")
)
