package tenant

import "errors"

var (
	// ErrTenantNotFound indicates no tenant matches the given identifier.
	ErrTenantNotFound = errors.New("tenant.not_found")

	// ErrTenantInactive indicates the tenant exists but has been suspended
	// or deactivated.
	ErrTenantInactive = errors.New("tenant.inactive")

	// ErrProviderUnavailable indicates an infrastructure failure loading
	// tenant data, distinct from "no such tenant".
	ErrProviderUnavailable = errors.New("tenant.provider_unavailable")
)
