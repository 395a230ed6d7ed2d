package rbac

import "errors"

var (
	// ErrInvalidRole is returned when a role does not exist.
	ErrInvalidRole = errors.New("rbac.invalid_role")

	// ErrInsufficientPermissions is returned when a required permission is
	// not granted.
	ErrInsufficientPermissions = errors.New("rbac.insufficient_permissions")

	// ErrCircularInheritance is returned when roles inherit from each other.
	ErrCircularInheritance = errors.New("rbac.circular_inheritance")
)
