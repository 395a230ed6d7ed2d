package rbac

import "github.com/manyinyire/fleetbackend-sub008/pkg/scopes"

// MaxInheritanceDepth bounds role inheritance chains. Three built-in roles
// never approach this, but custom role sources are validated against it.
const MaxInheritanceDepth = 10

// Role is a named set of permission scopes with optional inheritance.
type Role struct {
	// Permissions directly granted to this role.
	Permissions []string

	// Inherits lists role names whose permissions are included.
	Inherits []string
}

// Can checks a direct (non-inherited) permission.
func (r *Role) Can(permission string) bool {
	return scopes.HasScope(r.Permissions, permission)
}
