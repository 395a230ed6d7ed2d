package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/manyinyire/fleetbackend-sub008/pkg/scopes"
)

// Authorizer answers permission questions for named roles. Permissions are
// precomputed (including inherited ones) at construction, so runtime checks
// are map lookups plus scope matching with no locking.
type Authorizer interface {
	// Can checks if a role has the permission, direct or inherited.
	Can(roleName, permission string) error

	// CanAny checks if a role has any of the permissions.
	CanAny(roleName string, permissions ...string) error

	// CanAll checks if a role has all of the permissions.
	CanAll(roleName string, permissions ...string) error

	// VerifyRole returns ErrInvalidRole if the role does not exist.
	VerifyRole(role string) error
}

// RoleSource provides role definitions.
type RoleSource interface {
	// Load returns a map of all roles keyed by name.
	Load(ctx context.Context) (map[string]Role, error)
}

type authorizer struct {
	// rolePermissions is immutable after construction.
	rolePermissions map[string][]string
}

// NewAuthorizer builds an Authorizer from the provided source, validating
// inheritance for cycles and excessive depth.
func NewAuthorizer(ctx context.Context, source RoleSource) (Authorizer, error) {
	roles, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if roles == nil {
		roles = make(map[string]Role)
	}

	if err := validateInheritance(roles); err != nil {
		return nil, err
	}

	rolePermissions := make(map[string][]string, len(roles))
	for name := range roles {
		all := collectPermissions(name, roles, make(map[string]bool), 0)
		rolePermissions[name] = scopes.Normalize(all)
	}

	return &authorizer{rolePermissions: rolePermissions}, nil
}

func (a *authorizer) Can(roleName, permission string) error {
	granted, exists := a.rolePermissions[roleName]
	if !exists {
		return ErrInvalidRole
	}

	if !scopes.HasScope(granted, permission) {
		return ErrInsufficientPermissions
	}

	return nil
}

func (a *authorizer) CanAny(roleName string, permissions ...string) error {
	if len(permissions) == 0 {
		return nil
	}

	granted, exists := a.rolePermissions[roleName]
	if !exists {
		return ErrInvalidRole
	}

	if !scopes.HasAnyScopes(granted, permissions) {
		return ErrInsufficientPermissions
	}

	return nil
}

func (a *authorizer) CanAll(roleName string, permissions ...string) error {
	if len(permissions) == 0 {
		return nil
	}

	granted, exists := a.rolePermissions[roleName]
	if !exists {
		return ErrInvalidRole
	}

	if !scopes.HasAllScopes(granted, permissions) {
		return ErrInsufficientPermissions
	}

	return nil
}

func (a *authorizer) VerifyRole(role string) error {
	if _, exists := a.rolePermissions[role]; !exists {
		return ErrInvalidRole
	}
	return nil
}

// collectPermissions gathers direct and inherited permissions via DFS.
func collectPermissions(roleName string, roles map[string]Role, visited map[string]bool, depth int) []string {
	if depth > MaxInheritanceDepth || visited[roleName] {
		return nil
	}
	visited[roleName] = true

	role, exists := roles[roleName]
	if !exists {
		return nil
	}

	result := make([]string, len(role.Permissions))
	copy(result, role.Permissions)

	for _, parent := range role.Inherits {
		result = append(result, collectPermissions(parent, roles, visited, depth+1)...)
	}

	return result
}

func validateInheritance(roles map[string]Role) error {
	for name := range roles {
		if err := checkCycle(name, roles, []string{name}); err != nil {
			return err
		}
	}
	return nil
}

func checkCycle(roleName string, roles map[string]Role, path []string) error {
	role, exists := roles[roleName]
	if !exists {
		return nil
	}

	if len(path) > MaxInheritanceDepth {
		return errors.Join(ErrCircularInheritance,
			fmt.Errorf("inheritance depth exceeds maximum of %d", MaxInheritanceDepth))
	}

	for _, parent := range role.Inherits {
		for _, seen := range path {
			if seen == parent {
				return errors.Join(ErrCircularInheritance,
					fmt.Errorf("circular inheritance detected: %s -> %s", roleName, parent))
			}
		}

		if err := checkCycle(parent, roles, append(path, parent)); err != nil {
			return err
		}
	}

	return nil
}
