package rbac

import "context"

// MemorySource is a static in-memory RoleSource.
type MemorySource struct {
	roles map[string]Role
}

// NewMemorySource creates a RoleSource from a static role map.
func NewMemorySource(roles map[string]Role) *MemorySource {
	return &MemorySource{roles: roles}
}

func (s *MemorySource) Load(ctx context.Context) (map[string]Role, error) {
	out := make(map[string]Role, len(s.roles))
	for name, role := range s.roles {
		out[name] = role
	}
	return out, nil
}

// DefaultRoles returns the built-in fleet role set. Tenant admins extend
// regular members, platform admins extend tenant admins and additionally
// hold every platform scope.
func DefaultRoles() map[string]Role {
	return map[string]Role{
		"regular": {
			Permissions: []string{
				"vehicles.read",
				"trips.read",
				"profile.manage",
			},
		},
		"tenant_admin": {
			Permissions: []string{
				"vehicles.*",
				"trips.*",
				"tenant.manage",
				"members.manage",
			},
			Inherits: []string{"regular"},
		},
		"super_admin": {
			Permissions: []string{
				"platform.*",
			},
			Inherits: []string{"tenant_admin"},
		},
	}
}
