package auth

// Role is the coarse access level of a principal. Higher roles satisfy
// requirements for lower ones, never the other way around.
type Role string

const (
	// RoleRegular is a standard tenant member.
	RoleRegular Role = "regular"

	// RoleTenantAdmin administers a single tenant.
	RoleTenantAdmin Role = "tenant_admin"

	// RoleSuperAdmin is a platform operator and may span tenants.
	RoleSuperAdmin Role = "super_admin"
)

// roleLevels orders roles for hierarchy checks. Unknown roles get level 0
// and satisfy nothing.
var roleLevels = map[Role]int{
	RoleRegular:     1,
	RoleTenantAdmin: 2,
	RoleSuperAdmin:  3,
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Satisfies reports whether a principal holding role r meets a requirement
// for the required role.
func (r Role) Satisfies(required Role) bool {
	level, ok := roleLevels[r]
	if !ok {
		return false
	}
	requiredLevel, ok := roleLevels[required]
	if !ok {
		return false
	}
	return level >= requiredLevel
}
