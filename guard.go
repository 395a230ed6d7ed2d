package fleetbackend

import (
	"errors"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
)

// Guard is a declarative access requirement attached to a route at wrap
// time. Guards only inspect the resolved principal; they never touch the
// database, so a denied request costs no transaction.
type Guard struct {
	name       string
	check      func(d *Deps, p *auth.Principal) error
	bindTenant bool
}

// Public admits every request, anonymous ones included. Handlers can still
// inspect Context.Principal for optional personalization.
func Public() Guard {
	return Guard{
		name:  "public",
		check: func(d *Deps, p *auth.Principal) error { return nil },
	}
}

// RequireAuth admits any authenticated principal without an active ban.
func RequireAuth() Guard {
	return Guard{
		name: "auth",
		check: func(d *Deps, p *auth.Principal) error {
			_, err := auth.RequireAuth(p)
			return err
		},
	}
}

// RequireRole admits principals whose role satisfies the requirement via
// the role hierarchy.
func RequireRole(role auth.Role) Guard {
	return Guard{
		name: "role:" + string(role),
		check: func(d *Deps, p *auth.Principal) error {
			_, err := auth.RequireRole(p, role)
			return err
		},
	}
}

// RequirePermission admits principals whose role grants the permission,
// directly or through role inheritance. Requires Deps.Authz.
func RequirePermission(permission string) Guard {
	return Guard{
		name: "permission:" + permission,
		check: func(d *Deps, p *auth.Principal) error {
			if _, err := auth.RequireAuth(p); err != nil {
				return err
			}
			if d.Authz == nil {
				return errors.New("fleetbackend: permission guard without authorizer")
			}
			return d.Authz.Can(string(p.Role), permission)
		},
	}
}

// RequireTenant admits authenticated principals with tenant membership and
// makes the composer open a tenant-scoped data handle for the request.
func RequireTenant() Guard {
	return Guard{
		name: "tenant",
		check: func(d *Deps, p *auth.Principal) error {
			_, _, err := auth.RequireTenant(p)
			return err
		},
		bindTenant: true,
	}
}

// RequireTenantRole combines RequireTenant with a role requirement, for
// tenant-scoped routes reserved to tenant administrators.
func RequireTenantRole(role auth.Role) Guard {
	return Guard{
		name: "tenant+role:" + string(role),
		check: func(d *Deps, p *auth.Principal) error {
			if _, err := auth.RequireRole(p, role); err != nil {
				return err
			}
			_, _, err := auth.RequireTenant(p)
			return err
		},
		bindTenant: true,
	}
}
