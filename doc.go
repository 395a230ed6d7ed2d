// Package fleetbackend composes the authorization pipeline every route runs
// through: resolve the principal, enforce the route's guard, bind a
// tenant-scoped transaction where required, invoke the handler, commit, and
// translate failures into uniform JSON error responses.
//
// Handlers receive a Context carrying the principal and, on tenant-scoped
// routes, a data handle already restricted to the caller's tenant by the
// database's row-level security. A handler cannot reach another tenant's
// rows by construction rather than by discipline.
package fleetbackend
