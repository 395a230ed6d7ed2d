// Package auth recovers the request principal and enforces authorization
// guards.
//
// The Resolver turns request credentials into a Principal by combining the
// session store with the identity store; anonymous requests resolve to a
// nil principal without error. The guard functions (RequireAuth,
// RequireRole, RequireTenant) are pure assertions over that principal and
// raise typed failures the middleware composer translates at the boundary.
package auth
