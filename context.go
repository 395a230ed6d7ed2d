package fleetbackend

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenantdb"
)

// Context carries the resolved authorization state into a handler. It embeds
// the request context (already enriched with principal, tenant and request
// id), so it can be passed anywhere a context.Context is expected.
type Context struct {
	context.Context

	principal *auth.Principal
	tenantID  uuid.UUID
	db        *tenantdb.Scoped
	r         *http.Request
	w         http.ResponseWriter
}

// Principal returns the authenticated principal, or nil on public routes
// serving an anonymous request.
func (c *Context) Principal() *auth.Principal {
	return c.principal
}

// TenantID returns the bound tenant id. It is the zero UUID unless the route
// was wrapped with RequireTenant.
func (c *Context) TenantID() uuid.UUID {
	return c.tenantID
}

// DB returns the tenant-scoped data handle for this request, or nil unless
// the route was wrapped with RequireTenant. The composer owns the handle's
// lifecycle: it commits after the handler succeeds and rolls back otherwise.
func (c *Context) DB() *tenantdb.Scoped {
	return c.db
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the underlying response writer. Handlers normally
// return a Response instead of writing directly.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}
