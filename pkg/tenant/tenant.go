package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant carries the minimal tenant record needed for request-scoped
// operations: identity, addressing and the active flag that gates access.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider loads tenant records from a data source.
type Provider interface {
	// GetByID retrieves a tenant by primary key.
	// Returns ErrTenantNotFound if no tenant matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// GetBySubdomain retrieves a tenant by its unique subdomain.
	// Returns ErrTenantNotFound if no tenant matches.
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
}
