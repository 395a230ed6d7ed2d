package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/manyinyire/fleetbackend-sub008/pkg/pg"
)

// Querier is the minimal query surface the provider needs. *pgxpool.Pool
// satisfies it. Tenant rows live at platform scope and are read before any
// tenant binding exists, so the provider uses an unscoped handle.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGProvider is the postgres-backed tenant provider.
type PGProvider struct {
	db Querier
}

// NewPGProvider creates a tenant provider over the given query handle.
func NewPGProvider(db Querier) *PGProvider {
	return &PGProvider{db: db}
}

const tenantColumns = `id, subdomain, name, active, created_at`

func (p *PGProvider) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)
	return scanTenant(row)
}

func (p *PGProvider) GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE subdomain = $1`, subdomain)
	return scanTenant(row)
}

func scanTenant(row pgx.Row) (*Tenant, error) {
	var t Tenant
	if err := row.Scan(&t.ID, &t.Subdomain, &t.Name, &t.Active, &t.CreatedAt); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrTenantNotFound
		}
		return nil, errors.Join(ErrProviderUnavailable, err)
	}
	return &t, nil
}
