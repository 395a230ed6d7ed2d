package tenantdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
)

// DB starts transactions. *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Factory mints data handles. It is the only place scoped and platform
// handles come from, which keeps the bind step impossible to skip.
type Factory struct {
	db DB
}

// NewFactory creates a handle factory over the given pool.
func NewFactory(db DB) *Factory {
	return &Factory{db: db}
}

// Scoped starts a transaction bound to the given tenant. If the binding
// fails for any reason the transaction is rolled back and no handle is
// returned: there is no unscoped fallback.
func (f *Factory) Scoped(ctx context.Context, tenantID uuid.UUID) (*Scoped, error) {
	if tenantID == uuid.Nil {
		return nil, ErrInvalidTenant
	}

	tx, err := f.db.Begin(ctx)
	if err != nil {
		return nil, errors.Join(ErrBeginFailed, err)
	}

	if err := Bind(ctx, tx, tenantID); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	return &Scoped{tx: tx, tenantID: tenantID}, nil
}

// ScopedFor starts a transaction bound to the principal's own tenant. It is
// a convenience over Scoped for callers holding a principal instead of a
// tenant id; principals without tenant membership get auth.ErrTenantRequired.
func (f *Factory) ScopedFor(ctx context.Context, p *auth.Principal) (*Scoped, error) {
	_, tenantID, err := auth.RequireTenant(p)
	if err != nil {
		return nil, err
	}
	return f.Scoped(ctx, tenantID)
}

// Platform starts a cross-tenant transaction for a platform administrator.
// Principals below the platform role get auth.ErrForbidden and never reach
// the database.
func (f *Factory) Platform(ctx context.Context, p *auth.Principal) (*Platform, error) {
	if _, err := auth.RequireRole(p, auth.RoleSuperAdmin); err != nil {
		return nil, err
	}

	tx, err := f.db.Begin(ctx)
	if err != nil {
		return nil, errors.Join(ErrBeginFailed, err)
	}

	if err := bindPlatform(ctx, tx); err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	return &Platform{tx: tx}, nil
}
