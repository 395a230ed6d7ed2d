package tenantdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres session variables read by the row-level security policies. Both
// are set transaction-locally (set_config third argument true) so a binding
// can never outlive its transaction and leak across pooled connections.
const (
	tenantSettingKey   = "app.current_tenant"
	platformSettingKey = "app.platform_access"
)

// Executor is the statement surface binding needs. pgx.Tx satisfies it.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Bind sets the tenant session variable for the current transaction. Every
// row-level security policy compares against this variable, so after a
// successful Bind all statements in the transaction see only the tenant's
// rows. On failure the caller must roll the transaction back: an unbound
// transaction matches no rows at all.
func Bind(ctx context.Context, ex Executor, tenantID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return ErrInvalidTenant
	}

	if _, err := ex.Exec(ctx,
		`SELECT set_config($1, $2, true)`, tenantSettingKey, tenantID.String()); err != nil {
		return errors.Join(ErrBindFailed, err)
	}

	return nil
}

// bindPlatform marks the current transaction as platform-scoped. Policies
// let such transactions see rows across all tenants.
func bindPlatform(ctx context.Context, ex Executor) error {
	if _, err := ex.Exec(ctx,
		`SELECT set_config($1, $2, true)`, platformSettingKey, "on"); err != nil {
		return errors.Join(ErrBindFailed, err)
	}
	return nil
}
