package tenantdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Scoped is a data handle bound to one tenant for the lifetime of one
// transaction. All statements issued through it are filtered by the
// database's row-level security policies; the handle itself never rewrites
// queries. It is not safe for concurrent use, matching pgx.Tx.
type Scoped struct {
	tx       pgx.Tx
	tenantID uuid.UUID
}

// TenantID returns the tenant this handle is bound to.
func (s *Scoped) TenantID() uuid.UUID {
	return s.tenantID
}

func (s *Scoped) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.tx.Query(ctx, sql, args...)
}

func (s *Scoped) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.tx.QueryRow(ctx, sql, args...)
}

func (s *Scoped) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.tx.Exec(ctx, sql, args...)
}

// Commit finishes the transaction. The tenant binding dies with it.
func (s *Scoped) Commit(ctx context.Context) error {
	return s.tx.Commit(ctx)
}

// Rollback discards the transaction. Safe to defer: rolling back after a
// commit is a no-op error the caller may ignore.
func (s *Scoped) Rollback(ctx context.Context) error {
	return s.tx.Rollback(ctx)
}

// Platform is a data handle that sees rows across all tenants. Only the
// factory hands these out, and only to principals that pass the platform
// role check.
type Platform struct {
	tx pgx.Tx
}

func (p *Platform) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return p.tx.Query(ctx, sql, args...)
}

func (p *Platform) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return p.tx.QueryRow(ctx, sql, args...)
}

func (p *Platform) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.tx.Exec(ctx, sql, args...)
}

func (p *Platform) Commit(ctx context.Context) error {
	return p.tx.Commit(ctx)
}

func (p *Platform) Rollback(ctx context.Context) error {
	return p.tx.Rollback(ctx)
}
