package tenantdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenantdb"
)

type execCall struct {
	sql  string
	args []any
}

// fakeTx records statements instead of talking to postgres. Methods the
// handles never touch panic so an unexpected call fails loudly.
type fakeTx struct {
	execCalls  []execCall
	execErr    error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execCalls = append(t.execCalls, execCall{sql: sql, args: args})
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.NewCommandTag("SELECT 1"), nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("unexpected Begin") }
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("unexpected CopyFrom")
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("unexpected SendBatch")
}
func (t *fakeTx) LargeObjects() pgx.LargeObjects { panic("unexpected LargeObjects") }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("unexpected Prepare")
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("unexpected QueryRow")
}
func (t *fakeTx) Conn() *pgx.Conn { panic("unexpected Conn") }

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

func TestBind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sets transaction-local session variable", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		tenantID := uuid.New()

		require.NoError(t, tenantdb.Bind(ctx, tx, tenantID))

		require.Len(t, tx.execCalls, 1)
		call := tx.execCalls[0]
		assert.Equal(t, `SELECT set_config($1, $2, true)`, call.sql)
		assert.Equal(t, []any{"app.current_tenant", tenantID.String()}, call.args)
	})

	t.Run("rejects zero tenant id without touching the database", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		err := tenantdb.Bind(ctx, tx, uuid.Nil)
		assert.ErrorIs(t, err, tenantdb.ErrInvalidTenant)
		assert.Empty(t, tx.execCalls)
	})

	t.Run("binding twice is idempotent", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		tenantID := uuid.New()

		require.NoError(t, tenantdb.Bind(ctx, tx, tenantID))
		require.NoError(t, tenantdb.Bind(ctx, tx, tenantID))

		require.Len(t, tx.execCalls, 2)
		assert.Equal(t, tx.execCalls[0], tx.execCalls[1])
	})

	t.Run("wraps execution failure", func(t *testing.T) {
		t.Parallel()

		execErr := errors.New("connection reset")
		tx := &fakeTx{execErr: execErr}

		err := tenantdb.Bind(ctx, tx, uuid.New())
		assert.ErrorIs(t, err, tenantdb.ErrBindFailed)
		assert.ErrorIs(t, err, execErr)
	})
}

func TestFactoryScoped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("binds then exposes the tenant id", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		factory := tenantdb.NewFactory(&fakeDB{tx: tx})
		tenantID := uuid.New()

		handle, err := factory.Scoped(ctx, tenantID)
		require.NoError(t, err)
		assert.Equal(t, tenantID, handle.TenantID())
		require.Len(t, tx.execCalls, 1)
		assert.False(t, tx.rolledBack)

		require.NoError(t, handle.Commit(ctx))
		assert.True(t, tx.committed)
	})

	t.Run("zero tenant id never starts a transaction", func(t *testing.T) {
		t.Parallel()

		factory := tenantdb.NewFactory(&fakeDB{beginErr: errors.New("should not begin")})

		_, err := factory.Scoped(ctx, uuid.Nil)
		assert.ErrorIs(t, err, tenantdb.ErrInvalidTenant)
	})

	t.Run("begin failure surfaces", func(t *testing.T) {
		t.Parallel()

		beginErr := errors.New("pool exhausted")
		factory := tenantdb.NewFactory(&fakeDB{beginErr: beginErr})

		_, err := factory.Scoped(ctx, uuid.New())
		assert.ErrorIs(t, err, tenantdb.ErrBeginFailed)
		assert.ErrorIs(t, err, beginErr)
	})

	t.Run("bind failure rolls the transaction back", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{execErr: errors.New("permission denied")}
		factory := tenantdb.NewFactory(&fakeDB{tx: tx})

		_, err := factory.Scoped(ctx, uuid.New())
		assert.ErrorIs(t, err, tenantdb.ErrBindFailed)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})
}

func TestFactoryScopedFor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("uses the principal's tenant", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		factory := tenantdb.NewFactory(&fakeDB{tx: tx})

		tenantID := uuid.New()
		p := &auth.Principal{ID: uuid.New(), Role: auth.RoleRegular, TenantID: &tenantID}

		handle, err := factory.ScopedFor(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, tenantID, handle.TenantID())
	})

	t.Run("principal without tenant is refused", func(t *testing.T) {
		t.Parallel()

		factory := tenantdb.NewFactory(&fakeDB{beginErr: errors.New("should not begin")})
		p := &auth.Principal{ID: uuid.New(), Role: auth.RoleSuperAdmin}

		_, err := factory.ScopedFor(ctx, p)
		assert.ErrorIs(t, err, auth.ErrTenantRequired)
	})
}

func TestFactoryPlatform(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("super admin gets a platform handle", func(t *testing.T) {
		t.Parallel()

		tx := &fakeTx{}
		factory := tenantdb.NewFactory(&fakeDB{tx: tx})
		p := &auth.Principal{ID: uuid.New(), Role: auth.RoleSuperAdmin}

		handle, err := factory.Platform(ctx, p)
		require.NoError(t, err)

		require.Len(t, tx.execCalls, 1)
		assert.Equal(t, []any{"app.platform_access", "on"}, tx.execCalls[0].args)

		require.NoError(t, handle.Rollback(ctx))
		assert.True(t, tx.rolledBack)
	})

	t.Run("tenant admin is refused before any transaction", func(t *testing.T) {
		t.Parallel()

		tenantID := uuid.New()
		factory := tenantdb.NewFactory(&fakeDB{beginErr: errors.New("should not begin")})
		p := &auth.Principal{ID: uuid.New(), Role: auth.RoleTenantAdmin, TenantID: &tenantID}

		_, err := factory.Platform(ctx, p)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("anonymous is unauthenticated", func(t *testing.T) {
		t.Parallel()

		factory := tenantdb.NewFactory(&fakeDB{beginErr: errors.New("should not begin")})

		_, err := factory.Platform(ctx, nil)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}
