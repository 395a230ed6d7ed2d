package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/manyinyire/fleetbackend-sub008/pkg/pg"
)

// Querier is the minimal query surface the identity store needs.
// *pgxpool.Pool satisfies it. Identity rows live at platform scope, so the
// store deliberately uses an unscoped handle: it must be able to look up a
// user before any tenant binding exists.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStore is the postgres-backed identity store.
type PGStore struct {
	db Querier
}

// NewPGStore creates an identity store over the given query handle.
func NewPGStore(db Querier) *PGStore {
	return &PGStore{db: db}
}

const principalColumns = `id, email, role, tenant_id, email_verified, banned, ban_expires_at, two_factor_enabled`

func (s *PGStore) Lookup(ctx context.Context, userID uuid.UUID) (*Principal, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+principalColumns+` FROM users WHERE id = $1`, userID)
	return scanPrincipal(row)
}

// LookupByEmail returns the principal for an email address.
func (s *PGStore) LookupByEmail(ctx context.Context, email string) (*Principal, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+principalColumns+` FROM users WHERE email = $1`, email)
	return scanPrincipal(row)
}

// Authenticate verifies an email/password pair and returns the principal.
// Both unknown emails and wrong passwords yield ErrInvalidCredentials so
// responses cannot be used to enumerate accounts.
func (s *PGStore) Authenticate(ctx context.Context, email, password string) (*Principal, error) {
	var (
		p    Principal
		hash []byte
	)

	row := s.db.QueryRow(ctx,
		`SELECT `+principalColumns+`, password_hash FROM users WHERE email = $1`, email)
	if err := row.Scan(&p.ID, &p.Email, &p.Role, &p.TenantID, &p.EmailVerified,
		&p.Banned, &p.BanExpiresAt, &p.TwoFactorEnabled, &hash); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Join(ErrIdentityStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &p, nil
}

// HashPassword produces a bcrypt hash for storage in the users table.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func scanPrincipal(row pgx.Row) (*Principal, error) {
	var p Principal
	if err := row.Scan(&p.ID, &p.Email, &p.Role, &p.TenantID, &p.EmailVerified,
		&p.Banned, &p.BanExpiresAt, &p.TwoFactorEnabled); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Join(ErrIdentityStoreUnavailable, err)
	}
	return &p, nil
}
