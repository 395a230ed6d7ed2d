package tenant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type tenantContextKey struct{}

// WithTenantID adds the bound tenant id to the context.
func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, id)
}

// TenantIDFromContext retrieves the bound tenant id from the context.
func TenantIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantContextKey{}).(uuid.UUID)
	return id, ok
}

// LoggerExtractor returns a logger context extractor that records the bound
// tenant id on every log line emitted within a tenant-scoped request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := TenantIDFromContext(ctx); ok {
			return slog.String("tenant_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}
