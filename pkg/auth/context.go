package auth

import (
	"context"
	"log/slog"
)

type principalContextKey struct{}

// WithPrincipal adds a principal to the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext retrieves the principal from the context.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	return p, ok
}

// LoggerExtractor returns a logger context extractor that records the
// principal id on every log line emitted within an authenticated request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if p, ok := PrincipalFromContext(ctx); ok && p != nil {
			return slog.String("principal_id", p.ID.String()), true
		}
		return slog.Attr{}, false
	}
}
