package ratelimit

import (
	"context"
	"errors"
	"time"
)

// Config sets the window shape: at most Limit events per Window per key.
type Config struct {
	Limit  int           `env:"RATELIMIT_LIMIT" envDefault:"10"`
	Window time.Duration `env:"RATELIMIT_WINDOW" envDefault:"1m"`
}

// Result reports one Allow decision.
type Result struct {
	Allowed   bool
	Remaining int

	// RetryAfter is how long until the window resets. Zero when allowed.
	RetryAfter time.Duration
}

// Limiter is a fixed-window rate limiter over a pluggable counter store.
type Limiter struct {
	store Store
	cfg   Config
}

// New creates a limiter. Limit and Window must be positive.
func New(store Store, cfg Config) (*Limiter, error) {
	if cfg.Limit <= 0 || cfg.Window <= 0 {
		return nil, errors.New("ratelimit: limit and window must be positive")
	}
	return &Limiter{store: store, cfg: cfg}, nil
}

// Allow counts one event against the key and reports whether it fits the
// window. Store failures surface as errors; the caller decides whether to
// fail open or closed.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	count, ttl, err := l.store.Incr(ctx, key, l.cfg.Window)
	if err != nil {
		return Result{}, errors.Join(ErrStoreUnavailable, err)
	}

	if count > int64(l.cfg.Limit) {
		return Result{Allowed: false, Remaining: 0, RetryAfter: ttl}, nil
	}

	return Result{Allowed: true, Remaining: l.cfg.Limit - int(count)}, nil
}
