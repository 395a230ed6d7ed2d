package ratelimit

import (
	"context"
	"time"
)

// Store counts events per key within a window.
type Store interface {
	// Incr increments the key's counter, starting a fresh window when none
	// is running, and returns the new count plus the time until reset.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}
