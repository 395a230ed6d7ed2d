package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process counter store for tests and single-instance
// deployments.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*windowState
}

type windowState struct {
	count    int64
	resetsAt time.Time
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*windowState)}
}

func (s *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w, ok := s.windows[key]
	if !ok || now.After(w.resetsAt) {
		w = &windowState{resetsAt: now.Add(window)}
		s.windows[key] = w
	}

	w.count++
	return w.count, w.resetsAt.Sub(now), nil
}
