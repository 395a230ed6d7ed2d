package tenant

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL bounds how long a cached tenant record may serve requests
// before the provider is consulted again. Deactivating a tenant therefore
// takes effect within this window.
const DefaultCacheTTL = 30 * time.Second

// CachedProvider wraps a Provider with a small in-memory TTL cache keyed by
// tenant id. Subdomain lookups populate the same cache so a resolve-then-use
// sequence hits the provider once.
type CachedProvider struct {
	source Provider
	ttl    time.Duration

	mu    sync.RWMutex
	byID  map[uuid.UUID]cacheEntry
	bySub map[string]uuid.UUID
}

type cacheEntry struct {
	tenant    Tenant
	expiresAt time.Time
}

// NewCachedProvider wraps source with a TTL cache. A non-positive ttl falls
// back to DefaultCacheTTL.
func NewCachedProvider(source Provider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{
		source: source,
		ttl:    ttl,
		byID:   make(map[uuid.UUID]cacheEntry),
		bySub:  make(map[string]uuid.UUID),
	}
}

func (c *CachedProvider) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	if t, ok := c.cached(id); ok {
		return t, nil
	}

	t, err := c.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(t)
	return t, nil
}

func (c *CachedProvider) GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error) {
	c.mu.RLock()
	id, ok := c.bySub[subdomain]
	c.mu.RUnlock()
	if ok {
		if t, hit := c.cached(id); hit {
			return t, nil
		}
	}

	t, err := c.source.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	c.store(t)
	return t, nil
}

// Invalidate drops the cached record for a tenant, forcing the next lookup
// through to the provider. Call it after mutating tenant state.
func (c *CachedProvider) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.byID[id]; ok {
		delete(c.bySub, entry.tenant.Subdomain)
	}
	delete(c.byID, id)
}

func (c *CachedProvider) cached(id uuid.UUID) (*Tenant, bool) {
	c.mu.RLock()
	entry, ok := c.byID[id]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	cp := entry.tenant
	return &cp, true
}

func (c *CachedProvider) store(t *Tenant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID[t.ID] = cacheEntry{tenant: *t, expiresAt: time.Now().Add(c.ttl)}
	c.bySub[t.Subdomain] = t.ID
}
