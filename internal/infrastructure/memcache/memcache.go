package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/coprra/price-compare/internal/core/ports"
)

type entry struct {
	value     []byte
	expiresAt time.Time
	tags      []string
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is an in-process tagged cache. It backs redis-less deployments
// and tests; eviction is lazy on read, which is adequate for a bounded set of
// comparison keys.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time
}

// New creates an empty in-memory cache.
func New() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*entry), now: time.Now}
}

// Get implements Cache.Get. Expired entries read as a miss.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set implements Cache.Set.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.SetTagged(ctx, key, value, ttl, nil)
}

// SetTagged implements TaggedCache.SetTagged.
func (c *MemoryCache) SetTagged(_ context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	e := &entry{value: value, tags: tags}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Delete implements Cache.Delete.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// InvalidateTag implements TaggedCache.InvalidateTag.
func (c *MemoryCache) InvalidateTag(_ context.Context, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, t := range e.tags {
			if t == tag {
				delete(c.entries, key)
				break
			}
		}
	}
	return nil
}

// Flush implements FlushableCache.Flush.
func (c *MemoryCache) Flush(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
	return nil
}

// Len reports the number of live entries; used by tests.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var (
	_ ports.TaggedCache    = (*MemoryCache)(nil)
	_ ports.FlushableCache = (*MemoryCache)(nil)
)
