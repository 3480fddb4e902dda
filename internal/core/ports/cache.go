package ports

import (
	"context"
	"time"
)

// Cache defines a minimal key-value cache contract.
// Implementations should degrade gracefully (returning an error without crashing callers)
// so that application logic can fall back to direct computation.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL (0 or negative means no expiration if supported).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
}

// TaggedCache is a Cache whose backend indexes entries by tag, so a tag can be
// evicted in bulk without enumerating individual keys.
type TaggedCache interface {
	Cache
	// SetTagged stores value for key and associates it with tags.
	SetTagged(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error
	// InvalidateTag removes every entry associated with tag.
	InvalidateTag(ctx context.Context, tag string) error
}

// FlushableCache is a Cache that can only be cleared wholesale. When the
// backend has no tag indexing, tag invalidation degrades to a full flush,
// expensive but correctness-preserving.
type FlushableCache interface {
	Cache
	// Flush removes every entry in this cache's namespace.
	Flush(ctx context.Context) error
}
