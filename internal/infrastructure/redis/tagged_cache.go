package redis

import (
	"context"
	"time"

	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/go-redis/redis/v8"
)

// TaggedRedisCache is the Redis backend for comparison results: a byte cache
// whose keys all live under a configurable prefix, with a tag index on top.
// Each tag is a set holding the namespaced keys written under it, so
// invalidating a tag deletes exactly its members without scanning the
// keyspace.
type TaggedRedisCache struct {
	r      redis.Cmdable
	prefix string
}

// NewTaggedRedisCache creates a tag-indexing Redis cache. Everything it
// writes, tag indexes included, is namespaced under prefix.
func NewTaggedRedisCache(r redis.Cmdable, prefix string) *TaggedRedisCache {
	return &TaggedRedisCache{r: r, prefix: prefix}
}

func (c *TaggedRedisCache) namespaced(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

func (c *TaggedRedisCache) tagKey(tag string) string {
	return c.namespaced("tag:" + tag)
}

// Get returns the raw bytes stored under key. A missing key is ok=false, not
// an error.
func (c *TaggedRedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.r.Get(ctx, c.namespaced(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores value under key with no tag association.
func (c *TaggedRedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.r.Set(ctx, c.namespaced(key), value, ttl).Err()
}

// Delete removes key; absence is not an error.
func (c *TaggedRedisCache) Delete(ctx context.Context, key string) error {
	return c.r.Del(ctx, c.namespaced(key)).Err()
}

// SetTagged stores the entry and records its key under every tag's index set.
// Tag sets keep a TTL slightly above their newest member, so orphaned indexes
// expire on their own.
func (c *TaggedRedisCache) SetTagged(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	ns := c.namespaced(key)
	pipe := c.r.TxPipeline()
	pipe.Set(ctx, ns, value, ttl)
	for _, tag := range tags {
		tk := c.tagKey(tag)
		pipe.SAdd(ctx, tk, ns)
		if ttl > 0 {
			pipe.Expire(ctx, tk, ttl+time.Minute)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateTag deletes every entry recorded under tag, then the index
// itself.
func (c *TaggedRedisCache) InvalidateTag(ctx context.Context, tag string) error {
	tk := c.tagKey(tag)
	members, err := c.r.SMembers(ctx, tk).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	pipe := c.r.TxPipeline()
	if len(members) > 0 {
		pipe.Del(ctx, members...)
	}
	pipe.Del(ctx, tk)
	_, err = pipe.Exec(ctx)
	return err
}

var _ ports.TaggedCache = (*TaggedRedisCache)(nil)
