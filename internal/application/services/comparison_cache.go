package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// tagStrategy is how the cache associates entries with tags and evicts them.
// Selected once at construction based on backend capability, so call sites
// never branch on what the backend supports.
type tagStrategy interface {
	set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error
	invalidate(ctx context.Context, tag string) error
}

// taggedStrategy uses the backend's native tag index.
type taggedStrategy struct{ cache ports.TaggedCache }

func (s *taggedStrategy) set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	return s.cache.SetTagged(ctx, key, value, ttl, tags)
}

func (s *taggedStrategy) invalidate(ctx context.Context, tag string) error {
	return s.cache.InvalidateTag(ctx, tag)
}

// flushStrategy ignores tags on write and clears the whole namespace on
// invalidation.
type flushStrategy struct{ cache ports.FlushableCache }

func (s *flushStrategy) set(ctx context.Context, key string, value []byte, ttl time.Duration, _ []string) error {
	return s.cache.Set(ctx, key, value, ttl)
}

func (s *flushStrategy) invalidate(ctx context.Context, _ string) error {
	return s.cache.Flush(ctx)
}

// ComparisonCache memoizes comparison results. Concurrent callers for the same
// key are coalesced through singleflight so the compute function runs at most
// once per key at a time; late arrivals receive the in-flight result. Backend
// errors never surface: reads degrade to a miss and writes are best-effort.
type ComparisonCache struct {
	backend ports.Cache
	tags    tagStrategy
	sf      singleflight.Group
	logger  *logrus.Logger
}

// NewComparisonCache wraps a cache backend. Backends with tag indexing get
// per-tag eviction; anything else must be flushable and degrades to a full
// flush on tag invalidation.
func NewComparisonCache(backend ports.Cache, logger *logrus.Logger) (*ComparisonCache, error) {
	c := &ComparisonCache{backend: backend, logger: logger}
	switch b := backend.(type) {
	case ports.TaggedCache:
		c.tags = &taggedStrategy{cache: b}
	case ports.FlushableCache:
		c.tags = &flushStrategy{cache: b}
	default:
		return nil, fmt.Errorf("cache backend supports neither tags nor flushing")
	}
	return c, nil
}

// GetOrCompute returns the cached result for key, or invokes compute exactly
// once per key under concurrent access, stores the outcome tagged for bulk
// invalidation, and returns it.
func (c *ComparisonCache) GetOrCompute(ctx context.Context, key comparison.Key, ttl time.Duration, tags []string, compute func(ctx context.Context) (*comparison.Result, error)) (*comparison.Result, error) {
	ck := key.String()
	if result, ok := c.lookup(ctx, ck); ok {
		cacheHits.WithLabelValues("comparison").Inc()
		return result, nil
	}
	cacheMisses.WithLabelValues("comparison").Inc()

	v, err, shared := c.sf.Do(ck, func() (any, error) {
		// Another caller may have populated the key while we waited on
		// the flight lock.
		if result, ok := c.lookup(ctx, ck); ok {
			return result, nil
		}
		start := time.Now()
		result, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		computeDuration.Observe(time.Since(start).Seconds())
		c.store(ctx, ck, result, ttl, tags)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		coalescedComputes.Inc()
	}
	result, ok := v.(*comparison.Result)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return result, nil
}

// InvalidateTag evicts every entry carrying tag. Backend failures are logged
// and swallowed; the next read falls back to recomputation anyway.
func (c *ComparisonCache) InvalidateTag(ctx context.Context, tag string) {
	if err := c.tags.invalidate(ctx, tag); err != nil {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"tag": tag}).WithError(err).Warn("cache tag invalidation failed")
		}
		return
	}
	tagInvalidations.WithLabelValues(tag).Inc()
}

// lookup treats every backend or decode failure as a miss.
func (c *ComparisonCache) lookup(ctx context.Context, key string) (*comparison.Result, bool) {
	b, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("cache read failed, treating as miss")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var result comparison.Result
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// store is best-effort: serialization or backend failures are logged, never
// returned.
func (c *ComparisonCache) store(ctx context.Context, key string, result *comparison.Result, ttl time.Duration, tags []string) {
	b, err := json.Marshal(result)
	if err != nil {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("failed to serialize comparison result for cache")
		}
		return
	}
	if err := c.tags.set(ctx, key, b, ttl, tags); err != nil {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("cache write failed")
		}
	}
}

var _ ports.ComparisonCache = (*ComparisonCache)(nil)
