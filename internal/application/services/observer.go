package services

import (
	"context"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CacheInvalidationObserver reacts to catalog mutations by invalidating the
// matching cache tag. Every event kind (create, update, delete, restore)
// invalidates identically: any mutation, soft deletes and restores included,
// can change visible comparison data. The observer never fails the write path
// that triggered it.
type CacheInvalidationObserver struct {
	cache  ports.ComparisonCache
	logger *logrus.Logger
}

// NewCacheInvalidationObserver creates the observer.
func NewCacheInvalidationObserver(cache ports.ComparisonCache, logger *logrus.Logger) *CacheInvalidationObserver {
	return &CacheInvalidationObserver{cache: cache, logger: logger}
}

// OnCatalogMutated invalidates the tag associated with the mutated entity.
func (o *CacheInvalidationObserver) OnCatalogMutated(ctx context.Context, entity catalog.Entity, id uuid.UUID) {
	tag := comparison.TagProducts
	if entity == catalog.EntityCategory {
		tag = comparison.TagCategories
	}
	o.cache.InvalidateTag(ctx, tag)
	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{"entity": entity, "id": id, "tag": tag}).Debug("cache tag invalidated after catalog mutation")
	}
}

var _ ports.CatalogSubscriber = (*CacheInvalidationObserver)(nil)
