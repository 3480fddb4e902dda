package services_test

import (
	"context"
	"testing"

	impl "github.com/coprra/price-compare/internal/application/services"
	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOnCatalogMutated_ProductInvalidatesProductsTag(t *testing.T) {
	cache := &comparisonCacheMock{}
	obs := impl.NewCacheInvalidationObserver(cache, nil)

	obs.OnCatalogMutated(context.Background(), catalog.EntityProduct, uuid.New())
	require.Equal(t, []string{comparison.TagProducts}, cache.invalidatedTags)
}

func TestOnCatalogMutated_CategoryInvalidatesCategoriesTag(t *testing.T) {
	cache := &comparisonCacheMock{}
	obs := impl.NewCacheInvalidationObserver(cache, nil)

	obs.OnCatalogMutated(context.Background(), catalog.EntityCategory, uuid.New())
	require.Equal(t, []string{comparison.TagCategories}, cache.invalidatedTags)
}

func TestObserver_EndToEndThroughCache(t *testing.T) {
	// Wire the observer against the real cache wrapper to confirm a catalog
	// mutation forces the next read to recompute.
	backendCache := newTestCache(t)

	key := testKey()
	computes := 0
	compute := func(ctx context.Context) (*comparison.Result, error) {
		computes++
		return testResult(key), nil
	}

	_, err := backendCache.GetOrCompute(context.Background(), key, 0, []string{comparison.TagProducts}, compute)
	require.NoError(t, err)

	obs := impl.NewCacheInvalidationObserver(backendCache, nil)
	obs.OnCatalogMutated(context.Background(), catalog.EntityProduct, key.ProductID)

	_, err = backendCache.GetOrCompute(context.Background(), key, 0, []string{comparison.TagProducts}, compute)
	require.NoError(t, err)
	require.Equal(t, 2, computes)
}
