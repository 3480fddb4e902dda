package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	impl "github.com/coprra/price-compare/internal/application/services"
	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testComparisonConfig() *impl.ComparisonConfig {
	return &impl.ComparisonConfig{
		DefaultCurrency:  "USD",
		DefaultMaxStores: 10,
		CacheTTL:         15 * time.Minute,
	}
}

func TestGetComparison_DefaultsAndKeyDerivation(t *testing.T) {
	productID := uuid.New()
	offers := &offerRepoMock{listByProductFn: func(ctx context.Context, id uuid.UUID) ([]catalog.Offer, error) {
		require.Equal(t, productID, id)
		return []catalog.Offer{offer("a", "100", "USD", true)}, nil
	}}

	var seenKey comparison.Key
	var seenTags []string
	cache := &comparisonCacheMock{getOrComputeFn: func(ctx context.Context, key comparison.Key, ttl time.Duration, tags []string, compute func(ctx context.Context) (*comparison.Result, error)) (*comparison.Result, error) {
		seenKey = key
		seenTags = tags
		require.Equal(t, 15*time.Minute, ttl)
		return compute(ctx)
	}}

	svc := impl.NewPriceComparisonService(offers, &currencyRepoMock{}, cache, testComparisonConfig(), nil)

	result, err := svc.GetComparison(context.Background(), productID, "", 0)
	require.NoError(t, err)
	require.True(t, result.HasOffers())

	// Empty currency and zero maxStores fall back to the configured defaults,
	// and the currency is upper-cased before it reaches the key.
	require.Equal(t, comparison.Key{ProductID: productID, ReferenceCurrency: "USD", MaxStores: 10}, seenKey)
	require.Equal(t, []string{comparison.TagProducts, comparison.TagCategories}, seenTags)
}

func TestGetComparison_ExplicitParamsKeptInKey(t *testing.T) {
	productID := uuid.New()
	var seenKey comparison.Key
	cache := &comparisonCacheMock{getOrComputeFn: func(ctx context.Context, key comparison.Key, ttl time.Duration, tags []string, compute func(ctx context.Context) (*comparison.Result, error)) (*comparison.Result, error) {
		seenKey = key
		return &comparison.Result{ProductID: key.ProductID, ReferenceCurrency: key.ReferenceCurrency}, nil
	}}

	svc := impl.NewPriceComparisonService(&offerRepoMock{}, &currencyRepoMock{}, cache, testComparisonConfig(), nil)

	_, err := svc.GetComparison(context.Background(), productID, "sar", 3)
	require.NoError(t, err)
	require.Equal(t, "SAR", seenKey.ReferenceCurrency)
	require.Equal(t, 3, seenKey.MaxStores)
}

func TestGetComparison_OfferLoadFailure(t *testing.T) {
	offers := &offerRepoMock{listByProductFn: func(ctx context.Context, id uuid.UUID) ([]catalog.Offer, error) {
		return nil, errors.New("db down")
	}}
	svc := impl.NewPriceComparisonService(offers, &currencyRepoMock{}, &comparisonCacheMock{}, testComparisonConfig(), nil)

	_, err := svc.GetComparison(context.Background(), uuid.New(), "USD", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load offers")
}

func TestGetComparison_UnknownReferenceCurrency(t *testing.T) {
	offers := &offerRepoMock{listByProductFn: func(ctx context.Context, id uuid.UUID) ([]catalog.Offer, error) {
		return []catalog.Offer{offer("a", "10", "USD", true)}, nil
	}}
	svc := impl.NewPriceComparisonService(offers, &currencyRepoMock{}, &comparisonCacheMock{}, testComparisonConfig(), nil)

	_, err := svc.GetComparison(context.Background(), uuid.New(), "XXX", 0)
	require.True(t, errors.Is(err, comparison.ErrCurrencyNotFound))
}

func TestRefresh_InvalidatesProductsTagFirst(t *testing.T) {
	cache := &comparisonCacheMock{}
	svc := impl.NewPriceComparisonService(&offerRepoMock{}, &currencyRepoMock{}, cache, testComparisonConfig(), nil)

	_, err := svc.Refresh(context.Background(), uuid.New(), "USD", 0)
	require.NoError(t, err)
	require.Equal(t, []string{comparison.TagProducts}, cache.invalidatedTags)
}
