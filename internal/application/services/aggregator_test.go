package services_test

import (
	"testing"

	impl "github.com/coprra/price-compare/internal/application/services"
	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func offer(store, price, currency string, available bool) catalog.Offer {
	return catalog.Offer{Store: store, Price: dec(price), Currency: currency, Available: available}
}

func newAggregator() *impl.Aggregator {
	return impl.NewAggregator(impl.NewConverter(testCurrencies()))
}

func TestAggregate_RanksAndComputesSavings(t *testing.T) {
	productID := uuid.New()
	offers := []catalog.Offer{
		offer("store-a", "100", "USD", true),
		offer("store-b", "95", "USD", true),
	}

	result, err := newAggregator().Aggregate(productID, offers, "USD", 0)
	require.NoError(t, err)
	require.True(t, result.HasOffers())
	require.Equal(t, productID, result.ProductID)
	require.Equal(t, "store-b", result.Offers[0].Store)
	require.True(t, result.BestPrice.Equal(dec("95")))
	require.True(t, result.WorstPrice.Equal(dec("100")))
	require.True(t, result.SavingsPercent.Equal(dec("5")), "got %s", result.SavingsPercent)
}

func TestAggregate_NormalizesAcrossCurrencies(t *testing.T) {
	// 92 EUR is 100 USD at the test rates; 90 USD should rank first.
	offers := []catalog.Offer{
		offer("eu-store", "92", "EUR", true),
		offer("us-store", "90", "USD", true),
	}

	result, err := newAggregator().Aggregate(uuid.New(), offers, "USD", 0)
	require.NoError(t, err)
	require.Equal(t, "us-store", result.Offers[0].Store)
	require.True(t, result.Offers[1].NormalizedPrice.Equal(dec("100")), "got %s", result.Offers[1].NormalizedPrice)
	// The original price and currency survive normalization.
	require.True(t, result.Offers[1].Price.Equal(dec("92")))
	require.Equal(t, "EUR", result.Offers[1].Currency)
}

func TestAggregate_UnavailableOffersExcludedFromRanking(t *testing.T) {
	offers := []catalog.Offer{
		offer("cheap-but-out", "50", "USD", false),
		offer("in-stock", "80", "USD", true),
		offer("pricey", "90", "USD", true),
	}

	result, err := newAggregator().Aggregate(uuid.New(), offers, "USD", 0)
	require.NoError(t, err)
	// Unavailable offers trail the list and never set best/worst.
	require.Len(t, result.Offers, 3)
	require.Equal(t, "in-stock", result.Offers[0].Store)
	require.Equal(t, "cheap-but-out", result.Offers[2].Store)
	require.False(t, result.Offers[2].Available)
	require.True(t, result.BestPrice.Equal(dec("80")))
	require.True(t, result.WorstPrice.Equal(dec("90")))
}

func TestAggregate_MaxStoresTruncates(t *testing.T) {
	offers := []catalog.Offer{
		offer("a", "30", "USD", true),
		offer("b", "10", "USD", true),
		offer("c", "20", "USD", true),
		offer("d", "5", "USD", false),
	}

	result, err := newAggregator().Aggregate(uuid.New(), offers, "USD", 2)
	require.NoError(t, err)
	require.Len(t, result.Offers, 2)
	require.Equal(t, "b", result.Offers[0].Store)
	require.Equal(t, "c", result.Offers[1].Store)
	// Worst reflects the kept offers, not the truncated tail.
	require.True(t, result.BestPrice.Equal(dec("10")))
	require.True(t, result.WorstPrice.Equal(dec("20")))
}

func TestAggregate_EmptyOfferSet(t *testing.T) {
	result, err := newAggregator().Aggregate(uuid.New(), nil, "USD", 0)
	require.NoError(t, err)
	require.False(t, result.HasOffers())
	require.Nil(t, result.BestPrice)
	require.Nil(t, result.WorstPrice)
	require.True(t, result.SavingsPercent.IsZero())
	require.Empty(t, result.Offers)
}

func TestAggregate_AllUnavailable(t *testing.T) {
	offers := []catalog.Offer{
		offer("a", "10", "USD", false),
		offer("b", "20", "USD", false),
	}

	result, err := newAggregator().Aggregate(uuid.New(), offers, "USD", 0)
	require.NoError(t, err)
	require.False(t, result.HasOffers())
	require.Len(t, result.Offers, 2)
	require.True(t, result.SavingsPercent.IsZero())
}

func TestAggregate_SingleOfferHasZeroSavings(t *testing.T) {
	result, err := newAggregator().Aggregate(uuid.New(), []catalog.Offer{offer("only", "42", "USD", true)}, "USD", 0)
	require.NoError(t, err)
	require.True(t, result.BestPrice.Equal(dec("42")))
	require.True(t, result.WorstPrice.Equal(dec("42")))
	require.True(t, result.SavingsPercent.IsZero())
}

func TestAggregate_UnknownOfferCurrencyFails(t *testing.T) {
	offers := []catalog.Offer{offer("a", "10", "XXX", true)}

	_, err := newAggregator().Aggregate(uuid.New(), offers, "USD", 0)
	if err == nil {
		t.Fatalf("expected error for unknown offer currency")
	}
}
