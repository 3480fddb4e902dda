package pricing_test

import (
	"errors"
	"testing"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceDifference(t *testing.T) {
	require.True(t, pricing.PriceDifference(dec("100"), dec("120")).Equal(dec("20")))
	require.True(t, pricing.PriceDifference(dec("100"), dec("80")).Equal(dec("-20")))
	require.True(t, pricing.PriceDifference(dec("100"), dec("100")).IsZero())
	// Non-positive base yields zero rather than a division error.
	require.True(t, pricing.PriceDifference(dec("0"), dec("50")).IsZero())
	require.True(t, pricing.PriceDifference(dec("-5"), dec("50")).IsZero())
}

func TestPriceDifferenceString(t *testing.T) {
	require.Equal(t, "+20.0%", pricing.PriceDifferenceString(dec("100"), dec("120")))
	require.Equal(t, "-12.5%", pricing.PriceDifferenceString(dec("100"), dec("87.5")))
	require.Equal(t, "0%", pricing.PriceDifferenceString(dec("100"), dec("100")))
}

func TestIsGoodDeal(t *testing.T) {
	all := []decimal.Decimal{dec("100"), dec("95"), dec("110")}

	require.True(t, pricing.IsGoodDeal(dec("95"), all))
	require.True(t, pricing.IsGoodDeal(dec("90"), all))
	require.False(t, pricing.IsGoodDeal(dec("96"), all))
	require.False(t, pricing.IsGoodDeal(dec("10"), nil))
}

func TestBestPrice(t *testing.T) {
	min, err := pricing.BestPrice([]decimal.Decimal{dec("3"), dec("1"), dec("2")})
	require.NoError(t, err)
	require.True(t, min.Equal(dec("1")))

	_, err = pricing.BestPrice(nil)
	require.True(t, errors.Is(err, pricing.ErrEmptyInput))
}

func TestFormatPriceRange(t *testing.T) {
	usd := catalog.Currency{Code: "USD", Symbol: "$", DecimalPlaces: 2}
	kwd := catalog.Currency{Code: "KWD", Symbol: "KD", DecimalPlaces: 3}

	require.Equal(t, "95.00-110.00 $", pricing.FormatPriceRange(dec("95"), dec("110"), usd))
	require.Equal(t, "95.00 $", pricing.FormatPriceRange(dec("95"), dec("95"), usd))
	require.Equal(t, "1.250-2.500 KD", pricing.FormatPriceRange(dec("1.25"), dec("2.5"), kwd))
}
