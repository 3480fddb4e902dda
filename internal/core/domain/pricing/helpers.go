package pricing

import (
	"errors"
	"fmt"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/shopspring/decimal"
)

// ErrEmptyInput is returned by strict math helpers called with no data.
var ErrEmptyInput = errors.New("empty input")

var hundred = decimal.NewFromInt(100)

// PriceDifference returns the percentage change from original to sale.
// Negative means a price decrease. Returns zero when original is not positive,
// since a percentage against a free or invalid base is meaningless.
func PriceDifference(original, sale decimal.Decimal) decimal.Decimal {
	if original.Sign() <= 0 {
		return decimal.Zero
	}
	return sale.Sub(original).Div(original).Mul(hundred)
}

// PriceDifferenceString renders PriceDifference as a signed percentage with
// one decimal, e.g. "+20.0%" or "-12.5%". A zero difference renders as "0%".
func PriceDifferenceString(original, sale decimal.Decimal) string {
	diff := PriceDifference(original, sale)
	if diff.IsZero() {
		return "0%"
	}
	if diff.Sign() > 0 {
		return "+" + diff.StringFixed(1) + "%"
	}
	return diff.StringFixed(1) + "%"
}

// IsGoodDeal reports whether candidate is at or below the minimum of all known
// prices. An empty price list never qualifies as a good deal.
func IsGoodDeal(candidate decimal.Decimal, all []decimal.Decimal) bool {
	min, err := BestPrice(all)
	if err != nil {
		return false
	}
	return candidate.LessThanOrEqual(min)
}

// BestPrice returns the minimum of a non-empty price list. Unlike the
// aggregator, which treats an empty offer set as a representable state, this is
// a strict helper and fails on empty input.
func BestPrice(prices []decimal.Decimal) (decimal.Decimal, error) {
	if len(prices) == 0 {
		return decimal.Zero, ErrEmptyInput
	}
	min := prices[0]
	for _, p := range prices[1:] {
		if p.LessThan(min) {
			min = p
		}
	}
	return min, nil
}

// FormatPriceRange renders "min-max symbol" using the currency's decimal
// places, collapsing to a single value when min and max are equal.
func FormatPriceRange(min, max decimal.Decimal, cur catalog.Currency) string {
	if min.Equal(max) {
		return fmt.Sprintf("%s %s", min.StringFixed(cur.DecimalPlaces), cur.Symbol)
	}
	return fmt.Sprintf("%s-%s %s", min.StringFixed(cur.DecimalPlaces), max.StringFixed(cur.DecimalPlaces), cur.Symbol)
}
