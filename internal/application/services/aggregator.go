package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregator turns a product's raw offers into a ranked comparison. It is a
// pure function of its inputs plus the converter's rate snapshot.
type Aggregator struct {
	converter *Converter
}

// NewAggregator creates an aggregator over the given rate snapshot.
func NewAggregator(converter *Converter) *Aggregator {
	return &Aggregator{converter: converter}
}

// Aggregate normalizes every offer to referenceCurrency, ranks available
// offers ascending by normalized price, and derives best/worst/savings.
// Unavailable offers are retained at the tail of the list for display but
// never participate in ranking. When maxStores > 0 the ordered list is
// truncated to that many offers, keeping the lowest-priced available offers
// first. An empty or all-unavailable offer set is a valid result, not an
// error: best/worst are nil and savings is zero.
func (a *Aggregator) Aggregate(productID uuid.UUID, offers []catalog.Offer, referenceCurrency string, maxStores int) (*comparison.Result, error) {
	var available, unavailable []comparison.NormalizedOffer
	for _, o := range offers {
		normalized, err := a.converter.Convert(o.Price, o.Currency, referenceCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize offer from store %s: %w", o.Store, err)
		}
		n := comparison.NormalizedOffer{
			Store:           o.Store,
			Price:           o.Price,
			Currency:        o.Currency,
			NormalizedPrice: normalized,
			Available:       o.Available,
		}
		if o.Available {
			available = append(available, n)
		} else {
			unavailable = append(unavailable, n)
		}
	}

	sortByNormalizedPrice(available)
	sortByNormalizedPrice(unavailable)

	ranked := append(available, unavailable...)
	if maxStores > 0 && len(ranked) > maxStores {
		ranked = ranked[:maxStores]
		if len(available) > maxStores {
			available = available[:maxStores]
		}
	}

	result := &comparison.Result{
		ProductID:         productID,
		ReferenceCurrency: referenceCurrency,
		Offers:            ranked,
		SavingsPercent:    decimal.Zero,
		ComputedAt:        time.Now().UTC(),
	}
	if len(available) == 0 {
		return result, nil
	}

	best := available[0].NormalizedPrice
	worst := available[len(available)-1].NormalizedPrice
	result.BestPrice = &best
	result.WorstPrice = &worst
	if worst.GreaterThan(best) {
		result.SavingsPercent = worst.Sub(best).Div(worst).Mul(decimal.NewFromInt(100))
	}
	return result, nil
}

func sortByNormalizedPrice(offers []comparison.NormalizedOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].NormalizedPrice.LessThan(offers[j].NormalizedPrice)
	})
}
