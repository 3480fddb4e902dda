package comparison

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrCurrencyNotFound is returned when a currency code is absent from the rate
// snapshot. It indicates a caller or configuration defect and propagates to the
// API layer as a client error.
var ErrCurrencyNotFound = errors.New("currency not found")

// CurrencyError wraps ErrCurrencyNotFound with the offending code.
func CurrencyError(code string) error {
	return fmt.Errorf("%w: %s", ErrCurrencyNotFound, code)
}

// NormalizedOffer is one store's offer with its price expressed in the
// comparison's reference currency. Prices keep full decimal precision;
// rounding happens at the presentation boundary.
type NormalizedOffer struct {
	Store           string          `json:"store"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	NormalizedPrice decimal.Decimal `json:"normalized_price"`
	Available       bool            `json:"available"`
}

// Result is the derived, non-persisted outcome of aggregating a product's
// offers. Offers are ordered ascending by normalized price with available
// offers first; unavailable offers are retained for display but excluded from
// best/worst. BestPrice and WorstPrice are nil when no offer is available.
type Result struct {
	ProductID         uuid.UUID         `json:"product_id"`
	ReferenceCurrency string            `json:"reference_currency"`
	Offers            []NormalizedOffer `json:"offers"`
	BestPrice         *decimal.Decimal  `json:"best_price"`
	WorstPrice        *decimal.Decimal  `json:"worst_price"`
	SavingsPercent    decimal.Decimal   `json:"savings_percent"`
	ComputedAt        time.Time         `json:"computed_at"`
}

// HasOffers reports whether at least one available offer was ranked.
func (r *Result) HasOffers() bool {
	return r.BestPrice != nil
}

// Key identifies one cached comparison. The tuple is explicit so independent
// callers agree on cache-key identity.
type Key struct {
	ProductID         uuid.UUID
	ReferenceCurrency string
	MaxStores         int
}

// String renders the deterministic cache key for this tuple.
func (k Key) String() string {
	return fmt.Sprintf("comparison:product:%s:cur:%s:stores:%d", k.ProductID, k.ReferenceCurrency, k.MaxStores)
}

// Cache tags used for bulk invalidation.
const (
	TagProducts   = "products"
	TagCategories = "categories"
)
