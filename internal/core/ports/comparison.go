package ports

import (
	"context"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyConverter converts monetary amounts between currency codes using a
// rate snapshot. Pure; no side effects.
type CurrencyConverter interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	// Round rounds amount to the currency's configured decimal places
	// (half-up). Applied at presentation time, never before aggregation math.
	Round(amount decimal.Decimal, code string) (decimal.Decimal, error)
	Symbol(code string) (string, error)
}

// ComparisonCache memoizes aggregation results with TTL and tag-based bulk
// invalidation, guaranteeing at-most-one computation per key under concurrent
// access. Backend failures are absorbed: reads degrade to a miss and writes
// are best-effort.
type ComparisonCache interface {
	GetOrCompute(ctx context.Context, key comparison.Key, ttl time.Duration, tags []string, compute func(ctx context.Context) (*comparison.Result, error)) (*comparison.Result, error)
	InvalidateTag(ctx context.Context, tag string)
}

// ComparisonService is the consumer-facing surface of the comparison core.
type ComparisonService interface {
	// GetComparison returns the (possibly cached) comparison for a product.
	// referenceCurrency and maxStores fall back to configured defaults when
	// zero-valued.
	GetComparison(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error)
	// Refresh invalidates product-tagged cache entries and recomputes.
	Refresh(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error)
}
