package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ComparisonConfig carries the per-call defaults for the comparison service.
type ComparisonConfig struct {
	DefaultCurrency  string
	DefaultMaxStores int
	CacheTTL         time.Duration
}

// PriceComparisonService orchestrates the comparison core: it resolves offers
// and the rate snapshot, derives the cache key, and answers through the
// comparison cache.
type PriceComparisonService struct {
	offers     ports.OfferRepository
	currencies ports.CurrencyRepository
	cache      ports.ComparisonCache
	config     *ComparisonConfig
	logger     *logrus.Logger
}

// NewPriceComparisonService wires the comparison orchestrator.
func NewPriceComparisonService(offers ports.OfferRepository, currencies ports.CurrencyRepository, cache ports.ComparisonCache, config *ComparisonConfig, logger *logrus.Logger) ports.ComparisonService {
	return &PriceComparisonService{
		offers:     offers,
		currencies: currencies,
		cache:      cache,
		config:     config,
		logger:     logger,
	}
}

// GetComparison returns the ranked comparison for a product, serving from
// cache when possible.
func (s *PriceComparisonService) GetComparison(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error) {
	key := s.key(productID, referenceCurrency, maxStores)
	tags := []string{comparison.TagProducts, comparison.TagCategories}
	return s.cache.GetOrCompute(ctx, key, s.config.CacheTTL, tags, func(ctx context.Context) (*comparison.Result, error) {
		return s.compute(ctx, key)
	})
}

// Refresh drops product-tagged entries first so the subsequent read is a
// guaranteed recomputation.
func (s *PriceComparisonService) Refresh(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error) {
	s.cache.InvalidateTag(ctx, comparison.TagProducts)
	return s.GetComparison(ctx, productID, referenceCurrency, maxStores)
}

func (s *PriceComparisonService) key(productID uuid.UUID, referenceCurrency string, maxStores int) comparison.Key {
	if referenceCurrency == "" {
		referenceCurrency = s.config.DefaultCurrency
	}
	if maxStores <= 0 {
		maxStores = s.config.DefaultMaxStores
	}
	return comparison.Key{
		ProductID:         productID,
		ReferenceCurrency: strings.ToUpper(referenceCurrency),
		MaxStores:         maxStores,
	}
}

// compute performs one full aggregation from fresh repository reads. The rate
// snapshot is taken per computation, so a comparison is internally consistent
// even if rates change mid-flight.
func (s *PriceComparisonService) compute(ctx context.Context, key comparison.Key) (*comparison.Result, error) {
	offers, err := s.offers.ListByProduct(ctx, key.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}
	currencies, err := s.currencies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency snapshot: %w", err)
	}

	aggregator := NewAggregator(NewConverter(currencies))
	result, err := aggregator.Aggregate(key.ProductID, offers, key.ReferenceCurrency, key.MaxStores)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"product_id": key.ProductID,
			"currency":   key.ReferenceCurrency,
			"offers":     len(result.Offers),
		}).Debug("comparison computed")
	}
	return result, nil
}
