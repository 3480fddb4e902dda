package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/alert"
	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCurrencies() []catalog.Currency {
	return []catalog.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", ExchangeRate: dec("1"), DecimalPlaces: 2},
		{Code: "EUR", Name: "Euro", Symbol: "€", ExchangeRate: dec("0.92"), DecimalPlaces: 2},
		{Code: "SAR", Name: "Saudi Riyal", Symbol: "ر.س", ExchangeRate: dec("3.75"), DecimalPlaces: 2},
		{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "د.ك", ExchangeRate: dec("0.31"), DecimalPlaces: 3},
	}
}

type offerRepoMock struct {
	listByProductFn func(ctx context.Context, productID uuid.UUID) ([]catalog.Offer, error)
}

func (m *offerRepoMock) ListByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Offer, error) {
	if m.listByProductFn != nil {
		return m.listByProductFn(ctx, productID)
	}
	return nil, nil
}

type currencyRepoMock struct {
	listFn func(ctx context.Context) ([]catalog.Currency, error)
}

func (m *currencyRepoMock) List(ctx context.Context) ([]catalog.Currency, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return testCurrencies(), nil
}

func (m *currencyRepoMock) GetByCode(ctx context.Context, code string) (*catalog.Currency, error) {
	for _, c := range testCurrencies() {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, comparison.CurrencyError(code)
}

type comparisonCacheMock struct {
	getOrComputeFn  func(ctx context.Context, key comparison.Key, ttl time.Duration, tags []string, compute func(ctx context.Context) (*comparison.Result, error)) (*comparison.Result, error)
	invalidatedTags []string
}

func (m *comparisonCacheMock) GetOrCompute(ctx context.Context, key comparison.Key, ttl time.Duration, tags []string, compute func(ctx context.Context) (*comparison.Result, error)) (*comparison.Result, error) {
	if m.getOrComputeFn != nil {
		return m.getOrComputeFn(ctx, key, ttl, tags, compute)
	}
	return compute(ctx)
}

func (m *comparisonCacheMock) InvalidateTag(ctx context.Context, tag string) {
	m.invalidatedTags = append(m.invalidatedTags, tag)
}

type productRepoMock struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

func (m *productRepoMock) Create(ctx context.Context, p *catalog.Product) error { return nil }
func (m *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &catalog.Product{ID: id, Name: "Widget"}, nil
}
func (m *productRepoMock) GetBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	return nil, errors.New("not found")
}
func (m *productRepoMock) Update(ctx context.Context, p *catalog.Product) error { return nil }
func (m *productRepoMock) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (m *productRepoMock) Restore(ctx context.Context, id uuid.UUID) error      { return nil }
func (m *productRepoMock) List(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	return nil, nil
}

type alertRepoMock struct {
	createFn        func(ctx context.Context, a *alert.PriceAlert) error
	listActiveFn    func(ctx context.Context) ([]*alert.PriceAlert, error)
	markTriggeredFn func(ctx context.Context, id uuid.UUID) error
	deletedIDs      []uuid.UUID
}

func (m *alertRepoMock) Create(ctx context.Context, a *alert.PriceAlert) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}
func (m *alertRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*alert.PriceAlert, error) {
	return nil, errors.New("not found")
}
func (m *alertRepoMock) ListActive(ctx context.Context) ([]*alert.PriceAlert, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}
func (m *alertRepoMock) MarkTriggered(ctx context.Context, id uuid.UUID) error {
	if m.markTriggeredFn != nil {
		return m.markTriggeredFn(ctx, id)
	}
	return nil
}
func (m *alertRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type comparisonServiceMock struct {
	getComparisonFn func(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error)
}

func (m *comparisonServiceMock) GetComparison(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error) {
	if m.getComparisonFn != nil {
		return m.getComparisonFn(ctx, productID, referenceCurrency, maxStores)
	}
	return &comparison.Result{ProductID: productID, ReferenceCurrency: referenceCurrency}, nil
}

func (m *comparisonServiceMock) Refresh(ctx context.Context, productID uuid.UUID, referenceCurrency string, maxStores int) (*comparison.Result, error) {
	return m.GetComparison(ctx, productID, referenceCurrency, maxStores)
}

type mailerMock struct {
	sendFn func(ctx context.Context, a *alert.PriceAlert, productName, currentPrice string) error
	sent   int
}

func (m *mailerMock) SendPriceDropAlert(ctx context.Context, a *alert.PriceAlert, productName string, currentPrice string) error {
	m.sent++
	if m.sendFn != nil {
		return m.sendFn(ctx, a, productName, currentPrice)
	}
	return nil
}
