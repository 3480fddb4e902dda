package services

import (
	"strings"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Converter converts amounts between currencies using an immutable rate
// snapshot. Rates express units of each currency per one base-currency unit,
// so conversion goes through the base: amount / rate[from] * rate[to].
// The snapshot is taken once at construction; stale rates are tolerated.
type Converter struct {
	currencies map[string]catalog.Currency
}

// NewConverter builds a converter from a rate snapshot. Currencies with a
// non-positive exchange rate are skipped; they can never participate in a
// well-defined conversion.
func NewConverter(currencies []catalog.Currency) *Converter {
	m := make(map[string]catalog.Currency, len(currencies))
	for _, c := range currencies {
		if c.ExchangeRate.Sign() <= 0 {
			continue
		}
		m[strings.ToUpper(c.Code)] = c
	}
	return &Converter{currencies: m}
}

// Convert converts amount from one currency code to another. Identity
// conversions return the amount untouched, so convert(x, C, C) == x exactly.
// Intermediate math keeps full decimal precision; rounding to a currency's
// decimal places is a separate, presentation-time concern (Round).
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		if _, ok := c.currencies[from]; !ok {
			return decimal.Zero, comparison.CurrencyError(from)
		}
		return amount, nil
	}
	src, ok := c.currencies[from]
	if !ok {
		return decimal.Zero, comparison.CurrencyError(from)
	}
	dst, ok := c.currencies[to]
	if !ok {
		return decimal.Zero, comparison.CurrencyError(to)
	}
	return amount.Div(src.ExchangeRate).Mul(dst.ExchangeRate), nil
}

// Round rounds amount to the currency's configured decimal places using
// standard half-up rounding.
func (c *Converter) Round(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	cur, ok := c.currencies[strings.ToUpper(code)]
	if !ok {
		return decimal.Zero, comparison.CurrencyError(code)
	}
	return amount.Round(cur.DecimalPlaces), nil
}

// Symbol returns the currency's display symbol.
func (c *Converter) Symbol(code string) (string, error) {
	cur, ok := c.currencies[strings.ToUpper(code)]
	if !ok {
		return "", comparison.CurrencyError(code)
	}
	return cur.Symbol, nil
}

// Currency returns the full currency record for code.
func (c *Converter) Currency(code string) (catalog.Currency, bool) {
	cur, ok := c.currencies[strings.ToUpper(code)]
	return cur, ok
}

var _ ports.CurrencyConverter = (*Converter)(nil)
