package services_test

import (
	"errors"
	"testing"

	impl "github.com/coprra/price-compare/internal/application/services"
	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/stretchr/testify/require"
)

func TestConvert_ThroughBaseCurrency(t *testing.T) {
	conv := impl.NewConverter(testCurrencies())

	got, err := conv.Convert(dec("100"), "USD", "SAR")
	require.NoError(t, err)
	require.True(t, got.Equal(dec("375")), "got %s", got)

	got, err = conv.Convert(dec("92"), "EUR", "USD")
	require.NoError(t, err)
	require.True(t, got.Equal(dec("100")), "got %s", got)
}

func TestConvert_Identity(t *testing.T) {
	conv := impl.NewConverter(testCurrencies())
	amount := dec("19.99")

	got, err := conv.Convert(amount, "EUR", "EUR")
	require.NoError(t, err)
	if !got.Equal(amount) {
		t.Fatalf("identity conversion changed the amount: %s", got)
	}
}

func TestConvert_CaseInsensitiveCodes(t *testing.T) {
	conv := impl.NewConverter(testCurrencies())

	got, err := conv.Convert(dec("1"), "usd", "sar")
	require.NoError(t, err)
	require.True(t, got.Equal(dec("3.75")), "got %s", got)
}

func TestConvert_UnknownCurrency(t *testing.T) {
	conv := impl.NewConverter(testCurrencies())

	_, err := conv.Convert(dec("10"), "USD", "XXX")
	require.Error(t, err)
	require.True(t, errors.Is(err, comparison.ErrCurrencyNotFound))

	// The identity shortcut still validates the code.
	_, err = conv.Convert(dec("10"), "XXX", "XXX")
	require.True(t, errors.Is(err, comparison.ErrCurrencyNotFound))
}

func TestNewConverter_SkipsNonPositiveRates(t *testing.T) {
	conv := impl.NewConverter([]catalog.Currency{
		{Code: "USD", ExchangeRate: dec("1")},
		{Code: "BAD", ExchangeRate: dec("0")},
	})

	_, err := conv.Convert(dec("10"), "USD", "BAD")
	require.True(t, errors.Is(err, comparison.ErrCurrencyNotFound))
}

func TestRound_UsesCurrencyDecimalPlaces(t *testing.T) {
	conv := impl.NewConverter(testCurrencies())

	got, err := conv.Round(dec("10.005"), "USD")
	require.NoError(t, err)
	require.Equal(t, "10.01", got.String())

	got, err = conv.Round(dec("10.00049"), "KWD")
	require.NoError(t, err)
	require.Equal(t, "10", got.String())
}

func TestSymbol(t *testing.T) {
	conv := impl.NewConverter(testCurrencies())

	sym, err := conv.Symbol("eur")
	require.NoError(t, err)
	require.Equal(t, "€", sym)

	_, err = conv.Symbol("XXX")
	require.True(t, errors.Is(err, comparison.ErrCurrencyNotFound))
}
