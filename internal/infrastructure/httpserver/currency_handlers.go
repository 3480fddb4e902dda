package httpserver

import (
	"errors"
	"net/http"

	"github.com/coprra/price-compare/internal/application/services"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func (s *Server) listCurrencies(c echo.Context) error {
	currencies, err := s.currencyRepo.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"currencies": currencies})
}

// convertCurrency converts an amount between two currency codes using the
// current rate snapshot.
func (s *Server) convertCurrency(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to currency codes are required")
	}
	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid amount")
	}
	if amount.Sign() < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must not be negative")
	}

	currencies, err := s.currencyRepo.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	converter := services.NewConverter(currencies)
	converted, err := converter.Convert(amount, from, to)
	if err != nil {
		if errors.Is(err, comparison.ErrCurrencyNotFound) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	rounded, err := converter.Round(converted, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"converted": rounded,
	})
}
