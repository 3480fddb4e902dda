package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// comparisonResponse is the wire shape of a comparison. Prices are rounded to
// the reference currency's decimal places here, at the presentation boundary;
// the domain keeps full precision.
type comparisonResponse struct {
	ProductID         uuid.UUID       `json:"product_id"`
	ReferenceCurrency string          `json:"reference_currency"`
	Offers            []offerResponse `json:"offers"`
	BestPrice         *float64        `json:"best_price"`
	WorstPrice        *float64        `json:"worst_price"`
	SavingsPercent    float64         `json:"savings_percent"`
	ComputedAt        time.Time       `json:"computed_at"`
}

type offerResponse struct {
	Store           string  `json:"store"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	NormalizedPrice float64 `json:"normalized_price"`
	Available       bool    `json:"available"`
}

func (s *Server) getComparison(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}
	currency := c.QueryParam("currency")
	maxStores := 0
	if m := c.QueryParam("max_stores"); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			maxStores = v
		}
	}

	result, err := s.comparisonSvc.GetComparison(c.Request().Context(), productID, currency, maxStores)
	if err != nil {
		if errors.Is(err, comparison.ErrCurrencyNotFound) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, s.renderComparison(c, result))
}

func (s *Server) refreshComparison(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}
	currency := c.QueryParam("currency")
	maxStores := 0
	if m := c.QueryParam("max_stores"); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			maxStores = v
		}
	}

	result, err := s.comparisonSvc.Refresh(c.Request().Context(), productID, currency, maxStores)
	if err != nil {
		if errors.Is(err, comparison.ErrCurrencyNotFound) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "comparison": s.renderComparison(c, result)})
}

func (s *Server) renderComparison(c echo.Context, result *comparison.Result) *comparisonResponse {
	places := s.decimalPlaces(c.Request().Context())
	refPlaces := placesFor(places, result.ReferenceCurrency)

	resp := &comparisonResponse{
		ProductID:         result.ProductID,
		ReferenceCurrency: result.ReferenceCurrency,
		Offers:            make([]offerResponse, 0, len(result.Offers)),
		SavingsPercent:    roundFloat(result.SavingsPercent, 2),
		ComputedAt:        result.ComputedAt,
	}
	for _, o := range result.Offers {
		// The original price keeps its own currency's precision; only the
		// normalized price is in the reference currency.
		resp.Offers = append(resp.Offers, offerResponse{
			Store:           o.Store,
			Price:           roundFloat(o.Price, placesFor(places, o.Currency)),
			Currency:        o.Currency,
			NormalizedPrice: roundFloat(o.NormalizedPrice, refPlaces),
			Available:       o.Available,
		})
	}
	if result.BestPrice != nil {
		v := roundFloat(*result.BestPrice, refPlaces)
		resp.BestPrice = &v
	}
	if result.WorstPrice != nil {
		v := roundFloat(*result.WorstPrice, refPlaces)
		resp.WorstPrice = &v
	}
	return resp
}

// decimalPlaces snapshots the rate table's precision settings for rendering.
// On a repository failure the standard two places apply everywhere.
func (s *Server) decimalPlaces(ctx context.Context) map[string]int32 {
	m := make(map[string]int32)
	if currencies, err := s.currencyRepo.List(ctx); err == nil {
		for _, cur := range currencies {
			m[strings.ToUpper(cur.Code)] = cur.DecimalPlaces
		}
	}
	return m
}

func placesFor(places map[string]int32, code string) int32 {
	if p, ok := places[strings.ToUpper(code)]; ok {
		return p
	}
	return 2
}

func roundFloat(d decimal.Decimal, places int32) float64 {
	f, _ := d.Round(places).Float64()
	return f
}
