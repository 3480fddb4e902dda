package httpserver

import (
	"net/http"

	"github.com/coprra/price-compare/internal/core/domain/alert"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) createAlert(c echo.Context) error {
	var req alert.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.ProductID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "email and product_id are required")
	}
	a, err := s.alertSvc.CreateAlert(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (s *Server) deleteAlert(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid alert ID")
	}
	if err := s.alertSvc.DeleteAlert(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// checkAlerts runs one alert sweep; wired for an external scheduler to call.
func (s *Server) checkAlerts(c echo.Context) error {
	stats, err := s.alertSvc.CheckAlerts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
