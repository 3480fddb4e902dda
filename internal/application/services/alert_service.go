package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coprra/price-compare/internal/core/domain/alert"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PriceAlertService sweeps active price alerts against current best prices and
// mails their owners when a target is reached.
type PriceAlertService struct {
	alerts     ports.AlertRepository
	products   ports.ProductRepository
	comparison ports.ComparisonService
	converter  ports.CurrencyConverter
	mailer     ports.AlertMailer
	defaultCur string
	logger     *logrus.Logger
}

// NewPriceAlertService wires the alert sweep.
func NewPriceAlertService(alerts ports.AlertRepository, products ports.ProductRepository, comparisonSvc ports.ComparisonService, converter ports.CurrencyConverter, mailer ports.AlertMailer, defaultCurrency string, logger *logrus.Logger) ports.AlertService {
	return &PriceAlertService{
		alerts:     alerts,
		products:   products,
		comparison: comparisonSvc,
		converter:  converter,
		mailer:     mailer,
		defaultCur: defaultCurrency,
		logger:     logger,
	}
}

func (s *PriceAlertService) CreateAlert(ctx context.Context, req *alert.CreateAlertRequest) (*alert.PriceAlert, error) {
	if req.TargetPrice.Sign() <= 0 {
		return nil, fmt.Errorf("target price must be positive")
	}
	if _, err := s.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, fmt.Errorf("failed to resolve product for alert: %w", err)
	}
	currency := req.Currency
	if currency == "" {
		currency = s.defaultCur
	}
	a := &alert.PriceAlert{
		ID:          uuid.New(),
		Email:       req.Email,
		ProductID:   req.ProductID,
		TargetPrice: req.TargetPrice,
		Currency:    currency,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create price alert: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"alert_id": a.ID, "product_id": a.ProductID}).Info("price alert created")
	}
	return a, nil
}

func (s *PriceAlertService) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	return s.alerts.Delete(ctx, id)
}

// CheckAlerts walks all active alerts grouped by product, computes the current
// best price once per (product, currency) pair, and notifies every alert whose
// target is reached. Individual failures are counted, logged, and skipped; the
// sweep itself only fails when alerts cannot be listed at all.
func (s *PriceAlertService) CheckAlerts(ctx context.Context) (*alert.SweepStats, error) {
	stats := &alert.SweepStats{}

	active, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	stats.TotalChecked = len(active)
	if len(active) == 0 {
		if s.logger != nil {
			s.logger.Info("no active price alerts to check")
		}
		return stats, nil
	}

	byProduct := make(map[uuid.UUID][]*alert.PriceAlert)
	for _, a := range active {
		byProduct[a.ProductID] = append(byProduct[a.ProductID], a)
	}
	stats.ProductsChecked = len(byProduct)

	for productID, alerts := range byProduct {
		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{"product_id": productID}).WithError(err).Warn("product not found for price alert")
			}
			stats.Errors++
			continue
		}
		for _, a := range alerts {
			if err := s.checkOne(ctx, a, product.Name); err != nil {
				stats.Errors++
				continue
			}
			if a.TriggeredAt != nil {
				stats.AlertsTriggered++
				stats.NotificationsSent++
			}
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"total_checked":      stats.TotalChecked,
			"alerts_triggered":   stats.AlertsTriggered,
			"notifications_sent": stats.NotificationsSent,
			"errors":             stats.Errors,
		}).Info("price alert sweep finished")
	}
	return stats, nil
}

func (s *PriceAlertService) checkOne(ctx context.Context, a *alert.PriceAlert, productName string) error {
	result, err := s.comparison.GetComparison(ctx, a.ProductID, a.Currency, 0)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"alert_id": a.ID}).WithError(err).Warn("failed to compute comparison for alert")
		}
		return err
	}
	if !result.HasOffers() {
		return nil
	}
	best := *result.BestPrice
	if !a.TargetReached(best) {
		return nil
	}

	rounded, err := s.converter.Round(best, a.Currency)
	if err != nil {
		rounded = best
	}
	symbol, _ := s.converter.Symbol(a.Currency)
	display := rounded.String() + " " + symbol

	if err := s.mailer.SendPriceDropAlert(ctx, a, productName, display); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"alert_id": a.ID, "email": a.Email}).WithError(err).Error("failed to send price drop alert")
		}
		return err
	}
	if err := s.alerts.MarkTriggered(ctx, a.ID); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"alert_id": a.ID}).WithError(err).Warn("failed to mark alert as triggered")
		}
		return err
	}
	now := time.Now()
	a.TriggeredAt = &now
	a.Active = false
	return nil
}
