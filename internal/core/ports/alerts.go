package ports

import (
	"context"

	"github.com/coprra/price-compare/internal/core/domain/alert"
	"github.com/google/uuid"
)

// AlertRepository defines the interface for price alert data operations.
type AlertRepository interface {
	Create(ctx context.Context, a *alert.PriceAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*alert.PriceAlert, error)
	ListActive(ctx context.Context) ([]*alert.PriceAlert, error)
	MarkTriggered(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AlertService checks active price alerts against current best prices and
// notifies their owners.
type AlertService interface {
	CreateAlert(ctx context.Context, req *alert.CreateAlertRequest) (*alert.PriceAlert, error)
	DeleteAlert(ctx context.Context, id uuid.UUID) error
	// CheckAlerts sweeps active alerts and sends notifications for every
	// alert whose target price has been reached.
	CheckAlerts(ctx context.Context) (*alert.SweepStats, error)
}

// AlertMailer delivers price-drop notifications.
type AlertMailer interface {
	SendPriceDropAlert(ctx context.Context, a *alert.PriceAlert, productName string, currentPrice string) error
}
