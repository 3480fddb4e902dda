package alert

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceAlert asks to be notified when a product's best price drops to or below
// the target. Alerts are single-shot: once triggered they are deactivated.
type PriceAlert struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Email       string          `json:"email" db:"email"`
	ProductID   uuid.UUID       `json:"product_id" db:"product_id"`
	TargetPrice decimal.Decimal `json:"target_price" db:"target_price"`
	Currency    string          `json:"currency" db:"currency_code"`
	Active      bool            `json:"active" db:"active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	TriggeredAt *time.Time      `json:"triggered_at,omitempty" db:"triggered_at"`
}

// TargetReached reports whether current satisfies the alert.
func (a *PriceAlert) TargetReached(current decimal.Decimal) bool {
	return current.LessThanOrEqual(a.TargetPrice)
}

// CreateAlertRequest represents the request to create a price alert.
type CreateAlertRequest struct {
	Email       string          `json:"email" validate:"required"`
	ProductID   uuid.UUID       `json:"product_id" validate:"required"`
	TargetPrice decimal.Decimal `json:"target_price" validate:"required"`
	Currency    string          `json:"currency"`
}

// SweepStats summarizes one CheckAlerts run.
type SweepStats struct {
	TotalChecked      int `json:"total_checked"`
	ProductsChecked   int `json:"products_checked"`
	AlertsTriggered   int `json:"alerts_triggered"`
	NotificationsSent int `json:"notifications_sent"`
	Errors            int `json:"errors"`
}
