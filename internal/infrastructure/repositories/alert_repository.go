package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coprra/price-compare/internal/core/domain/alert"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
	"github.com/google/uuid"
)

// AlertRepository implements the price alert repository interface.
type AlertRepository struct {
	db *db.Database
}

// NewAlertRepository creates a new alert repository.
func NewAlertRepository(database *db.Database) ports.AlertRepository {
	return &AlertRepository{db: database}
}

func (r *AlertRepository) Create(ctx context.Context, a *alert.PriceAlert) error {
	query := `
		INSERT INTO price_alerts (id, email, product_id, target_price, currency_code, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.DB.ExecContext(ctx, query,
		a.ID, a.Email, a.ProductID, a.TargetPrice, a.Currency, a.Active, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create price alert: %w", err)
	}

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*alert.PriceAlert, error) {
	var a alert.PriceAlert
	query := `
		SELECT id, email, product_id, target_price, currency_code, active, created_at, triggered_at
		FROM price_alerts
		WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &a, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("price alert with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get price alert by ID: %w", err)
	}

	return &a, nil
}

func (r *AlertRepository) ListActive(ctx context.Context) ([]*alert.PriceAlert, error) {
	alerts := []*alert.PriceAlert{}
	query := `
		SELECT id, email, product_id, target_price, currency_code, active, created_at, triggered_at
		FROM price_alerts
		WHERE active = TRUE
		ORDER BY created_at`

	if err := r.db.DB.SelectContext(ctx, &alerts, query); err != nil {
		return nil, fmt.Errorf("failed to list active price alerts: %w", err)
	}

	return alerts, nil
}

// MarkTriggered deactivates the alert and stamps the trigger time.
func (r *AlertRepository) MarkTriggered(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE price_alerts SET active = FALSE, triggered_at = NOW() WHERE id = $1 AND active = TRUE`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark price alert as triggered: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("active price alert with ID %s not found", id)
	}

	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM price_alerts WHERE id = $1`

	if _, err := r.db.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete price alert: %w", err)
	}

	return nil
}
