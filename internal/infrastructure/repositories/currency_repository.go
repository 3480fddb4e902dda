package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/domain/comparison"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
)

// CurrencyRepository reads the rate table. Rates are seeded and administered
// externally; this repository never mutates them.
type CurrencyRepository struct {
	db *db.Database
}

// NewCurrencyRepository creates a new currency repository.
func NewCurrencyRepository(database *db.Database) ports.CurrencyRepository {
	return &CurrencyRepository{db: database}
}

// List returns the full rate snapshot.
func (r *CurrencyRepository) List(ctx context.Context) ([]catalog.Currency, error) {
	currencies := []catalog.Currency{}
	query := `
		SELECT code, name, symbol, exchange_rate, decimal_places
		FROM currencies
		ORDER BY code`

	if err := r.db.DB.SelectContext(ctx, &currencies, query); err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	return currencies, nil
}

// GetByCode returns a single currency record.
func (r *CurrencyRepository) GetByCode(ctx context.Context, code string) (*catalog.Currency, error) {
	var c catalog.Currency
	query := `
		SELECT code, name, symbol, exchange_rate, decimal_places
		FROM currencies
		WHERE code = $1`

	err := r.db.DB.GetContext(ctx, &c, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, comparison.CurrencyError(code)
		}
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}

	return &c, nil
}
