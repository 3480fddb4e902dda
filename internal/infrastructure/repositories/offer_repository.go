package repositories

import (
	"context"
	"fmt"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
	"github.com/google/uuid"
)

// OfferRepository reads per-store listings. Offers are owned by catalog sync
// jobs; the comparison core never writes them.
type OfferRepository struct {
	db *db.Database
}

// NewOfferRepository creates a new offer repository.
func NewOfferRepository(database *db.Database) ports.OfferRepository {
	return &OfferRepository{db: database}
}

// ListByProduct returns every store's listing for a product, available or not.
func (r *OfferRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Offer, error) {
	offers := []catalog.Offer{}
	query := `
		SELECT store_slug, product_id, price, currency_code, available, updated_at
		FROM offers
		WHERE product_id = $1`

	if err := r.db.DB.SelectContext(ctx, &offers, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list offers for product %s: %w", productID, err)
	}

	return offers, nil
}
