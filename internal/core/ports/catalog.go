package ports

import (
	"context"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data operations.
// Write operations dispatch the matching catalog lifecycle event on success.
type ProductRepository interface {
	Create(ctx context.Context, p *catalog.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.Product, error)
	Update(ctx context.Context, p *catalog.Product) error
	// Delete soft-deletes the product; Restore undoes a soft delete.
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*catalog.Product, error)
}

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(ctx context.Context, c *catalog.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	Update(ctx context.Context, c *catalog.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*catalog.Category, error)
}

// OfferRepository supplies per-store listings. The comparison core never
// writes offers; catalog sync jobs own them.
type OfferRepository interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Offer, error)
}

// CurrencyRepository supplies rate-table snapshots. Rates are administered
// externally; the core tolerates stale values.
type CurrencyRepository interface {
	List(ctx context.Context) ([]catalog.Currency, error)
	GetByCode(ctx context.Context, code string) (*catalog.Currency, error)
}
