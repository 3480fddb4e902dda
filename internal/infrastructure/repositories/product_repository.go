package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ProductRepository implements the product repository interface. Every
// successful write dispatches the matching catalog lifecycle event so cache
// observers see the mutation.
type ProductRepository struct {
	db         *db.Database
	dispatcher ports.CatalogDispatcher
	logger     *logrus.Logger
}

// NewProductRepository creates a new product repository.
func NewProductRepository(database *db.Database, dispatcher ports.CatalogDispatcher, logger *logrus.Logger) ports.ProductRepository {
	return &ProductRepository{db: database, dispatcher: dispatcher, logger: logger}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Slug, p.Description, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventCreated, catalog.EntityProduct, p.ID)
	return nil
}

// GetByID retrieves a product by ID, excluding soft-deleted rows.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var p catalog.Product
	query := `
		SELECT id, category_id, name, slug, description, created_at, updated_at, deleted_at
		FROM products
		WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return &p, nil
}

// GetBySlug retrieves a product by slug, excluding soft-deleted rows.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var p catalog.Product
	query := `
		SELECT id, category_id, name, slug, description, created_at, updated_at, deleted_at
		FROM products
		WHERE slug = $1 AND deleted_at IS NULL`

	err := r.db.DB.GetContext(ctx, &p, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}

	return &p, nil
}

// Update updates an existing product.
func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, slug = $4, description = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Slug, p.Description, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("product with ID %s not found", p.ID)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventUpdated, catalog.EntityProduct, p.ID)
	return nil
}

// Delete soft-deletes the product.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("product with ID %s not found", id)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventDeleted, catalog.EntityProduct, id)
	return nil
}

// Restore undoes a soft delete.
func (r *ProductRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to restore product: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("no soft-deleted product with ID %s", id)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventRestored, catalog.EntityProduct, id)
	return nil
}

// List returns non-deleted products ordered by creation time.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	products := []*catalog.Product{}
	query := `
		SELECT id, category_id, name, slug, description, created_at, updated_at, deleted_at
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	if err := r.db.DB.SelectContext(ctx, &products, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
