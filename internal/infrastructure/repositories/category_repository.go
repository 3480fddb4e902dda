package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coprra/price-compare/internal/core/domain/catalog"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/coprra/price-compare/internal/infrastructure/db"
	"github.com/google/uuid"
)

// CategoryRepository implements the category repository interface with the
// same event-dispatching write semantics as products.
type CategoryRepository struct {
	db         *db.Database
	dispatcher ports.CatalogDispatcher
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(database *db.Database, dispatcher ports.CatalogDispatcher) ports.CategoryRepository {
	return &CategoryRepository{db: database, dispatcher: dispatcher}
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.DB.ExecContext(ctx, query, c.ID, c.Name, c.Slug, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventCreated, catalog.EntityCategory, c.ID)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var c catalog.Category
	query := `
		SELECT id, name, slug, created_at, updated_at, deleted_at
		FROM categories
		WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query, c.ID, c.Name, c.Slug, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("category with ID %s not found", c.ID)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventUpdated, catalog.EntityCategory, c.ID)
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE categories SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("category with ID %s not found", id)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventDeleted, catalog.EntityCategory, id)
	return nil
}

func (r *CategoryRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE categories SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to restore category: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("no soft-deleted category with ID %s", id)
	}

	r.dispatcher.Dispatch(ctx, catalog.EventRestored, catalog.EntityCategory, id)
	return nil
}

func (r *CategoryRepository) List(ctx context.Context, limit, offset int) ([]*catalog.Category, error) {
	categories := []*catalog.Category{}
	query := `
		SELECT id, name, slug, created_at, updated_at, deleted_at
		FROM categories
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2`

	if err := r.db.DB.SelectContext(ctx, &categories, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
