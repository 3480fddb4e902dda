package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entity identifies the kind of catalog record a lifecycle event refers to.
type Entity string

const (
	EntityProduct  Entity = "product"
	EntityCategory Entity = "category"
)

// EventKind enumerates the catalog lifecycle events repositories dispatch.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventRestored EventKind = "restored"
)

type Product struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	CategoryID  uuid.UUID  `json:"category_id" db:"category_id"`
	Name        string     `json:"name" db:"name"`
	Slug        string     `json:"slug" db:"slug"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type Category struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Slug      string     `json:"slug" db:"slug"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// Offer is one store's listing of one product. Offers are written by catalog
// sync jobs and are read-only to the comparison core.
type Offer struct {
	Store     string          `json:"store" db:"store_slug"`
	ProductID uuid.UUID       `json:"product_id" db:"product_id"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Currency  string          `json:"currency" db:"currency_code"`
	Available bool            `json:"available" db:"available"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Currency is a rate-table row. ExchangeRate expresses units of this currency
// per one base-currency unit and must be positive.
type Currency struct {
	Code          string          `json:"code" db:"code"`
	Name          string          `json:"name" db:"name"`
	Symbol        string          `json:"symbol" db:"symbol"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate" db:"exchange_rate"`
	DecimalPlaces int32           `json:"decimal_places" db:"decimal_places"`
}

// CreateProductRequest represents the request to create a product.
type CreateProductRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `json:"slug" validate:"required"`
	Description string    `json:"description"`
}

// UpdateProductRequest represents a partial product update.
type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Slug        *string    `json:"slug,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// CreateCategoryRequest represents the request to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}
