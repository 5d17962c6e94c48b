package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the model for the 'products' table.
type Product struct {
	ID          string          `json:"id" db:"id"`
	Slug        string          `json:"slug" db:"slug"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Inventory   int             `json:"inventory" db:"inventory"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	IsFeatured  bool            `json:"isFeatured" db:"is_featured"`
	BrandID     string          `json:"brandId" db:"brand_id"`
	CategoryID  string          `json:"categoryId" db:"category_id"`

	// TotalOrders is the denormalized sales counter used for the
	// "top selling" ranking.
	TotalOrders int `json:"totalOrders" db:"total_orders"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Joins (populated by the store)
	Brand    *Brand    `json:"brand,omitempty" db:"-"`
	Category *Category `json:"category,omitempty" db:"-"`
}
