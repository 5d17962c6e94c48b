package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

const productColumns = `p.id, p.slug, p.name, p.description, p.price, p.inventory,
		p.is_active, p.is_featured, p.brand_id, p.category_id, p.total_orders,
		p.created_at, p.updated_at,
		b.id, b.name, b.slug, b.is_active, b.is_featured, b.created_at, b.updated_at,
		c.id, c.name, c.slug, c.parent_id, c.sort_order, c.created_at, c.updated_at`

const productFrom = `
		FROM products p
		JOIN brands b ON p.brand_id = b.id
		JOIN categories c ON p.category_id = c.id`

func scanProductRows(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		var product models.Product
		var brand models.Brand
		var category models.Category
		if err := rows.Scan(
			&product.ID,
			&product.Slug,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Inventory,
			&product.IsActive,
			&product.IsFeatured,
			&product.BrandID,
			&product.CategoryID,
			&product.TotalOrders,
			&product.CreatedAt,
			&product.UpdatedAt,
			&brand.ID,
			&brand.Name,
			&brand.Slug,
			&brand.IsActive,
			&brand.IsFeatured,
			&brand.CreatedAt,
			&brand.UpdatedAt,
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.ParentID,
			&category.SortOrder,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		product.Brand = &brand
		product.Category = &category
		products = append(products, &product)
	}
	return products, rows.Err()
}

func (s *Store) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*models.Product, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductRows(rows)
}

// GetAllProducts returns the full catalog, newest first, with brand and
// category attached.
func (s *Store) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` ORDER BY p.created_at DESC`
	return s.queryProducts(ctx, query)
}

// GetProductBySlug fetches one product by its unique slug.
// Returns (nil, nil) when absent.
func (s *Store) GetProductBySlug(ctx context.Context, productSlug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.slug = ?`
	products, err := s.queryProducts(ctx, query, productSlug)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return products[0], nil
}

// GetFeaturedProducts returns active featured products, newest first.
func (s *Store) GetFeaturedProducts(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
		WHERE p.is_featured = TRUE AND p.is_active = TRUE
		ORDER BY p.created_at DESC`
	return s.queryProducts(ctx, query)
}

// SearchProducts matches active products by name or description substring.
func (s *Store) SearchProducts(ctx context.Context, term string) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
		WHERE p.is_active = TRUE AND (p.name LIKE ? OR p.description LIKE ?)
		ORDER BY p.created_at DESC`
	pattern := "%" + term + "%"
	return s.queryProducts(ctx, query, pattern, pattern)
}

// GetTopSellingProducts returns up to limit products with at least one
// recorded sale, best sellers first.
func (s *Store) GetTopSellingProducts(ctx context.Context, limit int) ([]*models.Product, error) {
	if limit <= 0 {
		return []*models.Product{}, nil
	}
	query := `SELECT ` + productColumns + productFrom + `
		WHERE p.total_orders > 0
		ORDER BY p.total_orders DESC
		LIMIT ?`
	products, err := s.queryProducts(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*models.Product{}
	}
	return products, nil
}

// GetLowStockProducts lists active products at or below the inventory
// threshold, emptiest first.
func (s *Store) GetLowStockProducts(ctx context.Context, threshold int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + productFrom + `
		WHERE p.inventory <= ? AND p.is_active = TRUE
		ORDER BY p.inventory ASC`
	return s.queryProducts(ctx, query, threshold)
}

// CreateProduct persists a new product. The slug is derived from the name;
// a clash on it surfaces as ErrDuplicateSlug.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	now := time.Now()
	product.ID = uuid.NewString()
	product.Slug = slug.Make(product.Name)
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `
		INSERT INTO products
		(id, slug, name, description, price, inventory, is_active, is_featured,
		 brand_id, category_id, total_orders, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	args := []interface{}{
		product.ID,
		product.Slug,
		product.Name,
		product.Description,
		product.Price,
		product.Inventory,
		product.IsActive,
		product.IsFeatured,
		product.BrandID,
		product.CategoryID,
		product.CreatedAt,
		product.UpdatedAt,
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	// Re-read so the caller gets the same eager shape as the read path.
	return s.GetProductBySlug(ctx, product.Slug)
}

// CountProducts returns the catalog size.
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
