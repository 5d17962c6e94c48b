package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// GetAllBrands lists every brand alphabetically.
func (s *Store) GetAllBrands(ctx context.Context) ([]*models.Brand, error) {
	query := `
		SELECT id, name, slug, is_active, is_featured, created_at, updated_at
		FROM brands
		ORDER BY name ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		var brand models.Brand
		if err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&brand.Slug,
			&brand.IsActive,
			&brand.IsFeatured,
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			return nil, err
		}
		brands = append(brands, &brand)
	}
	return brands, rows.Err()
}

// CountBrands returns the number of brands.
func (s *Store) CountBrands(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM brands`).Scan(&count)
	return count, err
}

// CreateBrand persists a new brand with a slug derived from its name.
// A slug clash surfaces as ErrDuplicateSlug.
func (s *Store) CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	now := time.Now()
	brand.ID = uuid.NewString()
	brand.Slug = slug.Make(brand.Name)
	brand.CreatedAt = now
	brand.UpdatedAt = now

	query := `
		INSERT INTO brands
		(id, name, slug, is_active, is_featured, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		brand.ID,
		brand.Name,
		brand.Slug,
		brand.IsActive,
		brand.IsFeatured,
		brand.CreatedAt,
		brand.UpdatedAt,
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	return brand, nil
}
