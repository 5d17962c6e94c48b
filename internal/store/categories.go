package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// GetCategoryTree returns the category hierarchy: root categories in sort
// order with their children nested.
func (s *Store) GetCategoryTree(ctx context.Context) ([]*models.Category, error) {
	query := `
		SELECT id, name, slug, parent_id, sort_order, created_at, updated_at
		FROM categories
		ORDER BY sort_order ASC, name ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flat []*models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
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
		flat = append(flat, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return BuildCategoryTree(flat), nil
}

// BuildCategoryTree nests a flat category list into roots with children,
// preserving the input order. Rows pointing at a missing parent are treated
// as roots rather than dropped.
func BuildCategoryTree(flat []*models.Category) []*models.Category {
	byID := make(map[string]*models.Category, len(flat))
	for _, category := range flat {
		category.Children = []*models.Category{}
		byID[category.ID] = category
	}

	roots := []*models.Category{}
	for _, category := range flat {
		if category.ParentID != nil {
			if parent, ok := byID[*category.ParentID]; ok {
				parent.Children = append(parent.Children, category)
				continue
			}
		}
		roots = append(roots, category)
	}
	return roots
}

// CreateCategory persists a new category with a slug derived from its name.
func (s *Store) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	now := time.Now()
	category.ID = uuid.NewString()
	category.Slug = slug.Make(category.Name)
	category.CreatedAt = now
	category.UpdatedAt = now
	if category.Children == nil {
		category.Children = []*models.Category{}
	}

	query := `
		INSERT INTO categories
		(id, name, slug, parent_id, sort_order, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		category.ID,
		category.Name,
		category.Slug,
		category.ParentID,
		category.SortOrder,
		category.CreatedAt,
		category.UpdatedAt,
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	return category, nil
}
