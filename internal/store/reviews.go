package store

import (
	"context"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

// GetReviewsByProduct lists approved reviews for a product, newest first,
// with the reviewer's name and avatar flattened in.
func (s *Store) GetReviewsByProduct(ctx context.Context, productID string) ([]*models.Review, error) {
	query := `
		SELECT r.id, r.product_id, r.user_id, r.rating, r.comment, r.is_approved, r.created_at,
		       u.name, u.avatar
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.product_id = ? AND r.is_approved = TRUE
		ORDER BY r.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.IsApproved,
			&review.CreatedAt,
			&review.UserName,
			&review.UserAvatar,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}
	return reviews, rows.Err()
}
