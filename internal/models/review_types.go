package models

import "time"

// Review is the model for the 'reviews' table.
type Review struct {
	ID         string    `json:"id" db:"id"`
	ProductID  string    `json:"productId" db:"product_id"`
	UserID     string    `json:"userId" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	IsApproved bool      `json:"isApproved" db:"is_approved"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Flattened reviewer fields for UI convenience
	UserName   string  `json:"userName,omitempty" db:"-"`
	UserAvatar *string `json:"userAvatar,omitempty" db:"-"`
}
