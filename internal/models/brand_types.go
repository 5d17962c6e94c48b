package models

import "time"

// Brand defines the struct for the 'brands' table
type Brand struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Slug       string    `json:"slug" db:"slug"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	IsFeatured bool      `json:"isFeatured" db:"is_featured"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
