package models

import "time"

// Category defines the struct for the 'categories' table
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	ParentID  *string   `json:"parentId,omitempty" db:"parent_id"` // pointer for NULL (root categories)
	SortOrder int       `json:"sortOrder" db:"sort_order"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Children is assembled in memory from the flat rows
	Children []*Category `json:"children" db:"-"`
}
