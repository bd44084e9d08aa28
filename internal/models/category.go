package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is used when a category is created or updated without a color.
const DefaultCategoryColor = "#3b82f6"

// CategoryDB represents a category row in the database
// swagger:model Category
type CategoryDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Category identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner of the category
	Name      string    `json:"name" db:"name"`             // Display name
	Color     string    `json:"color" db:"color"`           // Hex color, e.g. #3b82f6
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// CategoryRequest represents the JSON body for creating or updating a category
// swagger:model CategoryRequest
type CategoryRequest struct {
	// Category name
	// required: true
	// example: Work
	Name string `json:"name" validate:"required,max=100"`

	// Hex color, defaults to #3b82f6
	// example: #6a9bcc
	Color string `json:"color" validate:"omitempty,hexcolor"`
}
