package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkDB represents a link row in the database.
// CategoryID is invalid (JSON null) for uncategorized links.
// swagger:model Link
type LinkDB struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	UserID      uuid.UUID     `json:"user_id" db:"user_id"`
	CategoryID  uuid.NullUUID `json:"category_id" db:"category_id" swaggertype:"string"`
	Title       string        `json:"title" db:"title"`
	URL         string        `json:"url" db:"url"`
	Description *string       `json:"description" db:"description"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// Uncategorized reports whether the link has no category.
func (l *LinkDB) Uncategorized() bool {
	return !l.CategoryID.Valid
}

// LinkRequest represents the JSON body for creating or replacing a link
// swagger:model LinkRequest
type LinkRequest struct {
	// Link title
	// required: true
	// example: Docs
	Title string `json:"title" validate:"required"`

	// Absolute URL
	// required: true
	// example: https://docs.example.com
	URL string `json:"url" validate:"required"`

	// Optional description
	// example: Team documentation
	Description *string `json:"description,omitempty"`

	// Optional category id; null or empty means uncategorized
	// example: 0b4b6d7e-8c3c-4a35-9d6a-5d3f3c9a1f10
	CategoryID *string `json:"category_id,omitempty"`
}

// LinkInput is a validated link request with the category parsed.
type LinkInput struct {
	Title       string
	URL         string
	Description *string
	CategoryID  uuid.NullUUID
}

// LinkFilter narrows a link listing to one category. The zero value lists everything.
type LinkFilter struct {
	CategoryID uuid.NullUUID
}

// Key identifies the filter in caches.
func (f LinkFilter) Key() string {
	if !f.CategoryID.Valid {
		return "all"
	}
	return f.CategoryID.UUID.String()
}
