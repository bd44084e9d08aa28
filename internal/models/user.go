package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email, used to log in
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// PublicUser is the part of a user that is safe to hand to clients.
// swagger:model PublicUser
type PublicUser struct {
	// User id
	// example: 0b4b6d7e-8c3c-4a35-9d6a-5d3f3c9a1f10
	ID uuid.UUID `json:"id"`

	// Username
	// example: alice
	Username string `json:"username"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`
}

// Public strips the password hash and timestamps.
func (u *UserDB) Public() PublicUser {
	return PublicUser{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}
