package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username" validate:"required"`

	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`

	// Public user record
	User PublicUser `json:"user"`
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Link not found
	Error string `json:"error"`
}

// MessageResponse is returned by delete endpoints
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Link deleted successfully
	Message string `json:"message"`
}
