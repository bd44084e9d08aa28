package services

import "errors"

var (
	// ErrNotFound is returned when no row matched both the id and the caller.
	ErrNotFound = errors.New("not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries a message that is safe to show to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
