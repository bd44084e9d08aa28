package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
}

var registerMessages = map[string]string{
	"Username.required": "Username, email and password are required",
	"Email.required":    "Username, email and password are required",
	"Password.required": "Username, email and password are required",
	"Email.email":       "Invalid email address",
	"Password.min":      "Password must be at least 6 characters",
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username and email and returns a token. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.AuthResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Username or email already exists / invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Infow("failed to decode register request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err, registerMessages, "Invalid request body"))
			return
		}

		resp, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "Username or email already exists")
				return
			}
			writeServiceError(w, err, "User not found")
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}
