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

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login
// @Description Authenticates a user by email and password and returns a token with the public user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "User login request"
// @Success 200 {object} models.AuthResponse "Successful login"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Infow("failed to decode login request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		resp, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			writeServiceError(w, err, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
