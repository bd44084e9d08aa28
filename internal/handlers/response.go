package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/services"
)

// UserIDGetter returns the authenticated user id stored in the request context.
type UserIDGetter func(ctx context.Context) (uuid.UUID, bool)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeServiceError maps service errors to responses. notFound is the message
// used for services.ErrNotFound.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		logger.Log.Errorw("internal server error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage returns the message registered for the first failed
// field, keyed by "Field.tag" or "Field", or fallback.
func validationMessage(err error, messages map[string]string, fallback string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fallback
	}
	fe := verrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fallback
}

// resourceIDs resolves the caller and the {id} path parameter. It writes the
// response and returns false when either is unusable. A malformed id cannot
// match any row, so it is reported as not found.
func resourceIDs(w http.ResponseWriter, r *http.Request, userIDGetter UserIDGetter, notFound string) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := callerID(w, r, userIDGetter)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

func callerID(w http.ResponseWriter, r *http.Request, userIDGetter UserIDGetter) (uuid.UUID, bool) {
	userID, ok := userIDGetter(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return uuid.Nil, false
	}
	return userID, true
}
