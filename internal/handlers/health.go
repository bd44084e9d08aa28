package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

// Pinger checks that the store answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting service health.
// @Summary Health check
// @Description Reports whether the service and its database are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse "ok"
// @Failure 503 {object} models.ErrorResponse "Database unavailable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "ok"})
	}
}
