package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/shell-market/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks a backing service.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns a liveness handler that pings the database.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
