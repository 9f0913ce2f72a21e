package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/build"
)

// HealthHandler reports liveness and build metadata.
type HealthHandler struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

type healthBody struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Check serves GET /healthz. A failed database ping returns 503.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	body := healthBody{Status: "ok", Version: build.Version, Commit: build.Commit}
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn("health check: database ping failed", zap.Error(err))
		body.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
