package healthhandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/platform/logger"
	"ems/internal/transport/http/api"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Snapshotter interface {
	Snapshot() map[string]any
}

type Handler struct {
	DB      Pinger
	Metrics Snapshotter
}

func NewHandler(db Pinger, metrics Snapshotter) *Handler {
	return &Handler{DB: db, Metrics: metrics}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health/db", h.handleDatabase)
}

// RegisterMetrics mounts the counters endpoint outside the API prefix.
func (h *Handler) RegisterMetrics(r chi.Router) {
	if h.Metrics == nil {
		return
	}
	r.Get("/metrics", h.handleMetrics)
}

// handleDatabase always answers 200; the body carries the verdict.
func (h *Handler) handleDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status := "up"
	if err := h.DB.Ping(ctx); err != nil {
		logger.From(r.Context()).Warn("database ping failed", "err", err)
		status = "down"
	}
	api.OK(w, map[string]string{"database": status})
}

func (h *Handler) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	api.OK(w, h.Metrics.Snapshot())
}
