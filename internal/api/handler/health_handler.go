package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minesite/dispatch-form/internal/core/ports"
)

// HealthHandler serves GET /health (liveness) and GET /health/ready
// (readiness: the KV store answers a ping).
type HealthHandler struct {
	store   ports.Pinger
	backend string
}

func NewHealthHandler(store ports.Pinger, backend string) *HealthHandler {
	return &HealthHandler{store: store, backend: backend}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status:       "degraded",
			Dependencies: map[string]dependencyStatus{h.backend: {Status: "unhealthy", Error: err.Error()}},
		})
	}
	return c.JSON(http.StatusOK, readinessResponse{
		Status:       "ok",
		Dependencies: map[string]dependencyStatus{h.backend: {Status: "ok"}},
	})
}
