package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	startedAt time.Time
	version   string
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(version string) *HealthCheckHandler {
	return &HealthCheckHandler{startedAt: time.Now(), version: version}
}

// HealthCheck reports liveness. The service keeps no external connections,
// so a running process is a healthy one.
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: RFC 3339 timestamp
//   - uptime: seconds since start
//   - version: build version
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"uptime":  int64(time.Since(h.startedAt).Seconds()),
		"version": h.version,
	})
}
