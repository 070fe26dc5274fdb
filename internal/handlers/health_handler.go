package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	version   string
	startedAt time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(version string) *HealthCheckHandler {
	return &HealthCheckHandler{version: version, startedAt: time.Now()}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API status. The service is stateless so it has no dependencies to check.
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,version=string,time=string,uptime=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"uptime":  time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
