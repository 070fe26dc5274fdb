package handlers

import (
	"net/http"
	"time"

	"getwise/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints are only registered when APP_ENV is development
type DevHandler struct {
	newGenerator func(seed int64) services.SnapshotGeneratorInterface
	now          func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler() *DevHandler {
	return &DevHandler{
		newGenerator: services.NewSnapshotGenerator,
		now:          time.Now,
	}
}

// SampleSnapshot generates a realistic snapshot to feed back into the advice endpoints
//
// Method: GET /api/v1/dev/sample-snapshot
// Environment: Development only
//
// Query parameters:
//   - days: Number of days of history to generate (default: 30, max: 366)
//   - seed: Fixed seed for a reproducible snapshot (default: random)
//
// Success Response: 200 OK
//   - data: Snapshot in the same shape the advice endpoints accept
func (h *DevHandler) SampleSnapshot(c echo.Context) error {
	days := getIntParam(c, "days", services.DefaultSampleDays)
	seed := getInt64Param(c, "seed", 0)

	snapshot := h.newGenerator(seed).Generate(days, h.now().UTC())

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    snapshot,
		Message: "sample snapshot generated",
		Meta: map[string]interface{}{
			"days": len(snapshot.Days),
		},
	})
}
