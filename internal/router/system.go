package router

import (
	"github.com/fairflip/coinflip/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// randomness API itself.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by monitors/load balancers).
	e.GET(handler.PathStatus, h.Health.CheckHealth)
}
