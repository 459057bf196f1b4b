package handler

import (
	"net/http"
	"time"

	"github.com/fairflip/coinflip/internal/middleware"
	"github.com/fairflip/coinflip/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that uptime monitors and load
// balancers can use to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// StatusResponse is the body of the status endpoint.
type StatusResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// CheckHealth handles GET /status.
//
// The service has no external dependencies to probe, so a reachable
// process is a healthy one: this always returns 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().Msg("health check")

	return c.JSON(http.StatusOK, StatusResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
	})
}
