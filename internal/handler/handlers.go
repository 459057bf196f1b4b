package handler

import (
	"github.com/fairflip/coinflip/internal/server"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Pages  *PagesHandler  // Pages serves the HTML landing page.
	Coin   *CoinHandler   // Coin serves the coin-flip endpoints.
	Health *HealthHandler // Health serves the service status endpoint.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Pages:  NewPagesHandler(s),
		Coin:   NewCoinHandler(s),
		Health: NewHealthHandler(s),
	}
}
