// Package handler is the HTTP layer: the entry point for request handling
// after the router.
//
// Handlers read validated input from context, produce a response body, and
// return errors for the global error handler to format. It also declares
// the route path constants so the router and the landing page links share a
// single source of truth.
package handler

import (
	"github.com/fairflip/coinflip/internal/server"
)

// Route paths. The landing page builds its hyperlinks from these same
// constants, so a path change propagates everywhere at once.
const (
	PathRoot   = "/"
	PathIndex  = "/index"
	PathCoin   = "/rng/coin"
	PathStatus = "/status"

	// ParamFlips is the name of the flip-count path parameter.
	ParamFlips = "flips"

	// PathCoinFlips is the parametrized multi-flip route.
	PathCoinFlips = PathCoin + "/:" + ParamFlips
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger, and
// the randomness generator via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning the struct by value is
// fine: it only contains a pointer field, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
