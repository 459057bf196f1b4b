// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns: request IDs,
// request-scoped logging, CORS, panic recovery, secure headers, the global
// error handler, and the flip-count validation stage for the multi-flip
// route.
package middleware

import (
	"github.com/fairflip/coinflip/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup receives one wired object instead of many.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer

	// FlipCount validates the flips path parameter before the multi-flip
	// handler runs.
	FlipCount *FlipCountMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		FlipCount:       NewFlipCountMiddleware(s),
	}
}
