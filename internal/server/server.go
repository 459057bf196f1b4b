// Package server defines the core Server struct that composes the app's
// main dependencies and owns the HTTP listener lifecycle.
//
// It holds:
//   - configuration
//   - the root logger
//   - the randomness generator (the only process-wide shared resource)
//   - an internal *http.Server used to listen and serve requests
//
// Requests share no mutable state beyond the generator, so the container
// carries no pools, clients, or locks.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fairflip/coinflip/internal/config"
	"github.com/fairflip/coinflip/internal/rng"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; that lives in httpServer and is
// configured in SetupHTTPServer and started in Start.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's root structured logger.
	Logger *zerolog.Logger

	// Flipper is the process-wide randomness generator. Safe for use from
	// concurrently in-flight requests.
	Flipper *rng.Generator

	httpServer *http.Server
}

// New constructs the application container. It does not start listening;
// that is done in SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config:  cfg,
		Logger:  logger,
		Flipper: rng.New(),
	}
}

// SetupHTTPServer configures the internal net/http server around the given
// handler (the Echo router). Timeouts come from config and protect against
// slow clients.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops or errors.
// SetupHTTPServer must have been called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server: it stops accepting new connections
// and waits for in-flight requests until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutting down HTTP server")
	}
	return nil
}
