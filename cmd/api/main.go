// Command api runs the coinflip HTTP service.
//
// It wires the application at startup (config, logger, randomness
// generator, router), serves until interrupted, and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairflip/coinflip/internal/config"
	"github.com/fairflip/coinflip/internal/logger"
	"github.com/fairflip/coinflip/internal/router"
	"github.com/fairflip/coinflip/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; config failed before we could build one.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)

	s := server.New(cfg, log)
	s.SetupHTTPServer(router.New(s))

	// Serve in the background so main can block on shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
			os.Exit(1)
		}

		log.Info().Msg("server stopped")
	}
}
