// Package logger configures the application's structured logging.
//
// It uses zerolog: human-friendly console output in development, plain
// JSON lines elsewhere. Request-scoped child loggers are derived from the
// logger built here by the middleware package.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/fairflip/coinflip/internal/config"
	"github.com/rs/zerolog"
)

// New constructs the application's root logger from the runtime config.
//
// Fields attached here (service, env) appear on every log line, including
// the per-request records emitted by the request logger middleware.
func New(cfg *config.Config) *zerolog.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit sink. Tests use it to intercept
// log records in a buffer.
func NewWithOutput(cfg *config.Config, out io.Writer) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = out
	if cfg.Primary.Env == "development" {
		w = zerolog.ConsoleWriter{Out: out}
	}

	l := zerolog.New(w).With().
		Timestamp().
		Str("service", "coinflip").
		Str("env", cfg.Primary.Env).
		Logger()

	return &l
}
