// Package config manages environment variables.
//
// It loads `COINFLIP_`-prefixed env vars (optionally from a `.env` file),
// overlays them on built-in defaults, maps them into structured Go types,
// and validates the result so the app fails fast on bad config.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the process
	// environment before anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// envPrefix scopes which environment variables belong to this service.
// COINFLIP_SERVER_PORT -> server.port -> Config.Server.Port.
const envPrefix = "COINFLIP_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags map env-derived keys onto fields; the
// `validate:"..."` tags are enforced by go-playground/validator after
// loading.
type Config struct {
	Primary Primary      `koanf:"primary" validate:"required"`
	Server  ServerConfig `koanf:"server" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and to pick the log output format.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port         string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout  int      `koanf:"readtimeout" validate:"required,min=1"`
	WriteTimeout int      `koanf:"writetimeout" validate:"required,min=1"`
	IdleTimeout  int      `koanf:"idletimeout" validate:"required,min=1"`
	CORSOrigins  []string `koanf:"corsorigins" validate:"required,min=1"`
}

// Default returns the configuration used when no environment overrides are
// set. The service has no required external dependencies, so the zero
// configuration must always be runnable.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:         "3000",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
			CORSOrigins:  []string{"*"},
		},
	}
}

// Load builds the runtime configuration: defaults first, then env
// overrides, then validation.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Read env vars with the service prefix. The mapping function strips
	// the prefix, lowercases, and turns underscores into key-path dots:
	// COINFLIP_SERVER_PORT -> server.port.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading env variables")
	}

	// Unmarshal over the defaults; keys absent from the environment leave
	// the default values untouched.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}
