package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fairflip/coinflip/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputTagsEveryLine(t *testing.T) {
	cfg := config.Default()
	cfg.Primary.Env = "production"

	var buf bytes.Buffer
	log := NewWithOutput(cfg, &buf)

	log.Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "coinflip", line["service"])
	assert.Equal(t, "production", line["env"])
	assert.Equal(t, "hello", line["message"])
	assert.NotEmpty(t, line["time"])
}

func TestDevelopmentUsesConsoleWriter(t *testing.T) {
	cfg := config.Default() // development

	var buf bytes.Buffer
	log := NewWithOutput(cfg, &buf)

	log.Info().Msg("hello")

	// Console output is for humans, not JSON.
	assert.Error(t, json.Unmarshal(buf.Bytes(), &map[string]any{}))
	assert.Contains(t, buf.String(), "hello")
}
