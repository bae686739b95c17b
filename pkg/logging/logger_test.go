package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.False(t, cfg.Pretty)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{LogLevel("WARNING"), zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{LogLevel("bogus"), zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestSetup_WritesToConfiguredOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelInfo, Output: buf})

	logger.Info().Str("endpoint", "/services/data/v59.0/query").Msg("request complete")

	out := buf.String()
	assert.Contains(t, out, "request complete")
	assert.Contains(t, out, `"endpoint":"/services/data/v59.0/query"`)
}

func TestSetup_LevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelError, Output: buf})

	logger.Info().Msg("suppressed")
	assert.Empty(t, buf.String())

	logger.Error().Msg("surfaced")
	assert.Contains(t, buf.String(), "surfaced")
}

func TestNewLogger_AttachesComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelInfo, Output: buf})

	logger := NewLogger("sforce-client")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"sforce-client"`)
}
