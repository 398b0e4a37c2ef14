// internal/logger/logger_test.go
package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "checkout", "warn")

	log.Info().Msg("dropped")
	log.Warn().Str("method", "home_delivery").Msg("geocode fallback")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "checkout", entry["service"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "home_delivery", entry["method"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_BadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "checkout", "shouty")

	log.Debug().Msg("dropped")
	log.Info().Msg("kept")

	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}
