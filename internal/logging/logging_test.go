package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"complexity-analyzer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	logger.Warn("analysis failed", "algorithm", "bubble_sort")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "analysis failed", line["msg"])
	assert.Equal(t, "bubble_sort", line["algorithm"])
}

func TestNew_TextWithoutColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "debug", Format: "text"}, &buf)

	logger.Debug("measured", "n", 20)
	out := buf.String()
	assert.Contains(t, out, "measured")
	assert.Contains(t, out, "n=20")
	assert.NotContains(t, out, "\x1b[")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
