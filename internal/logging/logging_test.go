package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("artifact_resolution_failed", "reference_type", "deck")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "artifact_resolution_failed")
	assert.Contains(t, out, "reference_type=deck")
}

func TestNew_NilWriterDiscards(t *testing.T) {
	assert.NotPanics(t, func() { New(nil, slog.LevelDebug).Error("nothing") })
}
