package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "hydrate",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"view": "client", "phases": 3},
	})
	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "use_case=hydrate")
	assert.Contains(t, line, "duration_ms=12")
	assert.Less(t, strings.Index(line, "phases=3"), strings.Index(line, "view=client"))

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import_plan", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestObserve_ReportsOutcome(t *testing.T) {
	obs := &recordingObserver{}
	done := observe(context.Background(), obs, "create", map[string]any{"id": "x"})
	done(errors.New("duplicate"))

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.Equal(t, "create", e.Name)
	assert.False(t, e.Success)
	assert.EqualError(t, e.Err, "duplicate")
	assert.False(t, e.StartedAt.IsZero())
}
