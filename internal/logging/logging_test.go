package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvwords/internal/logging"
)

func TestLevelFromString(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"silent", logging.LevelSilent, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := logging.LevelFromString(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, logging.LevelFromVerbosity(0, false))
	assert.Equal(t, slog.LevelInfo, logging.LevelFromVerbosity(1, false))
	assert.Equal(t, slog.LevelDebug, logging.LevelFromVerbosity(3, false))
	assert.Equal(t, logging.LevelSilent, logging.LevelFromVerbosity(2, true))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, slog.LevelError, logging.Resolve("error", 2, false))
	assert.Equal(t, slog.LevelDebug, logging.Resolve("bogus", 2, false))
	assert.Equal(t, slog.LevelWarn, logging.Resolve("", 0, false))
	assert.Equal(t, logging.LevelSilent, logging.Resolve("debug", 0, true))
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown", "word", "listen")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "word=listen")
}

func TestNewDiscard(t *testing.T) {
	log := logging.NewDiscard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
