// Package logging builds the log/slog loggers used by the lvwords CLI.
// Diagnostics go to stderr so stdout carries only results.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelSilent is above every standard level and suppresses all records.
const LevelSilent = slog.Level(100)

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscard creates a logger that drops all output.
func NewDiscard() *slog.Logger {
	return New(io.Discard, LevelSilent)
}

// LevelFromString converts a level name to a slog.Level.
// Supports debug, info, warn/warning, error and silent (case-insensitive);
// anything else reports false.
func LevelFromString(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "silent", "off":
		return LevelSilent, true
	default:
		return slog.LevelInfo, false
	}
}

// LevelFromVerbosity converts CLI verbosity flags to a slog.Level.
//   - quiet=true: silent
//   - verbosity=0: warn (CLI default)
//   - verbosity=1: info
//   - verbosity>=2: debug
func LevelFromVerbosity(verbosity int, quiet bool) slog.Level {
	if quiet {
		return LevelSilent
	}
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Resolve picks the effective level: an explicit level name wins over
// verbosity flags. An unknown name falls back to the verbosity level.
func Resolve(name string, verbosity int, quiet bool) slog.Level {
	if quiet {
		return LevelSilent
	}
	if name != "" {
		if lvl, ok := LevelFromString(name); ok {
			return lvl
		}
	}

	return LevelFromVerbosity(verbosity, quiet)
}
