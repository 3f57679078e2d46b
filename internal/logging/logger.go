// Package logging builds the loggers used by the mdreport CLI.
package logging

import (
	"log/slog"
	"os"
)

// New creates the CLI progress logger. It writes to stderr so stdout and
// the produced artifacts stay clean for redirection.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
