package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output. Service tests
// inject it where a constructor wants a *slog.Logger.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
