package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger at the given level. Services and handlers
// take *slog.Logger so tests can pass slog.Default() or a discard handler.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
