package diag

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger for translation-gap diagnostics.
// Gap records are emitted at Warn level, so lower levels are filtered out.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// Discard creates a logger that drops all diagnostics.
// Use it to silence gap warnings in tests or one-off tools.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
