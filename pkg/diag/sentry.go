package diag

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which records to send to Sentry.
	// Defaults to slog.LevelWarn, which covers all gap diagnostics.
	MinLevel slog.Level
}

// NewWithSentry creates a diagnostic logger that writes to both stdout and
// Sentry, so translation gaps surface in production monitoring. If DSN is
// empty, only stdout logging is enabled (graceful fallback for local dev).
func NewWithSentry(cfg SentryConfig) *slog.Logger {
	stdoutHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})

	// If no DSN, fall back to stdout only
	if cfg.DSN == "" {
		return slog.New(stdoutHandler)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: log to stdout if Sentry init fails
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(stdoutHandler)
	}

	// Errors create Issues; gap warnings are stored as logs for search.
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(stdoutHandler, sentryHandler))
}
