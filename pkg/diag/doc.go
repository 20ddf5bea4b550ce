// Package diag provides diagnostic sinks for translation-gap warnings.
//
// A lingo.Catalog emits advisory slog records whenever a message cannot be
// translated. This package supplies ready-made destinations for those
// records: a JSON stdout logger, a Sentry-backed logger for production
// monitoring, a discard logger for tests, and a Collector that records the
// distinct untranslated keys seen at runtime.
//
// # Basic Usage
//
//	catalog, err := lingo.New(
//		lingo.WithKeyLanguage("en"),
//		lingo.WithLogger(diag.New()),
//	)
//
// # Collecting Untranslated Strings
//
// Wrap any handler with a Collector to harvest the canonical keys that still
// need translation, e.g. after exercising an app or a test suite:
//
//	collector := diag.NewCollector(nil)
//	catalog, _ := lingo.New(lingo.WithLogger(slog.New(collector)))
//	// ... run the app ...
//	for _, key := range collector.Keys() {
//		fmt.Println(key)
//	}
//
// # Sentry Integration
//
//	log := diag.NewWithSentry(diag.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
//
// If the DSN is empty or initialization fails, the logger gracefully falls
// back to stdout only, so the same code path works in development.
package diag
