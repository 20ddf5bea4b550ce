package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/middlewares"
	"github.com/dmitrymomot/lingo/pkg/diag"
)

//go:embed translations
var translationsFS embed.FS

func main() {
	subFS, err := fs.Sub(translationsFS, "translations")
	if err != nil {
		log.Fatal(err)
	}

	// Collect untranslated keys while the demo runs.
	collector := diag.NewCollector(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	catalog, err := lingo.New(
		lingo.WithKeyLanguage("en"),
		lingo.WithDefaultLanguage("en"),
		lingo.WithYAMLDir(subFS),
		lingo.WithLogger(slog.New(collector)),
	)
	if err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(middlewares.Language(catalog, middlewares.WithQueryParam("lang")))

	// Try: curl 'localhost:8080/hello/Ana?lang=es'
	r.Get("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		tr := lingo.FromContext(r.Context())
		fmt.Fprintln(w, tr.T([]string{"Hello ", "!"}, chi.URLParam(r, "name")))
	})

	// Try: curl -H 'Accept-Language: de,en;q=0.5' localhost:8080/inbox/7
	r.Get("/inbox/{count}", func(w http.ResponseWriter, r *http.Request) {
		tr := lingo.FromContext(r.Context())
		fmt.Fprintln(w, tr.T([]string{"You have ", " unread messages"}, chi.URLParam(r, "count")))
	})

	// Keys that were requested but never translated.
	r.Get("/untranslated", func(w http.ResponseWriter, r *http.Request) {
		for _, key := range collector.Keys() {
			fmt.Fprintln(w, key)
		}
	})

	addr := getEnv("ADDRESS", ":8080")
	log.Printf("listening on %s (languages: %v)", addr, catalog.Languages())
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
