package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/lingo"
)

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	// Languages a request may select. Defaults to catalog.Languages().
	Languages []string
	// CookieName holds an explicit language choice. Defaults to "lang".
	CookieName string
	// QueryParam optionally overrides cookie and header (e.g. "lang").
	// Empty disables query lookup.
	QueryParam string
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithLanguages sets the languages a request may select.
func WithLanguages(langs ...string) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Languages = langs
	}
}

// WithCookieName sets the cookie consulted for an explicit language choice.
func WithCookieName(name string) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.CookieName = name
	}
}

// WithQueryParam enables a query parameter override for the language.
func WithQueryParam(name string) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.QueryParam = name
	}
}

// Language returns middleware that resolves the request language and binds a
// resolver for it into the request context, where lingo.FromContext picks it
// up. Resolution order: query parameter (if configured), cookie,
// Accept-Language header, catalog default.
func Language(catalog *lingo.Catalog, opts ...LanguageOption) func(http.Handler) http.Handler {
	cfg := &LanguageConfig{CookieName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = catalog.Languages()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLanguage(cfg, r)
			ctx := catalog.NewContext(r.Context(), lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveLanguage returns the request's language, or empty for the catalog
// default.
func resolveLanguage(cfg *LanguageConfig, r *http.Request) string {
	if cfg.QueryParam != "" {
		if lang := r.URL.Query().Get(cfg.QueryParam); lang != "" {
			return lang
		}
	}

	if cfg.CookieName != "" {
		if ck, err := r.Cookie(cfg.CookieName); err == nil && ck.Value != "" {
			return ck.Value
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		return lingo.MatchAcceptLanguage(header, cfg.Languages)
	}

	return ""
}
