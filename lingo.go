package lingo

import (
	"fmt"
	"log/slog"
	"sort"
)

// Entry maps a language tag to a translated template for one canonical key.
// Translated templates carry the same number of Placeholder markers as the
// original template has substitution slots.
type Entry map[string]string

// Catalog holds translations keyed by the source-language text itself.
// It is immutable after creation, making it safe for concurrent use.
type Catalog struct {
	// Canonical key -> language tag -> translated template.
	entries map[string]Entry

	// Optional handler called alongside every gap diagnostic.
	onMissing func(Missing)

	// Diagnostic sink for gap warnings.
	log *slog.Logger

	// Language whose literal text doubles as the lookup key.
	// When the active language equals it, no lookup happens at all.
	keyLang string

	// Active language used when a resolver is requested without one.
	defaultLang string

	// Pre-computed list of languages the catalog can serve.
	languages []string
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog with the given options. All configuration happens
// during construction, making the instance immutable and thread-safe from
// creation. When no default language is configured, the system language is
// detected once here and fixed for the catalog's lifetime.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry)}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.defaultLang == "" {
		c.defaultLang = DetectSystemLanguage()
	}
	if c.log == nil {
		c.log = slog.Default()
	}

	c.languages = c.buildLanguagesList()

	return c, nil
}

// WithKeyLanguage designates the language whose text is the canonical key.
// Resolving for that language short-circuits to the original text, bypassing
// the table and all diagnostics.
func WithKeyLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.keyLang = lang
		return nil
	}
}

// WithDefaultLanguage sets the active language used when none is supplied.
// Without this option the system language is detected at construction.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.defaultLang = lang
		return nil
	}
}

// WithEntries merges a message table into the catalog. Repeated options and
// loaders merge per key and per language, later values winning. The maps are
// copied, so callers may mutate theirs afterwards.
func WithEntries(entries map[string]Entry) Option {
	return func(c *Catalog) error {
		for key, entry := range entries {
			for lang, tpl := range entry {
				if lang == "" {
					return ErrEmptyLanguage
				}
				c.add(key, lang, tpl)
			}
		}
		return nil
	}
}

// WithEntry merges a single table row.
func WithEntry(key string, translations Entry) Option {
	return WithEntries(map[string]Entry{key: translations})
}

// WithLogger sets the diagnostic sink for gap warnings.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) error {
		c.log = log
		return nil
	}
}

// WithMissingHandler sets a handler called for every gap diagnostic, in
// addition to the log record. Useful for counting or collecting untranslated
// strings during development.
func WithMissingHandler(handler func(Missing)) Option {
	return func(c *Catalog) error {
		c.onMissing = handler
		return nil
	}
}

// add stores one translated template, creating the row if needed.
func (c *Catalog) add(key, lang, tpl string) {
	entry, ok := c.entries[key]
	if !ok {
		entry = make(Entry)
		c.entries[key] = entry
	}
	entry[lang] = tpl
}

// Resolver returns a bound resolver for the given active language.
// An empty language binds the catalog's default language. The resolver
// captures the language at call time; request a fresh one after a language
// change.
func (c *Catalog) Resolver(lang string) *Resolver {
	if lang == "" {
		lang = c.defaultLang
	}
	return &Resolver{catalog: c, lang: lang}
}

// DefaultLanguage returns the active language used when none is supplied.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// KeyLanguage returns the designated key language, or empty if unset.
func (c *Catalog) KeyLanguage() string {
	return c.keyLang
}

// Len returns the number of canonical keys in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Languages returns the languages the catalog can serve: the default
// language first, then every language appearing in the table (plus the key
// language) in alphabetical order.
func (c *Catalog) Languages() []string {
	return c.languages
}

func (c *Catalog) buildLanguagesList() []string {
	langSet := make(map[string]bool)
	for _, entry := range c.entries {
		for lang := range entry {
			langSet[lang] = true
		}
	}
	if c.keyLang != "" {
		langSet[c.keyLang] = true
	}
	delete(langSet, c.defaultLang)

	languages := make([]string, 0, len(langSet)+1)
	languages = append(languages, c.defaultLang)

	if len(langSet) > 0 {
		others := make([]string, 0, len(langSet))
		for lang := range langSet {
			others = append(others, lang)
		}
		sort.Strings(others)
		languages = append(languages, others...)
	}

	return languages
}
