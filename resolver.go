package lingo

import (
	"fmt"
	"log/slog"
)

// MissingReason classifies a gap diagnostic.
type MissingReason int

const (
	// ReasonMissingEntry means the canonical key has no row in the catalog.
	ReasonMissingEntry MissingReason = iota
	// ReasonMissingTranslation means the row exists but lacks the active language.
	ReasonMissingTranslation
	// ReasonPlaceholderMismatch means the translated template's placeholder
	// count differs from the call's substitution count.
	ReasonPlaceholderMismatch
)

// Missing describes one translation gap observed during resolution.
type Missing struct {
	Key    string
	Lang   string
	Reason MissingReason
}

// Resolver is a bound resolver: a catalog fixed to one active language.
// A zero-catalog resolver (as returned by FromContext without a binding)
// passes the original text through unchanged.
type Resolver struct {
	catalog *Catalog
	lang    string
}

// T resolves one template. segments are the N+1 raw literal fragments of a
// parameterized message, values the N substitution values in template order.
// It always returns a display string: every gap degrades to the original
// text with an advisory diagnostic, never an error.
func (r *Resolver) T(segments []string, values ...any) string {
	if r.catalog == nil {
		return reassemble(segments, values)
	}
	return r.catalog.translate(r.lang, segments, values)
}

// Language returns the resolver's bound active language.
func (r *Resolver) Language() string {
	return r.lang
}

func (c *Catalog) translate(lang string, segments []string, values []any) string {
	// The key language's own text is authoritative: no lookup, no
	// diagnostics, even when the table carries a conflicting row.
	if c.keyLang != "" && lang == c.keyLang {
		return reassemble(segments, values)
	}

	key := Key(segments...)

	entry, ok := c.entries[key]
	if !ok {
		c.report(Missing{Key: key, Lang: lang, Reason: ReasonMissingEntry},
			fmt.Sprintf("No i18n entries for %q", key))
		return reassemble(segments, values)
	}

	tpl, ok := entry[lang]
	if !ok {
		c.report(Missing{Key: key, Lang: lang, Reason: ReasonMissingTranslation},
			fmt.Sprintf("No %s translation for %q", lang, key))
		return reassemble(segments, values)
	}

	fragments := splitTemplate(tpl)
	if len(fragments) != len(values)+1 {
		c.report(Missing{Key: key, Lang: lang, Reason: ReasonPlaceholderMismatch},
			fmt.Sprintf("Mismatched placeholders in %s translation for %q", lang, key))
		return reassemble(segments, values)
	}

	return reassemble(fragments, values)
}

func (c *Catalog) report(m Missing, msg string) {
	c.log.Warn(msg, slog.String("key", m.Key), slog.String("lang", m.Lang))
	if c.onMissing != nil {
		c.onMissing(m)
	}
}
