package lingo

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DetectSystemLanguage returns the primary language subtag of the process
// locale ("en-US" becomes "en"), checking LANGUAGE, LC_ALL, LC_MESSAGES and
// LANG in that order. Falls back to "en" when nothing parses.
func DetectSystemLanguage() string {
	for _, name := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			if lang, ok := parseLocale(v); ok {
				return lang
			}
		}
	}
	return "en"
}

// parseLocale reduces a POSIX or BCP 47 locale string to its primary subtag.
func parseLocale(v string) (string, bool) {
	// LANGUAGE may hold a colon-separated priority list; take the head.
	v, _, _ = strings.Cut(v, ":")
	// Strip codeset and modifier suffixes ("en_US.UTF-8@euro").
	v, _, _ = strings.Cut(v, ".")
	v, _, _ = strings.Cut(v, "@")
	v = strings.ReplaceAll(strings.TrimSpace(v), "_", "-")

	if v == "" || strings.EqualFold(v, "C") || strings.EqualFold(v, "POSIX") {
		return "", false
	}

	tag, err := language.Parse(v)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}
