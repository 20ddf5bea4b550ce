package lingo

import (
	"fmt"
	"strings"
)

// Placeholder is the marker that stands in for one substitution slot, both in
// canonical keys and in translated templates.
const Placeholder = "%%"

// Key derives the canonical lookup key for a template: its literal segments
// joined with the Placeholder marker. The result depends only on the literal
// text, never on substitution values, so two call sites with the same copy
// and different values share one catalog row.
func Key(segments ...string) string {
	if len(segments) == 1 {
		return segments[0]
	}
	return strings.Join(segments, Placeholder)
}

// splitTemplate splits a translated template back into literal fragments,
// one more fragment than the template has placeholders.
func splitTemplate(tpl string) []string {
	return strings.Split(tpl, Placeholder)
}

// reassemble interleaves literal fragments with stringified substitution
// values: fragment 0, value 0, fragment 1, value 1, ... Extra values beyond
// the fragment count are dropped; callers validate counts before relying on
// the output.
func reassemble(fragments []string, values []any) string {
	if len(values) == 0 {
		if len(fragments) == 1 {
			return fragments[0]
		}
		return strings.Join(fragments, "")
	}

	var b strings.Builder
	for i, frag := range fragments {
		b.WriteString(frag)
		if i < len(values) {
			b.WriteString(fmt.Sprint(values[i]))
		}
	}
	return b.String()
}
