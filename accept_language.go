package lingo

import "golang.org/x/text/language"

// MatchAcceptLanguage parses an Accept-Language header and returns the most
// applicable language from the available list, honoring quality values and
// base-language matches ("en" serves "en-US"). Returns the first available
// language when the header is empty or nothing matches, and the empty string
// when no languages are available.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	_, i, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[index[i]]
}
