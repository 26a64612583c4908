package i18n

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage negotiates the Accept-Language header against the
// available languages, honouring quality values and regional variants
// ("de-AT" matches "de"). Malformed entries are skipped. It reports false
// when no entry is usable or none of the requested languages is available.
//
// Example header: "fr-FR,de;q=0.8,en;q=0.5"
// Available: ["en", "de"]
// Returns: "de", true
func MatchAcceptLanguage(header string, available []string) (string, bool) {
	if header == "" || len(available) == 0 {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired := parseAcceptLanguage(header)
	if len(desired) == 0 {
		return "", false
	}

	supported := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for n, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		index = append(index, n)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return "", false
	}

	return available[index[idx]], true
}

// parseAcceptLanguage returns the header's tags ordered by quality. When the
// header as a whole does not parse, each entry is parsed on its own and the
// malformed ones are dropped.
func parseAcceptLanguage(header string) []language.Tag {
	if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
		return tags
	}

	type weighted struct {
		tag language.Tag
		q   float32
	}
	var entries []weighted
	for entry := range strings.SplitSeq(header, ",") {
		tags, qs, err := language.ParseAcceptLanguage(entry)
		if err != nil || len(tags) == 0 {
			continue
		}
		entries = append(entries, weighted{tags[0], qs[0]})
	}
	slices.SortStableFunc(entries, func(a, b weighted) int {
		return cmp.Compare(b.q, a.q)
	})

	tags := make([]language.Tag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags
}
