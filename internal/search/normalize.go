// Package search matches directory records against free-text queries.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinQueryLength is the shortest query, in runes after trimming, that is evaluated.
const MinQueryLength = 2

// Normalize folds s for comparison: accents removed, lower case, runs of
// whitespace collapsed.
func Normalize(s string) string {
	// transform.Chain keeps state, so build it per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Valid reports whether query is long enough to be evaluated.
func Valid(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinQueryLength
}

// Match reports whether any field contains query, ignoring case and accents.
// Queries shorter than MinQueryLength never match.
func Match(fields []string, query string) bool {
	if !Valid(query) {
		return false
	}
	return MatchNormalized(fields, Normalize(query))
}

// MatchNormalized is Match for a query already passed through Normalize.
func MatchNormalized(fields []string, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return false
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Normalize(f), normalizedQuery) {
			return true
		}
	}
	return false
}
