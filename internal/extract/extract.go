// Package extract pulls fields out of portal pages by literal marker
// positions. It does not parse HTML; a marker change degrades results to
// empty values instead of failing.
package extract

import (
	"strings"
	"unicode/utf8"
)

// NthBetween returns the n-th (1-based) span that follows start and ends at
// the next end. Spans never overlap: the search for span k+1 resumes after the
// end marker of span k. It reports false when fewer than n complete spans
// exist or n < 1.
func NthBetween(text, start, end string, n int) (string, bool) {
	if n < 1 || start == "" || end == "" {
		return "", false
	}
	pos := 0
	for i := 1; i <= n; i++ {
		s := strings.Index(text[pos:], start)
		if s < 0 {
			return "", false
		}
		from := pos + s + len(start)
		e := strings.Index(text[from:], end)
		if e < 0 {
			return "", false
		}
		to := from + e
		if i == n {
			return text[from:to], true
		}
		pos = to + len(end)
	}
	return "", false
}

// SuffixBetween locates the first span between start and end and returns its
// last three characters, or the whole span when it is shorter.
func SuffixBetween(text, start, end string) (string, bool) {
	span, ok := NthBetween(text, start, end, 1)
	if !ok {
		return "", false
	}
	cut := len(span)
	for i := 0; i < 3 && cut > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(span[:cut])
		cut -= size
	}
	return span[cut:], true
}

// StripArtifacts removes every occurrence of token from text.
func StripArtifacts(text, token string) string {
	if token == "" {
		return text
	}
	return strings.ReplaceAll(text, token, "")
}
