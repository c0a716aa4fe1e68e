// Package textnorm normalizes free text for whole-word matching.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lower-cases s and collapses it to single-space separated words
// with a leading and trailing space, so Contains(" word ") matches whole
// words only. Apostrophes are dropped so "don't" and "dont" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.WriteByte(' ')
	space := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’':
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		default:
			if !space {
				b.WriteByte(' ')
				space = true
			}
		}
	}
	if !space {
		b.WriteByte(' ')
	}
	return b.String()
}

// ContainsPhrase reports whether normalized text contains phrase as whole words.
// phrase must itself be normalized.
func ContainsPhrase(normalized, phrase string) bool {
	if strings.TrimSpace(phrase) == "" {
		return false
	}
	return strings.Contains(normalized, phrase)
}

// Words returns the words of s after normalization.
func Words(s string) []string {
	return strings.Fields(Normalize(s))
}
