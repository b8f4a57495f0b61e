// Package textnorm canonicalizes raw message text before matching.
//
// Normalization lowercases, decomposes Unicode and strips combining marks,
// replaces everything outside a fixed allowed alphabet with spaces, and
// collapses whitespace. The allowed alphabet is ASCII letters and digits
// plus a fixed set of Latin diacritic letters; of those, the letters that
// decompose under NFD (å, ä, ö, ü, ñ, ç) have already lost their marks by
// the time the alphabet filter runs, so in practice only æ, ø and ß survive
// as non-ASCII. This matches the matching tables, which are stored in the
// same canonical form.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// allowedRune reports whether r may appear in normalized text.
func allowedRune(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case 'æ', 'ø', 'å', 'ä', 'ö', 'ü', 'ß', 'ñ', 'ç':
		return true
	}
	return false
}

// Normalize canonicalizes text for matching. It is total: it never fails,
// and empty or whitespace-only input yields the empty string. Normalize is
// idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	// decompose and drop combining marks
	s = norm.NFD.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)

	// everything outside the allowed alphabet becomes a space
	s = strings.Map(func(r rune) rune {
		if allowedRune(r) {
			return r
		}
		return ' '
	}, s)

	// collapse runs of whitespace and trim
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits normalized text on whitespace.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}

// emoji covers the pictographic blocks used by chat clients
// (Miscellaneous Symbols and Pictographs through Symbols and Pictographs
// Extended-A).
func isEmoji(r rune) bool {
	return r >= 0x1F300 && r <= 0x1FAFF
}

// IsEmojiOnly reports whether the raw text consists solely of pictographic
// runes once whitespace is removed. It must be checked on raw input:
// normalization strips emoji entirely.
func IsEmojiOnly(s string) bool {
	seen := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !isEmoji(r) {
			return false
		}
		seen = true
	}
	return seen
}

// HasEmoji reports whether the raw text contains at least one pictographic
// rune.
func HasEmoji(s string) bool {
	for _, r := range s {
		if isEmoji(r) {
			return true
		}
	}
	return false
}
