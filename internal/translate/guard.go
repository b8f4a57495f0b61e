package translate

import (
	"regexp"
	"strings"
)

// Guard shields domain proper nouns from the translator by swapping them
// for opaque placeholders before the call and restoring the original
// spelling afterwards. Without it, services happily translate product
// names into common nouns.
type Guard struct {
	// ordered (pattern, placeholder, original) triples; multi-word nouns
	// must be listed before their single-word prefixes to win
	rules []guardRule
}

type guardRule struct {
	pattern     *regexp.Regexp
	placeholder string
	original    string
}

// NewGuard builds a Guard for the given proper nouns. Matching is
// whole-word and case-insensitive.
func NewGuard(words []string) *Guard {
	// longest first, so "vintra studio" is protected as one unit rather
	// than leaving "studio" exposed after "vintra" is replaced
	ordered := make([]string, len(words))
	copy(ordered, words)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && len(ordered[j]) > len(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	g := &Guard{}
	for _, w := range ordered {
		if w == "" {
			continue
		}
		placeholder := "__" + strings.ToUpper(strings.ReplaceAll(w, " ", "_")) + "__"
		g.rules = append(g.rules, guardRule{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`),
			placeholder: placeholder,
			original:    w,
		})
	}
	return g
}

// Protect replaces each protected noun with its placeholder.
func (g *Guard) Protect(text string) string {
	for _, r := range g.rules {
		text = r.pattern.ReplaceAllString(text, r.placeholder)
	}
	return text
}

// Restore substitutes the original spelling back for every placeholder.
// Restoration is literal string replacement, so it also works on text the
// translator mangled around the placeholders.
func (g *Guard) Restore(text string) string {
	for _, r := range g.rules {
		text = strings.ReplaceAll(text, r.placeholder, r.original)
	}
	return text
}
