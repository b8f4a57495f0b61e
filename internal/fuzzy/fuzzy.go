// Package fuzzy implements approximate string matching: Levenshtein edit
// distance, length-scaled fuzzy containment, and vocabulary-based spelling
// correction.
//
// The match tolerance scales with keyword length: short keywords only admit
// distance 1 to suppress false positives, longer keywords tolerate more
// typos, capped by the caller's maximum. The correction thresholds are
// calibrated constants, not tunable defaults.
package fuzzy

import (
	"strings"

	"github.com/vintrastudio/votebot/internal/textnorm"
)

// Distance returns the Levenshtein edit distance between a and b, computed
// over runes with a single reused row (O(len(a)·len(b)) time, O(len(b))
// space). Callers are expected to normalize inputs first; Distance itself
// compares exactly what it is given.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		prev := row[0] // row[i-1][j-1] before overwrite
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cur := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = minInt(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return row[len(rb)]
}

// allowedDist is the length-scaled tolerance for a keyword: at least 1,
// growing with keyword length, capped at maxDist.
func allowedDist(keyword string, maxDist int) int {
	allowed := len([]rune(keyword)) / 3
	if allowed < 1 {
		allowed = 1
	}
	if allowed > maxDist {
		allowed = maxDist
	}
	return allowed
}

// Includes reports whether text contains any of the keywords, either as a
// normalized substring or as a token within the keyword's length-scaled
// edit distance.
func Includes(text string, keywords []string, maxDist int) bool {
	t := textnorm.Normalize(text)
	tokens := strings.Fields(t)
	for _, kw := range keywords {
		k := textnorm.Normalize(kw)
		if k == "" {
			continue
		}
		if strings.Contains(t, k) {
			return true
		}
		allowed := allowedDist(k, maxDist)
		for _, tok := range tokens {
			// a single letter is within distance 1 of every short keyword;
			// "i" must not read as a greeting
			if len([]rune(tok)) < 2 {
				continue
			}
			if Distance(tok, k) <= allowed {
				return true
			}
		}
	}
	return false
}

// TokenMatch reports whether two single words match within the candidate's
// length-scaled tolerance. Both sides are normalized before comparison.
func TokenMatch(tok, cand string, maxDist int) bool {
	tok = textnorm.Normalize(tok)
	cand = textnorm.Normalize(cand)
	if tok == "" || cand == "" {
		return false
	}
	if tok == cand {
		return true
	}
	return Distance(tok, cand) <= allowedDist(cand, maxDist)
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
