package fuzzy

import (
	"log/slog"
	"strings"

	"github.com/vintrastudio/votebot/internal/textnorm"
)

// Corrector replaces misspelled tokens with their nearest vocabulary entry.
// The vocabulary order is fixed at construction: when two entries are
// equally close, the earlier one wins, so the same input always corrects
// the same way.
type Corrector struct {
	vocab []string
}

// NewCorrector builds a Corrector over an ordered vocabulary. Entries are
// normalized once up front.
func NewCorrector(vocab []string) *Corrector {
	normed := make([]string, 0, len(vocab))
	for _, w := range vocab {
		if n := textnorm.Normalize(w); n != "" {
			normed = append(normed, n)
		}
	}
	return &Corrector{vocab: normed}
}

// Correct normalizes text and replaces each token with its nearest
// vocabulary entry when the distance is small enough for the token's
// length: at most 2 for tokens of six or more runes, at most 1 for four or
// five runes. Shorter tokens are never touched — correcting them produces
// more damage than it repairs.
func (c *Corrector) Correct(text string) string {
	tokens := textnorm.Tokenize(text)
	if len(tokens) == 0 {
		return ""
	}

	corrected := make([]string, len(tokens))
	for i, tok := range tokens {
		corrected[i] = tok

		n := len([]rune(tok))
		if n < 4 {
			continue
		}

		best, bestDist := tok, n+1
		for _, cand := range c.vocab {
			if d := Distance(tok, cand); d < bestDist {
				best, bestDist = cand, d
			}
		}

		if best == tok {
			continue
		}
		if (n >= 6 && bestDist <= 2) || (n >= 4 && n < 6 && bestDist <= 1) {
			slog.Debug("Autocorrected token", "from", tok, "to", best, "distance", bestDist)
			corrected[i] = best
		}
	}
	return strings.Join(corrected, " ")
}
