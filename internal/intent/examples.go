package intent

import (
	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/fuzzy"
	"github.com/vintrastudio/votebot/internal/textnorm"
)

// exampleThreshold is the minimum phrase-match score for the example
// matcher to claim a turn. Below it the cascade falls through to the
// statistical and deterministic stages.
const exampleThreshold = 0.6

// exampleMatcher scores a message against the training corpus by fuzzy
// token overlap. It pre-tokenizes every example once at construction.
type exampleMatcher struct {
	examples []scoredExample
}

type scoredExample struct {
	tokens []string
	intent Intent
}

func newExampleMatcher(examples []botdata.Example) *exampleMatcher {
	m := &exampleMatcher{}
	for _, ex := range examples {
		// off-topic examples train the statistical model only; returning
		// off_topic from here would preempt the tag rules that still get
		// a say further down the cascade
		if Intent(ex.Intent) == OffTopic {
			continue
		}
		tokens := textnorm.Tokenize(ex.Text)
		if len(tokens) == 0 {
			continue
		}
		m.examples = append(m.examples, scoredExample{tokens: tokens, intent: Intent(ex.Intent)})
	}
	return m
}

// Best returns the highest-scoring example's intent and score for the
// given message tokens. Ties keep the earlier example, so corpus order is
// part of the contract.
func (m *exampleMatcher) Best(tokens []string) (Intent, float64) {
	var best Intent
	bestScore := 0.0
	for _, ex := range m.examples {
		score := phraseMatchScore(tokens, ex.tokens)
		if score > bestScore {
			bestScore = score
			best = ex.intent
		}
	}
	return best, bestScore
}

// phraseMatchScore is the fraction of pattern tokens that fuzzy-match at
// least one message token. Word order is deliberately ignored.
func phraseMatchScore(tokens, pattern []string) float64 {
	if len(pattern) == 0 {
		return 0
	}
	matched := 0
	for _, p := range pattern {
		for _, tok := range tokens {
			if fuzzy.TokenMatch(tok, p, 2) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(pattern))
}
