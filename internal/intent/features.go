package intent

import (
	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"

	"github.com/vintrastudio/votebot/internal/textnorm"
)

// stemLanguage is the snowball stemmer variant matching the canonical
// working language.
const stemLanguage = "norwegian"

// extractTerms turns raw text into the bag-of-terms feature set for the
// statistical classifier: tokenize, normalize, stem, then emit unigrams
// plus adjacent-token bigrams. Bigrams let the model separate intents
// that share vocabulary ("hvor mange jobber" vs "hvor mye koster").
func extractTerms(text string) []string {
	var stems []string
	for _, tok := range tokenizeForModel(text) {
		n := textnorm.Normalize(tok)
		if n == "" {
			continue
		}
		stem, err := snowball.Stem(n, stemLanguage, true)
		if err != nil || stem == "" {
			stem = n
		}
		stems = append(stems, stem)
	}

	terms := make([]string, 0, len(stems)*2)
	terms = append(terms, stems...)
	for i := 0; i+1 < len(stems); i++ {
		terms = append(terms, stems[i]+" "+stems[i+1])
	}
	return terms
}

// tokenizeForModel uses the prose tokenizer with segmentation, tagging,
// and entity extraction disabled; only the token stream is needed. If the
// tokenizer rejects the input, the plain normalizing tokenizer stands in.
func tokenizeForModel(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return textnorm.Tokenize(text)
	}

	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}
