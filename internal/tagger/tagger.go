// Package tagger maps message tokens and adjacent-token bigrams to the
// closed set of semantic tags via the static keyword table, and detects
// question form.
package tagger

import (
	"strings"

	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/textnorm"
)

// Result is the tagger's view of one message.
type Result struct {
	Tags       map[botdata.Tag]bool
	Tokens     []string
	IsQuestion bool
}

// Has reports whether the message carried the given tag.
func (r Result) Has(tag botdata.Tag) bool {
	return r.Tags[tag]
}

// HasAny reports whether the message carried at least one of the tags.
func (r Result) HasAny(tags ...botdata.Tag) bool {
	for _, tag := range tags {
		if r.Tags[tag] {
			return true
		}
	}
	return false
}

// Tagger performs keyword tagging against one immutable content set.
type Tagger struct {
	keywordTags   map[string]botdata.Tag
	questionWords map[string]bool
}

// New builds a Tagger over the content's keyword table and interrogative
// set. The content is shared read-only; the Tagger never mutates it.
func New(content *botdata.Content) *Tagger {
	qw := make(map[string]bool, len(content.QuestionWords))
	for _, w := range content.QuestionWords {
		qw[w] = true
	}
	return &Tagger{keywordTags: content.KeywordTags, questionWords: qw}
}

// Extract normalizes and tokenizes text, unions the tags of every token and
// adjacent-token bigram, and flags question form. A message reads as a
// question if it contains a literal question mark or any canonical-language
// interrogative; the question mark is checked on the raw text, since
// normalization strips punctuation.
func (t *Tagger) Extract(text string) Result {
	tokens := textnorm.Tokenize(text)

	tags := make(map[botdata.Tag]bool)
	for i, tok := range tokens {
		if tag, ok := t.keywordTags[tok]; ok {
			tags[tag] = true
		}
		if i+1 < len(tokens) {
			if tag, ok := t.keywordTags[tok+" "+tokens[i+1]]; ok {
				tags[tag] = true
			}
		}
	}

	isQuestion := strings.Contains(text, "?")
	if !isQuestion {
		for _, tok := range tokens {
			if t.questionWords[tok] {
				isQuestion = true
				break
			}
		}
	}

	return Result{Tags: tags, Tokens: tokens, IsQuestion: isQuestion}
}
