// Package botdata holds the static content the bot is configured with:
// the keyword tag map, the fuzzy-match word sets, the training corpus for
// intent matching, and the reply templates.
//
// All of this is reference data: it is loaded once at startup and shared
// read-only across every session. The compiled-in defaults describe the
// reference deployment (the game VOTE by Vintra Studio, Norwegian Bokmål as
// the working language); any section can be replaced wholesale from a YAML
// file via Load.
package botdata

import "sort"

// Tag is a semantic category attached to a message via keyword lookup.
type Tag string

// The closed set of tags the keyword map may produce.
const (
	TagDomain   Tag = "domain"
	TagGame     Tag = "game"
	TagGameplay Tag = "gameplay"
	TagPrice    Tag = "price"
	TagRelease  Tag = "release"
	TagTicket   Tag = "ticket"
	TagSupport  Tag = "support"
	TagWebDev   Tag = "web_dev"
)

// Example is one (phrase, intent label) pair of the training corpus.
type Example struct {
	Text   string `yaml:"text"`
	Intent string `yaml:"intent"`
}

// Content is the full static configuration of the bot. Fields mirror the
// sections of the reference deployment's content file.
type Content struct {
	// KeywordTags maps a normalized token or adjacent-token bigram to a Tag.
	KeywordTags map[string]Tag `yaml:"keyword_tags"`

	// QuestionWords are the canonical-language interrogatives. Classification
	// always runs on canonical-language text, so no other languages appear.
	QuestionWords []string `yaml:"question_words"`

	YesWords      []string `yaml:"yes_words"`
	NoWords       []string `yaml:"no_words"`
	ThankWords    []string `yaml:"thank_words"`
	GreetWords    []string `yaml:"greet_words"`
	FarewellWords []string `yaml:"farewell_words"`
	AdminWords    []string `yaml:"admin_words"`

	ReleaseWords         []string `yaml:"release_words"`
	ReleaseQuestionWords []string `yaml:"release_question_words"`
	GameplayWords        []string `yaml:"gameplay_words"`

	// DomainWords are the protected product proper nouns. They drive both
	// domain-relation checks and translation protection.
	DomainWords []string `yaml:"domain_words"`

	// AmbiguousGreetings are short greetings that carry no language signal;
	// the language selector refuses to switch languages on them.
	AmbiguousGreetings []string `yaml:"ambiguous_greetings"`

	// AutocorrectExtra are vocabulary words for spelling correction beyond
	// the keyword map, interrogatives, and domain nouns.
	AutocorrectExtra []string `yaml:"autocorrect_extra"`

	// Examples is the ordered training corpus for the example-based fuzzy
	// matcher and the statistical classifier.
	Examples []Example `yaml:"examples"`

	// Templates maps an intent label to one or more equivalent reply
	// phrasings. The "fallback" entry answers unmapped intents.
	Templates map[string][]string `yaml:"templates"`
}

// Vocabulary returns the autocorrect vocabulary in a fixed, deterministic
// order: keyword-map keys (sorted), then interrogatives, domain words, and
// the extra word list, with duplicates dropped on first occurrence. The
// corrector's tie-break depends on this order staying stable.
func (c *Content) Vocabulary() []string {
	keys := make([]string, 0, len(c.KeywordTags))
	for k := range c.KeywordTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[string]bool)
	var vocab []string
	add := func(words []string) {
		for _, w := range words {
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			vocab = append(vocab, w)
		}
	}
	add(keys)
	add(c.QuestionWords)
	add(c.DomainWords)
	add(c.AutocorrectExtra)
	return vocab
}
