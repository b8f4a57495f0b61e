package intent

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/fuzzy"
	"github.com/vintrastudio/votebot/internal/session"
	"github.com/vintrastudio/votebot/internal/tagger"
	"github.com/vintrastudio/votebot/internal/textnorm"
)

// supportPhrasePattern matches the "I want/need support" sentence shape on
// normalized canonical text: a volition verb phrase followed anywhere by a
// support noun.
var supportPhrasePattern = regexp.MustCompile(
	`\b(jeg vil|ønsker|skal|trenger|må|kan du|kan jeg|jeg trenger)\b.*\b(support|støtte|ticket|sak|henvendelse|kundeservice|hjelp)\b`)

// Phrase sets for the deterministic rules. These are matched fuzzily
// against corrected text, so each entry tolerates typos per its length.
var (
	vintraPhrases = []string{"hva er vintra", "hva er vintra studio", "om vintra", "om vintra studio"}
	votePhrases   = []string{"hva er vote", "hva går vote ut på", "hva går spillet ut på", "hva handler vote om", "om vote"}
	teamPhrases   = []string{"hvem lager vote", "team", "utviklere", "hvor mange jobber", "who makes vote"}
	pricePhrases  = []string{"pris", "kost", "koster", "koste", "hva koster", "hva blir prisen", "hvor mye", "hvor mye vil"}
	helpPhrases   = []string{"hjelp", "assist", "guide", "støtte", "support", "ticket", "sak", "henvendelse", "kundeservice", "lag sak", "opprett ticket"}

	// substrings (post-normalization) that turn a domain-tagged message
	// into a team-size question regardless of what later rules would say
	sizePhrases = []string{"hvor mange", "hvor stort", "hvor stor er", "hvor stort er", "størrelse"}

	// follow-up phrasings resolved via the remembered topic
	followUpWhat = []string{"hva går det ut på"}
	followUpWho  = []string{"hvem lager det"}

	// single tokens that are meaningful on their own and must not be
	// dismissed as fragments
	standaloneTokens = map[string]bool{
		"ticket": true, "support": true, "støtte": true, "pris": true, "price": true,
	}
)

// offTopicGuardTags are the tags whose presence vetoes an off-topic
// verdict. The game tag is deliberately absent: a bare gaming word with no
// product signal is not enough to keep a message on topic.
var offTopicGuardTags = []botdata.Tag{
	botdata.TagDomain, botdata.TagTicket, botdata.TagSupport, botdata.TagPrice,
	botdata.TagRelease, botdata.TagGameplay, botdata.TagWebDev,
}

// turn carries one message through the rule list.
type turn struct {
	raw   string // canonical text as received, emoji and punctuation intact
	text  string // autocorrected, normalized
	tags  tagger.Result
	state *session.State
}

func (t *turn) tokenCount() int { return len(t.tags.Tokens) }

// rule is one deterministic step of the cascade. Rules run in slice order
// and the first hit wins; a rule may also decline, letting evaluation
// continue.
type rule struct {
	name  string
	apply func(*turn) (Intent, bool)
}

// Classifier resolves canonical-language text to an Intent. It is
// immutable after construction and safe for concurrent use; per-session
// state is read from and never written to.
type Classifier struct {
	content   *botdata.Content
	corrector *fuzzy.Corrector
	tagger    *tagger.Tagger
	matcher   *exampleMatcher
	model     Model
	rules     []rule
}

// New builds a Classifier over the given content. model may be nil, which
// disables the statistical stage.
func New(content *botdata.Content, model Model) *Classifier {
	c := &Classifier{
		content:   content,
		corrector: fuzzy.NewCorrector(content.Vocabulary()),
		tagger:    tagger.New(content),
		matcher:   newExampleMatcher(content.Examples),
		model:     model,
	}
	c.rules = c.buildRules()
	return c
}

// Classify runs the full cascade on one canonical-language message.
// Exactly one Intent always comes back; Other is the terminal answer when
// nothing else claims the turn.
func (c *Classifier) Classify(text string, st *session.State) Intent {
	corrected := c.corrector.Correct(text)
	tags := c.tagger.Extract(corrected)
	// normalization strips punctuation before the tagger sees it, so the
	// question mark has to be read off the raw text here
	if strings.Contains(text, "?") {
		tags.IsQuestion = true
	}
	t := &turn{raw: text, text: corrected, tags: tags, state: st}

	if intent, ok := c.priority(t); ok {
		slog.Debug("Priority rule matched", "intent", intent, "text", corrected)
		return intent
	}

	// the fuzzy and statistical stages are skipped while a ticket
	// confirmation is pending: "ja" and "nei" must reach the confirmation
	// rule untouched
	if !st.AwaitingTicketConfirm {
		if intent, score := c.matcher.Best(tags.Tokens); intent != "" && score >= exampleThreshold {
			slog.Debug("Example matcher claimed turn", "intent", intent, "score", score)
			return intent
		}
		if c.model != nil {
			if intent, prob := c.model.Predict(corrected); intent != "" && intent != OffTopic && prob >= modelThreshold {
				slog.Debug("Statistical model claimed turn", "intent", intent, "probability", prob)
				return intent
			}
		}
	}

	for _, r := range c.rules {
		if intent, ok := r.apply(t); ok {
			slog.Debug("Rule matched", "rule", r.name, "intent", intent)
			return intent
		}
	}
	return Other
}

// priority holds the rules that outrank even the example matcher: company
// questions and size questions whose wording overlaps heavily with other
// intents' training examples.
func (c *Classifier) priority(t *turn) (Intent, bool) {
	if fuzzy.Includes(t.text, vintraPhrases, 2) {
		return WhatIsVintra, true
	}
	if t.tags.Has(botdata.TagDomain) {
		for _, phrase := range sizePhrases {
			if strings.Contains(t.text, textnorm.Normalize(phrase)) {
				return TeamSize, true
			}
		}
	}
	return "", false
}

func (c *Classifier) buildRules() []rule {
	return []rule{
		{"ticket_confirmation", func(t *turn) (Intent, bool) {
			if !t.state.AwaitingTicketConfirm {
				return "", false
			}
			if fuzzy.Includes(t.text, c.content.YesWords, 1) {
				return ConfirmTicketYes, true
			}
			if fuzzy.Includes(t.text, c.content.NoWords, 1) {
				return ConfirmTicketNo, true
			}
			// neither answer; the rest of the cascade handles the message
			// and the confirmation stays pending
			return "", false
		}},
		{"emoji_smalltalk", func(t *turn) (Intent, bool) {
			if textnorm.IsEmojiOnly(t.raw) {
				return EmojiSmalltalk, true
			}
			return "", false
		}},
		{"greeting", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, c.content.GreetWords, 1) {
				return Greeting, true
			}
			return "", false
		}},
		{"farewell", func(t *turn) (Intent, bool) {
			// farewells match exactly; fuzzy matching here would swallow
			// short unrelated tokens
			for _, tok := range t.tags.Tokens {
				for _, w := range c.content.FarewellWords {
					if tok == textnorm.Normalize(w) {
						return Farewell, true
					}
				}
			}
			return "", false
		}},
		{"thanks", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, c.content.ThankWords, 1) {
				return Thanks, true
			}
			return "", false
		}},
		{"fragment", func(t *turn) (Intent, bool) {
			if t.text == "jeg" || t.text == "i" {
				return Fragment, true
			}
			if t.tokenCount() == 1 && !standaloneTokens[t.text] {
				return Fragment, true
			}
			return "", false
		}},
		{"ticket_request", func(t *turn) (Intent, bool) {
			if !t.tags.HasAny(botdata.TagTicket, botdata.TagSupport) {
				return "", false
			}
			if t.tokenCount() <= 3 || supportPhrasePattern.MatchString(t.text) {
				return AskTicket, true
			}
			return "", false
		}},
		{"gameplay", func(t *turn) (Intent, bool) {
			if t.tags.Has(botdata.TagGameplay) || fuzzy.Includes(t.text, c.content.GameplayWords, 2) {
				return GameplayInfo, true
			}
			return "", false
		}},
		{"web_dev", func(t *turn) (Intent, bool) {
			if t.tags.Has(botdata.TagWebDev) {
				return WebDevInfo, true
			}
			return "", false
		}},
		{"price_tag", func(t *turn) (Intent, bool) {
			if t.tags.Has(botdata.TagPrice) {
				return Price, true
			}
			return "", false
		}},
		{"release_tag", func(t *turn) (Intent, bool) {
			if t.tags.Has(botdata.TagRelease) || fuzzy.Includes(t.text, c.content.ReleaseQuestionWords, 2) {
				return ReleaseWindow, true
			}
			return "", false
		}},
		{"what_is_vote", func(t *turn) (Intent, bool) {
			if !t.tags.HasAny(botdata.TagDomain, botdata.TagGame) {
				return "", false
			}
			if fuzzy.Includes(t.text, votePhrases, 2) {
				return WhatIsVote, true
			}
			// a bare domain question with no price or release angle is a
			// what-is question
			if t.tags.Has(botdata.TagDomain) && t.tags.IsQuestion &&
				!t.tags.Has(botdata.TagPrice) && !t.tags.Has(botdata.TagRelease) {
				return WhatIsVote, true
			}
			return "", false
		}},
		{"team_size", func(t *turn) (Intent, bool) {
			if t.tags.HasAny(botdata.TagDomain, botdata.TagGame) && fuzzy.Includes(t.text, teamPhrases, 2) {
				return TeamSize, true
			}
			return "", false
		}},
		{"what_is_vintra", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, vintraPhrases, 2) {
				return WhatIsVintra, true
			}
			return "", false
		}},
		{"price_phrases", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, pricePhrases, 2) {
				return Price, true
			}
			return "", false
		}},
		{"release_phrases", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, c.content.ReleaseWords, 1) {
				return ReleaseWindow, true
			}
			return "", false
		}},
		{"help_phrases", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, helpPhrases, 2) {
				return AskTicket, true
			}
			return "", false
		}},
		{"admin_contact", func(t *turn) (Intent, bool) {
			if fuzzy.Includes(t.text, c.content.AdminWords, 1) {
				return AskTicket, true
			}
			return "", false
		}},
		{"topic_followup", func(t *turn) (Intent, bool) {
			if t.state.LastTopic != "vote" {
				return "", false
			}
			if fuzzy.Includes(t.text, followUpWhat, 2) {
				return WhatIsVote, true
			}
			if fuzzy.Includes(t.text, followUpWho, 2) {
				return TeamSize, true
			}
			return "", false
		}},
		{"off_topic", func(t *turn) (Intent, bool) {
			if c.isDomainRelated(t) || t.tags.HasAny(offTopicGuardTags...) {
				return "", false
			}
			return OffTopic, true
		}},
	}
}

// isDomainRelated reports whether the message shows any product, greeting,
// or emoji signal. Emoji are checked on the raw text because normalization
// removes them.
func (c *Classifier) isDomainRelated(t *turn) bool {
	return fuzzy.Includes(t.text, c.content.DomainWords, 1) ||
		fuzzy.Includes(t.text, c.content.GreetWords, 1) ||
		textnorm.IsEmojiOnly(t.raw) ||
		textnorm.HasEmoji(t.raw)
}
