// Package lang guesses the user's language with ordered keyword rules and
// commits to a sticky per-session choice that resists flapping on short,
// ambiguous greetings.
package lang

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/session"
	"github.com/vintrastudio/votebot/internal/textnorm"
)

// Canonical is the working language all classification runs against.
const Canonical = "no"

// fallback is returned when no rule matches.
const fallback = "en"

// langRule pairs a language code with the keyword pattern that detects it.
// Rules are checked in order; the first hit wins.
type langRule struct {
	code    string
	pattern *regexp.Regexp
}

// perLanguageRules are the per-supported-language keyword sets, in fixed
// priority order after the canonical-language rules. Do not reorder: some
// keywords are shared between neighbors (hej, pris) and the earlier
// language deliberately claims them.
var perLanguageRules = []langRule{
	{"da", regexp.MustCompile(`\b(hej|hvordan|pris|billet|støtte)\b`)},
	{"sv", regexp.MustCompile(`\b(hej|pris|stöd|biljett)\b`)},
	{"es", regexp.MustCompile(`\b(hola|precio|ayuda|soporte|ticket)\b`)},
	{"fr", regexp.MustCompile(`\b(bonjour|prix|aide|billet|support)\b`)},
	{"de", regexp.MustCompile(`\b(hallo|preis|hilfe|ticket|unterstützung)\b`)},
	{"fi", regexp.MustCompile(`\b(moi|hinta|lippu|tuki)\b`)},
}

var (
	canonicalDiacritics    = regexp.MustCompile(`[æøå]`)
	canonicalInterrogative = regexp.MustCompile(`\b(hva|hvor|hvem|hvordan|hvorfor|når)\b`)
	canonicalKeywords      = regexp.MustCompile(`\b(hva|hvor|hvem|hvordan|hvorfor|når|hei|pris|billett|støtte|hjelp|ticket)\b`)
)

// Selector guesses and tracks the language of a session.
type Selector struct {
	domainPattern      *regexp.Regexp
	ambiguousGreetings map[string]bool
}

// New builds a Selector from the content's domain nouns and ambiguous
// greeting set.
func New(content *botdata.Content) *Selector {
	quoted := make([]string, 0, len(content.DomainWords))
	for _, w := range content.DomainWords {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(w)))
	}
	ag := make(map[string]bool, len(content.AmbiguousGreetings))
	for _, g := range content.AmbiguousGreetings {
		ag[textnorm.Normalize(g)] = true
	}
	return &Selector{
		domainPattern:      regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`),
		ambiguousGreetings: ag,
	}
}

// DetectRule guesses the language of a single message. The cascade order is
// significant:
//
//  1. A domain noun together with a canonical interrogative forces the
//     canonical language, so the English-looking product name alone cannot
//     flip detection.
//  2. Canonical-language diacritics (checked on the raw lowercased text,
//     before normalization folds them away).
//  3. Canonical keyword/interrogative set.
//  4. Per-supported-language keyword sets in fixed priority order.
//  5. The default fallback.
func (s *Selector) DetectRule(text string) string {
	lower := strings.ToLower(text)
	n := textnorm.Normalize(text)

	if s.domainPattern.MatchString(lower) && canonicalInterrogative.MatchString(n) {
		return Canonical
	}
	if canonicalDiacritics.MatchString(lower) {
		return Canonical
	}
	if canonicalKeywords.MatchString(n) {
		return Canonical
	}
	for _, rule := range perLanguageRules {
		if rule.pattern.MatchString(n) {
			return rule.code
		}
	}
	return fallback
}

// Select decides the language for this turn and updates the session's
// sticky language and history.
//
// On the first turn a short, ambiguous greeting pins the canonical
// language; anything else adopts the rule-based detection. On later turns
// the sticky language is kept when detection agrees or when the message is
// too short and ambiguous to justify a switch; a clear new signal adopts
// the new language. Every decision is appended to the history.
func (s *Selector) Select(text string, st *session.State) string {
	detected := s.DetectRule(text)
	n := textnorm.Normalize(text)
	tokenCount := len(strings.Fields(n))
	shortAmbiguous := tokenCount <= 2 && s.ambiguousGreetings[n]

	if st.UserLang == "" {
		if shortAmbiguous {
			st.UserLang = Canonical
		} else {
			st.UserLang = detected
		}
		st.LangHistory = append(st.LangHistory, st.UserLang)
		return st.UserLang
	}

	if detected == st.UserLang {
		st.LangHistory = append(st.LangHistory, detected)
		return detected
	}

	if shortAmbiguous {
		// anti-flap: a bare "hi" does not override an established language
		st.LangHistory = append(st.LangHistory, st.UserLang)
		return st.UserLang
	}

	slog.Debug("Switching session language", "from", st.UserLang, "to", detected)
	st.UserLang = detected
	st.LangHistory = append(st.LangHistory, detected)
	return detected
}
