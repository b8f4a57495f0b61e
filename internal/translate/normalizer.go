package translate

import (
	"context"
	"log/slog"

	"github.com/vintrastudio/votebot/internal/lang"
)

// Normalizer converts message text to and from the canonical language with
// domain nouns protected. It is the only component that talks to the
// Translator, and it absorbs every failure.
type Normalizer struct {
	translator Translator
	guard      *Guard
}

// NewNormalizer wires a Normalizer. A nil translator behaves like Noop.
func NewNormalizer(translator Translator, guard *Guard) *Normalizer {
	if translator == nil {
		translator = Noop{}
	}
	return &Normalizer{translator: translator, guard: guard}
}

// ToCanonical translates the user's text into the canonical language.
// Canonical input passes through untouched. On translator failure the
// placeholder-restored original is returned — the cascade then runs on
// untranslated text, which degrades quality but never the turn.
func (n *Normalizer) ToCanonical(ctx context.Context, text, detectedLang string) string {
	if detectedLang == lang.Canonical {
		return text
	}

	protected := n.guard.Protect(text)
	translated, err := n.translator.Translate(ctx, protected, detectedLang, lang.Canonical)
	if err != nil {
		slog.Debug("Translation to canonical failed, using original text", "lang", detectedLang, "error", err)
		translated = protected
	}
	return n.guard.Restore(translated)
}

// FromCanonical translates an outgoing reply into the user's language,
// with the same fail-soft contract. Replies already in the target language
// pass through.
func (n *Normalizer) FromCanonical(ctx context.Context, text, targetLang string) string {
	if targetLang == lang.Canonical {
		return text
	}

	protected := n.guard.Protect(text)
	translated, err := n.translator.Translate(ctx, protected, lang.Canonical, targetLang)
	if err != nil {
		slog.Debug("Translation from canonical failed, replying untranslated", "lang", targetLang, "error", err)
		translated = protected
	}
	return n.guard.Restore(translated)
}
