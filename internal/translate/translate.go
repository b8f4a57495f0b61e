// Package translate moves message text between the user's language and the
// canonical working language through an external translation service,
// protecting domain proper nouns from being translated away.
//
// Every path through this package fails soft: if the service is absent,
// errors, or times out, the caller gets the untranslated (but
// placeholder-restored) text back, never an error. A stalled call is
// bounded by the HTTP client's timeouts, not by the core.
package translate

import "context"

// Translator is the external translation capability. Implementations may
// be absent or fail; callers must tolerate pass-through fallback.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Noop is the absent-translator variant: it returns text unchanged.
type Noop struct{}

// Translate returns text as-is.
func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
