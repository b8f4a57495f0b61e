// Package bot runs the full turn pipeline: load session state, pick the
// language, normalize to the canonical language, classify, transition the
// dialogue state, pick a reply, translate it back, and persist the state.
//
// The pipeline fails soft everywhere the external world is involved; the
// only hard errors Handle returns come from the session store.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/dialog"
	"github.com/vintrastudio/votebot/internal/intent"
	"github.com/vintrastudio/votebot/internal/lang"
	"github.com/vintrastudio/votebot/internal/session"
	"github.com/vintrastudio/votebot/internal/translate"
)

// Result is the outcome of one turn, shaped for the HTTP API.
type Result struct {
	Reply                 string `json:"reply"`
	Lang                  string `json:"lang"`
	Intent                string `json:"intent"`
	AwaitingTicketConfirm bool   `json:"awaiting_ticket_confirm"`
	ActiveView            string `json:"active_view,omitempty"`
	LastTopic             string `json:"last_topic,omitempty"`
}

// Bot wires the pipeline stages around a session store. It is safe for
// concurrent use across distinct session ids; the caller serializes turns
// within one id.
type Bot struct {
	store      session.Store
	selector   *lang.Selector
	classifier *intent.Classifier
	replier    *dialog.Replier
	normalizer *translate.Normalizer
}

// Options configures New beyond the content set.
type Options struct {
	// Store holds session state; nil gets an in-memory store.
	Store session.Store

	// Model is the optional statistical classifier stage; nil disables it.
	Model intent.Model

	// Translator reaches the external translation service; nil means
	// pass-through (canonical-language-only operation).
	Translator translate.Translator

	// Replier overrides the default time-seeded replier; tests inject a
	// deterministic one.
	Replier *dialog.Replier
}

// New assembles a Bot from content and options.
func New(content *botdata.Content, opts Options) *Bot {
	store := opts.Store
	if store == nil {
		store = session.NewMemoryStore()
	}
	replier := opts.Replier
	if replier == nil {
		replier = dialog.NewReplier(content, nil)
	}
	return &Bot{
		store:      store,
		selector:   lang.New(content),
		classifier: intent.New(content, opts.Model),
		replier:    replier,
		normalizer: translate.NewNormalizer(opts.Translator, translate.NewGuard(content.DomainWords)),
	}
}

// Handle processes one user message for the given session and returns the
// reply in the user's language together with the post-turn dialogue state.
func (b *Bot) Handle(ctx context.Context, sessionID, text string) (Result, error) {
	st, err := b.store.Get(sessionID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load session %q: %w", sessionID, err)
	}
	if st == nil {
		st = &session.State{}
	}

	userLang := b.selector.Select(text, st)
	canonical := b.normalizer.ToCanonical(ctx, text, userLang)

	in := b.classifier.Classify(canonical, st)
	dialog.Apply(in, st)

	reply := b.replier.Reply(in)
	reply = b.normalizer.FromCanonical(ctx, reply, userLang)

	if err := b.store.Put(sessionID, st); err != nil {
		return Result{}, fmt.Errorf("failed to persist session %q: %w", sessionID, err)
	}

	slog.Debug("Turn complete",
		"session", sessionID,
		"lang", userLang,
		"intent", in,
		"awaiting_confirm", st.AwaitingTicketConfirm)

	return Result{
		Reply:                 reply,
		Lang:                  userLang,
		Intent:                string(in),
		AwaitingTicketConfirm: st.AwaitingTicketConfirm,
		ActiveView:            st.ActiveView,
		LastTopic:             st.LastTopic,
	}, nil
}
