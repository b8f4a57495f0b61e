package bot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vintrastudio/votebot/internal/bot"
	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/session"
)

// failingTranslator simulates a dead translation service; the pipeline
// must absorb it completely.
type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, string, string) (string, error) {
	return "", errors.New("service unavailable")
}

func newTestBot() *bot.Bot {
	return bot.New(botdata.Default(), bot.Options{})
}

// The full ticket flow over the public pipeline: a support request opens a
// confirmation, an affirmative answer opens the ticket view.
func TestHandleTicketFlow(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	r1, err := b.Handle(ctx, "s1", "I need support")
	if err != nil {
		t.Fatalf("turn 1: Handle() error: %v", err)
	}
	if r1.Intent != "ask_ticket" {
		t.Fatalf("turn 1: intent = %q, want %q", r1.Intent, "ask_ticket")
	}
	if !r1.AwaitingTicketConfirm {
		t.Fatal("turn 1: AwaitingTicketConfirm = false, want true")
	}

	r2, err := b.Handle(ctx, "s1", "yes")
	if err != nil {
		t.Fatalf("turn 2: Handle() error: %v", err)
	}
	if r2.Intent != "confirm_ticket_yes" {
		t.Errorf("turn 2: intent = %q, want %q", r2.Intent, "confirm_ticket_yes")
	}
	if r2.AwaitingTicketConfirm {
		t.Error("turn 2: AwaitingTicketConfirm = true, want false")
	}
	if r2.ActiveView != "createTicket" {
		t.Errorf("turn 2: ActiveView = %q, want %q", r2.ActiveView, "createTicket")
	}
}

func TestHandleLanguageStickiness(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	r1, err := b.Handle(ctx, "s1", "hei")
	if err != nil {
		t.Fatal(err)
	}
	if r1.Lang != "no" {
		t.Errorf("turn 1: lang = %q, want %q", r1.Lang, "no")
	}

	r2, err := b.Handle(ctx, "s1", "thank you")
	if err != nil {
		t.Fatal(err)
	}
	if r2.Lang != "en" {
		t.Errorf("turn 2: lang = %q, want %q", r2.Lang, "en")
	}

	r3, err := b.Handle(ctx, "s1", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if r3.Lang != "en" {
		t.Errorf("turn 3: lang = %q, want %q (anti-flap)", r3.Lang, "en")
	}
}

func TestHandleSessionsAreIndependent(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	if _, err := b.Handle(ctx, "a", "I need support"); err != nil {
		t.Fatal(err)
	}

	r, err := b.Handle(ctx, "b", "hva koster spillet")
	if err != nil {
		t.Fatal(err)
	}
	if r.AwaitingTicketConfirm {
		t.Error("session b inherited session a's pending confirmation")
	}
	if r.Intent != "price" {
		t.Errorf("session b intent = %q, want %q", r.Intent, "price")
	}
}

func TestHandleTranslatorFailureIsAbsorbed(t *testing.T) {
	b := bot.New(botdata.Default(), bot.Options{Translator: failingTranslator{}})
	ctx := context.Background()

	// detected as non-canonical, so both translation directions fail; the
	// turn must still produce an intent and a reply
	r, err := b.Handle(ctx, "s1", "I need support")
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if r.Intent != "ask_ticket" {
		t.Errorf("intent = %q, want %q", r.Intent, "ask_ticket")
	}
	if r.Reply == "" {
		t.Error("reply is empty; expected the untranslated template")
	}
}

func TestHandleReplyComesFromTemplates(t *testing.T) {
	content := botdata.Default()
	b := bot.New(content, bot.Options{})

	r, err := b.Handle(context.Background(), "s1", "hva koster spillet")
	if err != nil {
		t.Fatal(err)
	}
	if r.Reply != content.Templates["price"][0] {
		t.Errorf("reply = %q, want the price template", r.Reply)
	}
}

func TestHandlePersistsState(t *testing.T) {
	store := session.NewMemoryStore()
	b := bot.New(botdata.Default(), bot.Options{Store: store})

	if _, err := b.Handle(context.Background(), "s1", "I need support"); err != nil {
		t.Fatal(err)
	}

	st, err := store.Get("s1")
	if err != nil {
		t.Fatal(err)
	}
	if st == nil || !st.AwaitingTicketConfirm {
		t.Errorf("persisted state = %+v, want pending ticket confirmation", st)
	}
}
