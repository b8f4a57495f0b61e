package dialog_test

import (
	"math/rand"
	"testing"

	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/dialog"
	"github.com/vintrastudio/votebot/internal/intent"
)

func TestReplyDrawsFromTemplateSet(t *testing.T) {
	content := botdata.Default()
	r := dialog.NewReplier(content, rand.New(rand.NewSource(1)))

	options := make(map[string]bool)
	for _, tmpl := range content.Templates["greeting"] {
		options[tmpl] = true
	}

	for i := 0; i < 50; i++ {
		reply := r.Reply(intent.Greeting)
		if !options[reply] {
			t.Fatalf("Reply(greeting) = %q, not in the greeting template set", reply)
		}
	}
}

func TestReplySingleTemplate(t *testing.T) {
	content := botdata.Default()
	r := dialog.NewReplier(content, rand.New(rand.NewSource(1)))

	want := content.Templates["price"][0]
	for i := 0; i < 10; i++ {
		if got := r.Reply(intent.Price); got != want {
			t.Fatalf("Reply(price) = %q, want %q", got, want)
		}
	}
}

func TestReplyFallbackForUnknownIntent(t *testing.T) {
	content := botdata.Default()
	r := dialog.NewReplier(content, rand.New(rand.NewSource(1)))

	got := r.Reply(intent.Intent("no_such_intent"))
	if got != content.Templates["fallback"][0] {
		t.Errorf("Reply(unknown) = %q, want the fallback template", got)
	}
}

func TestReplyEmptyContent(t *testing.T) {
	content := &botdata.Content{Templates: map[string][]string{}}
	r := dialog.NewReplier(content, rand.New(rand.NewSource(1)))

	if got := r.Reply(intent.Greeting); got != "" {
		t.Errorf("Reply() = %q, want empty string when no templates exist", got)
	}
}
