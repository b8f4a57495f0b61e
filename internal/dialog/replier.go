package dialog

import (
	"math/rand"
	"sync"

	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/intent"
)

// fallbackKey answers intents with no template entry of their own.
const fallbackKey = "fallback"

// Replier picks a reply phrasing for an intent. Intents with several
// equivalent templates get one at random so repeated identical questions
// read less canned.
type Replier struct {
	templates map[string][]string

	// math/rand sources are not safe for concurrent use
	mu  sync.Mutex
	rng *rand.Rand
}

// NewReplier builds a Replier over the content's templates. rng may be nil,
// in which case a time-seeded source is used; tests pass a fixed seed.
func NewReplier(content *botdata.Content, rng *rand.Rand) *Replier {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Replier{templates: content.Templates, rng: rng}
}

// Reply returns one phrasing for the intent, drawn uniformly when the
// intent has several. Unknown intents get the fallback template; an empty
// string comes back only if the content has no fallback either.
func (r *Replier) Reply(in intent.Intent) string {
	options := r.templates[string(in)]
	if len(options) == 0 {
		options = r.templates[fallbackKey]
	}
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	}

	r.mu.Lock()
	idx := r.rng.Intn(len(options))
	r.mu.Unlock()
	return options[idx]
}
