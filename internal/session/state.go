// Package session defines the per-conversation state and the key-value
// store contract that holds it between turns.
//
// A State is owned exclusively by its session id and mutated only during
// turn processing; the design assumes at most one in-flight turn per
// session id, so callers (not this package) serialize concurrent turns for
// the same id. States for distinct ids share nothing.
package session

// State is the mutable per-session conversation state. The zero value is a
// fresh session.
type State struct {
	// AwaitingTicketConfirm is set after the bot offers to open a support
	// ticket and cleared by the user's yes/no answer.
	AwaitingTicketConfirm bool `json:"awaiting_ticket_confirm"`

	// ActiveView names a client view the bot asked to open (for example the
	// ticket-creation form). Empty when no view is requested.
	ActiveView string `json:"active_view,omitempty"`

	// LastTopic remembers the most recent product topic for short follow-up
	// questions. This is the bot's only conversational memory.
	LastTopic string `json:"last_topic,omitempty"`

	// UserLang is the sticky language committed to for this session.
	UserLang string `json:"user_lang,omitempty"`

	// LangHistory records every per-turn language decision in order. It is
	// append-only and unbounded; entries are two-letter codes.
	LangHistory []string `json:"lang_history,omitempty"`
}
