// Package intent resolves a canonical-language message into exactly one
// conversational intent.
//
// Resolution is a cascade: spelling correction, unconditional priority
// rules, an example-based fuzzy matcher, an optional statistical
// classifier, and a deterministic rule list. The ordering and tie-breaking
// of the stages are load-bearing: exact, state-dependent signals (a pending
// ticket confirmation, an emoji-only message, an exact farewell token) must
// short-circuit before the fuzzy and statistical stages, which misclassify
// short deterministic inputs; tag-based rules precede the off-topic check
// so any domain signal blocks a false off-topic.
package intent

// Intent is the closed-set classification label driving reply selection
// and state transitions. Exactly one Intent is produced per turn.
type Intent string

const (
	Greeting         Intent = "greeting"
	Farewell         Intent = "farewell"
	Thanks           Intent = "thanks"
	AskTicket        Intent = "ask_ticket"
	ConfirmTicketYes Intent = "confirm_ticket_yes"
	ConfirmTicketNo  Intent = "confirm_ticket_no"
	Price            Intent = "price"
	ReleaseWindow    Intent = "release_window"
	GameplayInfo     Intent = "gameplay_info"
	WebDevInfo       Intent = "web_dev_info"
	WhatIsVote       Intent = "what_is_vote"
	WhatIsVintra     Intent = "what_is_vintra"
	TeamSize         Intent = "team_size"
	Fragment         Intent = "fragment"
	EmojiSmalltalk   Intent = "emoji_smalltalk"
	GenericHelp      Intent = "generic_help"
	OffTopic         Intent = "off_topic"
	Other            Intent = "other"
)
