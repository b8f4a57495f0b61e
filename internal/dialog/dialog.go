// Package dialog holds the conversation policy around a classified intent:
// the per-session state transitions and the selection of a reply phrasing.
package dialog

import (
	"github.com/vintrastudio/votebot/internal/intent"
	"github.com/vintrastudio/votebot/internal/session"
)

// ticketView is the client view opened when a ticket is confirmed.
const ticketView = "createTicket"

// Apply mutates st according to the resolved intent. Transitions are
// deliberately few: the ticket confirmation flag, the requested client
// view, and the remembered topic for follow-up questions.
func Apply(in intent.Intent, st *session.State) {
	switch in {
	case intent.WhatIsVote, intent.TeamSize, intent.Price, intent.ReleaseWindow, intent.GameplayInfo:
		st.LastTopic = "vote"
	case intent.AskTicket:
		st.AwaitingTicketConfirm = true
	case intent.ConfirmTicketYes:
		st.AwaitingTicketConfirm = false
		st.ActiveView = ticketView
	case intent.ConfirmTicketNo:
		st.AwaitingTicketConfirm = false
	}
}
