package dialog_test

import (
	"reflect"
	"testing"

	"github.com/vintrastudio/votebot/internal/dialog"
	"github.com/vintrastudio/votebot/internal/intent"
	"github.com/vintrastudio/votebot/internal/session"
)

func TestApplyTransitions(t *testing.T) {
	tests := []struct {
		name      string
		intent    intent.Intent
		before    session.State
		wantState session.State
	}{
		{
			name:      "product question remembers topic",
			intent:    intent.WhatIsVote,
			before:    session.State{},
			wantState: session.State{LastTopic: "vote"},
		},
		{
			name:      "price question remembers topic",
			intent:    intent.Price,
			before:    session.State{},
			wantState: session.State{LastTopic: "vote"},
		},
		{
			name:      "ticket request opens confirmation",
			intent:    intent.AskTicket,
			before:    session.State{},
			wantState: session.State{AwaitingTicketConfirm: true},
		},
		{
			name:      "confirmation yes opens ticket view",
			intent:    intent.ConfirmTicketYes,
			before:    session.State{AwaitingTicketConfirm: true},
			wantState: session.State{ActiveView: "createTicket"},
		},
		{
			name:      "confirmation no just clears the flag",
			intent:    intent.ConfirmTicketNo,
			before:    session.State{AwaitingTicketConfirm: true},
			wantState: session.State{},
		},
		{
			name:      "greeting leaves state alone",
			intent:    intent.Greeting,
			before:    session.State{LastTopic: "vote"},
			wantState: session.State{LastTopic: "vote"},
		},
		{
			name:      "off topic leaves pending confirmation",
			intent:    intent.OffTopic,
			before:    session.State{AwaitingTicketConfirm: true},
			wantState: session.State{AwaitingTicketConfirm: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := tt.before
			dialog.Apply(tt.intent, &st)
			if !reflect.DeepEqual(st, tt.wantState) {
				t.Errorf("Apply(%q) state = %+v, want %+v", tt.intent, st, tt.wantState)
			}
		})
	}
}
