package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vintrastudio/votebot/internal/bot"
	"github.com/vintrastudio/votebot/internal/botdata"
	"github.com/vintrastudio/votebot/internal/server"
)

func newTestServer() *server.Server {
	b := bot.New(botdata.Default(), bot.Options{})
	return server.New(b, server.Config{Host: "localhost", Port: 0})
}

func postChat(t *testing.T, srv *server.Server, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
	}
	return rec, payload
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer()

	rec, payload := postChat(t, srv, `{"text": "hva koster spillet"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if payload["intent"] != "price" {
		t.Errorf("intent = %v, want %q", payload["intent"], "price")
	}
	if payload["reply"] == "" {
		t.Error("reply is empty")
	}
	// a fresh conversation gets a server-minted session id
	if id, _ := payload["session_id"].(string); id == "" {
		t.Error("session_id missing from response")
	}
}

func TestChatEndpointKeepsSessionState(t *testing.T) {
	srv := newTestServer()

	_, first := postChat(t, srv, `{"session_id": "s1", "text": "I need support"}`)
	if first["intent"] != "ask_ticket" {
		t.Fatalf("turn 1: intent = %v, want %q", first["intent"], "ask_ticket")
	}

	_, second := postChat(t, srv, `{"session_id": "s1", "text": "yes"}`)
	if second["intent"] != "confirm_ticket_yes" {
		t.Errorf("turn 2: intent = %v, want %q", second["intent"], "confirm_ticket_yes")
	}
	if second["active_view"] != "createTicket" {
		t.Errorf("turn 2: active_view = %v, want %q", second["active_view"], "createTicket")
	}
}

// An empty or missing text field is still a turn: the pipeline answers it
// rather than the transport rejecting it.
func TestChatEndpointAcceptsEmptyText(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{"empty text", `{"session_id": "s1", "text": ""}`},
		{"missing text field", `{"session_id": "s1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, payload := postChat(t, srv, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if payload["intent"] != "off_topic" {
				t.Errorf("intent = %v, want %q", payload["intent"], "off_topic")
			}
			if payload["reply"] == "" {
				t.Error("reply is empty")
			}
		})
	}
}

func TestChatEndpointRejectsMalformedBody(t *testing.T) {
	srv := newTestServer()

	rec, _ := postChat(t, srv, `{"session_id":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
