package translate

import (
	"context"
	"errors"
	"testing"
)

// stubTranslator records the text it was given and returns a canned
// result or error.
type stubTranslator struct {
	result  string
	err     error
	lastIn  string
	lastSrc string
	lastDst string
}

func (s *stubTranslator) Translate(_ context.Context, text, src, dst string) (string, error) {
	s.lastIn = text
	s.lastSrc = src
	s.lastDst = dst
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func TestToCanonicalPassthrough(t *testing.T) {
	stub := &stubTranslator{result: "should not be used"}
	n := NewNormalizer(stub, NewGuard([]string{"vote"}))

	got := n.ToCanonical(context.Background(), "hva er vote", "no")
	if got != "hva er vote" {
		t.Errorf("ToCanonical() = %q, want input unchanged", got)
	}
	if stub.lastIn != "" {
		t.Error("translator called for canonical-language input")
	}
}

func TestToCanonicalProtectsNouns(t *testing.T) {
	stub := &stubTranslator{result: "hva handler __VOTE__ om"}
	n := NewNormalizer(stub, NewGuard([]string{"vote"}))

	got := n.ToCanonical(context.Background(), "what is vote about", "en")
	if got != "hva handler vote om" {
		t.Errorf("ToCanonical() = %q, want %q", got, "hva handler vote om")
	}
	if stub.lastIn != "what is __VOTE__ about" {
		t.Errorf("translator received %q, want placeholder-protected text", stub.lastIn)
	}
	if stub.lastSrc != "en" || stub.lastDst != "no" {
		t.Errorf("translator called with %q->%q, want en->no", stub.lastSrc, stub.lastDst)
	}
}

func TestToCanonicalFailSoft(t *testing.T) {
	stub := &stubTranslator{err: errors.New("service down")}
	n := NewNormalizer(stub, NewGuard([]string{"vote"}))

	got := n.ToCanonical(context.Background(), "what is vote about", "en")
	if got != "what is vote about" {
		t.Errorf("ToCanonical() = %q, want placeholder-restored original on failure", got)
	}
}

func TestFromCanonicalFailSoft(t *testing.T) {
	stub := &stubTranslator{err: errors.New("timeout")}
	n := NewNormalizer(stub, NewGuard([]string{"vote"}))

	reply := "vote er vårt historiedrevne spill."
	got := n.FromCanonical(context.Background(), reply, "en")
	if got != reply {
		t.Errorf("FromCanonical() = %q, want untranslated reply on failure", got)
	}
}

func TestNilTranslatorBehavesLikeNoop(t *testing.T) {
	n := NewNormalizer(nil, NewGuard([]string{"vote"}))

	got := n.ToCanonical(context.Background(), "what about vote", "en")
	if got != "what about vote" {
		t.Errorf("ToCanonical() = %q, want passthrough", got)
	}
}
