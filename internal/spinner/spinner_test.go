package spinner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Thinking...")

	s.Start(context.Background())

	// allow some time for the animation to run
	time.Sleep(250 * time.Millisecond)

	s.Stop()

	output := buf.String()
	if output == "" {
		t.Fatal("Expected output to be written to buffer")
	}

	if !strings.Contains(output, "Thinking...") {
		t.Error("Expected message to appear in output")
	}

	hasFrame := false
	for _, frame := range frames {
		if strings.Contains(output, frame) {
			hasFrame = true
			break
		}
	}
	if !hasFrame {
		t.Error("Expected spinner frames in output")
	}

	// non-terminal output is cleared with a bare carriage return
	if !strings.HasSuffix(output, "\r") {
		t.Error("Expected output to end with carriage return")
	}
}

func TestSpinnerDoubleStart(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Testing...")

	s.Start(context.Background())
	// second start should be a no-op, not a second goroutine
	s.Start(context.Background())

	time.Sleep(150 * time.Millisecond)
	s.Stop()
}

func TestSpinnerDoubleStop(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Testing...")

	s.Start(context.Background())
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "Testing...")

	// must not panic or block
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}
