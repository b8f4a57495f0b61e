package textnorm_test

import (
	"reflect"
	"testing"

	"github.com/vintrastudio/votebot/internal/textnorm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Hei PÅ deg",
			want:  "hei pa deg",
		},
		{
			name:  "ring diacritic folds to ascii",
			input: "når",
			want:  "nar",
		},
		{
			name:  "o slash survives",
			input: "støtte",
			want:  "støtte",
		},
		{
			name:  "ae ligature survives",
			input: "kjærlighet",
			want:  "kjærlighet",
		},
		{
			name:  "punctuation becomes separator",
			input: "hei, jeg har et spørsmål!",
			want:  "hei jeg har et spørsmal",
		},
		{
			name:  "whitespace collapses",
			input: "  hva \t koster   spillet  ",
			want:  "hva koster spillet",
		},
		{
			name:  "emoji stripped",
			input: "hei 😊",
			want:  "hei",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t\n",
			want:  "",
		},
		{
			name:  "digits kept",
			input: "kommer vote i 2026?",
			want:  "kommer vote i 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textnorm.Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hei PÅ deg!",
		"hva koster VOTE?",
		"støtte og hjælp",
		"😊 bare emoji 😊",
		"",
	}

	for _, input := range inputs {
		once := textnorm.Normalize(input)
		twice := textnorm.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := textnorm.Tokenize("Hei, hva koster VOTE?")
	want := []string{"hei", "hva", "koster", "vote"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}

	if toks := textnorm.Tokenize("   "); len(toks) != 0 {
		t.Errorf("Tokenize(whitespace) = %v, want empty", toks)
	}
}

func TestIsEmojiOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"single emoji", "😊", true},
		{"several emoji with spaces", "😊 🙌  😄", true},
		{"emoji and text", "hei 😊", false},
		{"plain text", "hei", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textnorm.IsEmojiOnly(tt.input); got != tt.want {
				t.Errorf("IsEmojiOnly(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasEmoji(t *testing.T) {
	if !textnorm.HasEmoji("takk 🙏") {
		t.Error("HasEmoji() = false for text containing emoji")
	}
	if textnorm.HasEmoji("takk") {
		t.Error("HasEmoji() = true for plain text")
	}
}
