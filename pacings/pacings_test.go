package pacings

import (
	"testing"
	"time"

	"github.com/reusee/rsvp/tokens"
)

func TestDisplayDuration(t *testing.T) {
	tests := []struct {
		token tokens.Token
		wpm   int
		want  time.Duration
	}{
		{"the", 300, 200 * time.Millisecond},
		{"wonderful.", 300, 310 * time.Millisecond},
		{"wonderful", 300, 245 * time.Millisecond},
		{"end.", 300, 250 * time.Millisecond},
		{"sixsix", 300, 200 * time.Millisecond},
		{"sevenly", 300, 215 * time.Millisecond},
		{"what?!", 600, 150 * time.Millisecond},
		{"(quoted)", 100, 630 * time.Millisecond},
		{"naïveté", 300, 215 * time.Millisecond},
		{"a", 900, time.Minute / 900},
		{"a", 0, 0},
	}
	for _, tt := range tests {
		if got := DisplayDuration(tt.token, tt.wpm); got != tt.want {
			t.Errorf("DisplayDuration(%q, %d) = %v, want %v", tt.token, tt.wpm, got, tt.want)
		}
	}
}

func TestNeverBelowBase(t *testing.T) {
	for _, token := range []tokens.Token{"a", "hello,", "extraordinary!", "123", "—"} {
		for _, wpm := range []int{100, 250, 900} {
			if d := DisplayDuration(token, wpm); d < Base(wpm) {
				t.Fatalf("%q at %d: %v below base", token, wpm, d)
			}
		}
	}
}

func TestCustomParams(t *testing.T) {
	params := DefaultParams()
	params.PunctuationPause = 100 * time.Millisecond
	params.Punctuation = "."
	params.LengthThreshold = 3
	if got := params.Duration("stop.", 300); got != 200*time.Millisecond+2*15*time.Millisecond+100*time.Millisecond {
		t.Fatalf("got %v", got)
	}
	if got := params.Duration("hi,", 300); got != 200*time.Millisecond {
		t.Fatalf("got %v", got)
	}
}
