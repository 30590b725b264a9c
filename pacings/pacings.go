// Package pacings computes how long each word stays on screen.
package pacings

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reusee/rsvp/tokens"
)

// Params holds the adjustments added to the per-word base duration.
// The adjustments are additive and independent; none shortens the base.
type Params struct {
	// words longer than this many runes get PerExtraRune for each extra rune
	LengthThreshold int
	PerExtraRune    time.Duration
	// added when the last rune is one of Punctuation
	PunctuationPause time.Duration
	Punctuation      string
}

func DefaultParams() Params {
	return Params{
		LengthThreshold:  6,
		PerExtraRune:     15 * time.Millisecond,
		PunctuationPause: 50 * time.Millisecond,
		Punctuation:      ".,;:!?",
	}
}

// Base is the uniform per-word duration at wpm. wpm is assumed already
// validated; non-positive values give zero.
func Base(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(wpm)
}

func (p Params) Duration(token tokens.Token, wpm int) time.Duration {
	d := Base(wpm)

	if n := utf8.RuneCountInString(string(token)); n > p.LengthThreshold {
		d += time.Duration(n-p.LengthThreshold) * p.PerExtraRune
	}

	if last, size := utf8.DecodeLastRuneInString(string(token)); size > 0 &&
		strings.ContainsRune(p.Punctuation, last) {
		d += p.PunctuationPause
	}

	return d
}

// DisplayDuration is Duration with DefaultParams.
func DisplayDuration(token tokens.Token, wpm int) time.Duration {
	return DefaultParams().Duration(token, wpm)
}
