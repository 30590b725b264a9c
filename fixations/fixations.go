// Package fixations locates the optimal recognition point of a word, the letter
// kept at a fixed screen column while words change.
package fixations

import (
	"unicode"
	"unicode/utf8"

	"github.com/reusee/rsvp/tokens"
)

// Presentation is a token split around its fixation letter.
// Before + Center + After always equals the token.
type Presentation struct {
	Before string
	Center string
	After  string
}

func (p Presentation) String() string {
	return p.Before + p.Center + p.After
}

func (p Presentation) IsZero() bool {
	return p == Presentation{}
}

// CenterIndex returns the byte offset of the middle letter of token.
// With n letters the middle one is the n/2-th (0 based), counting letters only,
// so digits and punctuation never receive the fixation.
// ok is false when the token has no letter.
func CenterIndex(token tokens.Token) (index int, ok bool) {
	n := 0
	for _, r := range string(token) {
		if unicode.IsLetter(r) {
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	logical := n / 2
	count := 0
	for i, r := range string(token) {
		if !unicode.IsLetter(r) {
			continue
		}
		if count == logical {
			return i, true
		}
		count++
	}
	// unreachable: logical < n
	return 0, false
}

// Split cuts token around its fixation letter. A token without letters is
// returned whole in Center.
func Split(token tokens.Token) Presentation {
	s := string(token)
	idx, ok := CenterIndex(token)
	if !ok {
		return Presentation{
			Center: s,
		}
	}
	_, size := utf8.DecodeRuneInString(s[idx:])
	return Presentation{
		Before: s[:idx],
		Center: s[idx : idx+size],
		After:  s[idx+size:],
	}
}
