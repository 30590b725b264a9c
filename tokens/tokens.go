// Package tokens splits source text into the words presented one at a time.
package tokens

import (
	"unicode"
)

// Token is one whitespace delimited word, attached punctuation included.
// It is never empty and never contains whitespace.
type Token string

// Span is a token with its byte range in the source text.
type Span struct {
	Token     Token
	Position  int
	StartByte int
	EndByte   int
}

// Tokenize splits text on runs of whitespace, keeping source order.
func Tokenize(text string) []Token {
	spans := Spans(text)
	if len(spans) == 0 {
		return nil
	}
	ret := make([]Token, 0, len(spans))
	for _, span := range spans {
		ret = append(ret, span.Token)
	}
	return ret
}

// Spans splits like Tokenize and keeps each token's byte range in text.
func Spans(text string) []Span {
	var ret []Span
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				ret = append(ret, Span{
					Token:     Token(text[start:i]),
					Position:  len(ret),
					StartByte: start,
					EndByte:   i,
				})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		ret = append(ret, Span{
			Token:     Token(text[start:]),
			Position:  len(ret),
			StartByte: start,
			EndByte:   len(text),
		})
	}
	return ret
}

func (t Token) String() string {
	return string(t)
}
