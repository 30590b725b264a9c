package readers

import (
	"slices"

	"github.com/reusee/rsvp/tokens"
)

// Snapshot is a copy of the session state for inspection.
type Snapshot struct {
	Tokens []string
	// byte offset of each token in the loaded text
	Offsets  []int
	Position int
	Phase    string
	Rate     int
	Current  string
	Pending  bool
	// display duration of every token at the current rate, in milliseconds
	DurationsMS []int64
}

func (c *Controller) Snapshot() (ret Snapshot) {
	c.step(func() bool {
		ret = Snapshot{
			Tokens:      make([]string, 0, len(c.tokens)),
			Offsets:     slices.Clone(c.offsets),
			Position:    c.position,
			Phase:       c.phase.String(),
			Rate:        int(c.rate),
			Current:     c.presented.String(),
			Pending:     c.pending != nil,
			DurationsMS: make([]int64, 0, len(c.tokens)),
		}
		for _, token := range c.tokens {
			ret.Tokens = append(ret.Tokens, string(token))
			ret.DurationsMS = append(ret.DurationsMS, c.params.Duration(token, int(c.rate)).Milliseconds())
		}
		return false
	})
	return
}

// Tokens returns a copy of the loaded tokens.
func (c *Controller) Tokens() (ret []tokens.Token) {
	c.step(func() bool {
		ret = append(ret, c.tokens...)
		return false
	})
	return
}
