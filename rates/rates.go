// Package rates validates presentation speeds in words per minute.
package rates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Rate int

const (
	Min     Rate = 100
	Max     Rate = 900
	Default Rate = 300
)

var (
	ErrOutOfRange = errors.New("rate out of range")
	ErrNotNumeric = errors.New("rate not numeric")
)

func (r Rate) Valid() bool {
	return r >= Min && r <= Max
}

func (r Rate) String() string {
	return strconv.Itoa(int(r)) + " wpm"
}

// Validate accepts n only inside [Min, Max].
func Validate(n int) (Rate, error) {
	r := Rate(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%d: %w", n, ErrOutOfRange)
	}
	return r, nil
}

func Clamp(n int) Rate {
	return Rate(max(int(Min), min(int(Max), n)))
}

// Parse reads a decimal rate and validates it.
func Parse(s string) (Rate, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return Validate(n)
}

// ParseClamped reads a decimal rate and clamps it into range, the way the
// numeric input widget treats typed values. Non-numeric input is still an error.
func ParseClamped(s string) (Rate, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return Clamp(n), nil
}
