// Package schedules is the one-shot timer service driving word advancement.
package schedules

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/modes"
)

type Timer interface {
	// Stop prevents the timer from firing and reports whether it was still pending.
	Stop() bool
}

type Scheduler interface {
	// Schedule calls fn once after d, on a goroutine the scheduler chooses.
	Schedule(d time.Duration, fn func()) Timer
}

type Module struct {
	dscope.Module
}

// Scheduler is the real clock in production and a manual clock in tests.
func (Module) Scheduler(
	mode modes.Mode,
) Scheduler {
	if mode == modes.ModeDevelopment {
		return NewManual()
	}
	return Real{}
}

type Real struct{}

var _ Scheduler = Real{}

func (Real) Schedule(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
