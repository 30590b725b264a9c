package schedules

import (
	"slices"
	"sync"
	"time"
)

// Manual is a deterministic clock. Timers fire only from Advance or FireNext,
// on the calling goroutine, in due time order.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	serial int
	timers []*manualTimer
}

var _ Scheduler = new(Manual)

type manualTimer struct {
	manual *Manual
	due    time.Duration
	delay  time.Duration
	serial int
	fn     func()
}

func NewManual() *Manual {
	return new(Manual)
}

func (m *Manual) Schedule(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serial++
	timer := &manualTimer{
		manual: m,
		due:    m.now + d,
		delay:  d,
		serial: m.serial,
		fn:     fn,
	}
	m.timers = append(m.timers, timer)
	return timer
}

func (t *manualTimer) Stop() bool {
	m := t.manual
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.Index(m.timers, t)
	if i < 0 {
		return false
	}
	m.timers = slices.Delete(m.timers, i, i+1)
	return true
}

// Now is the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the delays of the timers not yet fired or stopped, in due order.
func (m *Manual) Pending() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sort()
	ret := make([]time.Duration, 0, len(m.timers))
	for _, timer := range m.timers {
		ret = append(ret, timer.delay)
	}
	return ret
}

func (m *Manual) sort() {
	slices.SortStableFunc(m.timers, func(a, b *manualTimer) int {
		if a.due != b.due {
			if a.due < b.due {
				return -1
			}
			return 1
		}
		return a.serial - b.serial
	})
}

func (m *Manual) pop(until time.Duration, force bool) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.timers) == 0 {
		return nil
	}
	m.sort()
	timer := m.timers[0]
	if !force && timer.due > until {
		return nil
	}
	m.timers = m.timers[1:]
	if timer.due > m.now {
		m.now = timer.due
	}
	return timer
}

// FireNext moves the clock to the earliest pending timer and fires it.
// It reports false when nothing is pending.
func (m *Manual) FireNext() bool {
	timer := m.pop(0, true)
	if timer == nil {
		return false
	}
	timer.fn()
	return true
}

// Advance moves the clock forward by d, firing every timer that falls due,
// including timers scheduled by fired callbacks.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	until := m.now + d
	m.mu.Unlock()
	for {
		timer := m.pop(until, false)
		if timer == nil {
			break
		}
		timer.fn()
	}
	m.mu.Lock()
	m.now = until
	m.mu.Unlock()
}
