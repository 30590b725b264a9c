// Package readers sequences tokens on a surface at the configured rate.
package readers

import (
	"log/slog"

	"github.com/reusee/rsvp/fixations"
	"github.com/reusee/rsvp/logs"
	"github.com/reusee/rsvp/pacings"
	"github.com/reusee/rsvp/rates"
	"github.com/reusee/rsvp/schedules"
	"github.com/reusee/rsvp/settings"
	"github.com/reusee/rsvp/syncs"
	"github.com/reusee/rsvp/tokens"
)

const DefaultBackWords = 10

type Options struct {
	Scheduler schedules.Scheduler
	Surface   Surface
	// optional; accepted rates are written to it
	Store  settings.Store
	Logger logs.Logger
	Params pacings.Params
	// zero means rates.Default
	Rate rates.Rate
	// zero means DefaultBackWords
	BackWords int
}

// Controller is one reading session. All state changes happen inside steps
// serialized by a one slot semaphore, triggered by a method call or a timer.
type Controller struct {
	sem       syncs.Semaphore
	scheduler schedules.Scheduler
	surface   Surface
	store     settings.Store
	logger    logs.Logger
	params    pacings.Params
	backWords int

	source func() string
	tokens []tokens.Token
	// byte offset of each token in the loaded text
	offsets   []int
	position  int
	rate      rates.Rate
	phase     Phase
	presented fixations.Presentation

	// at most one advancement is outstanding; fires carrying another serial are stale
	pending       schedules.Timer
	pendingSerial uint64
	serial        uint64
}

func New(opts Options) *Controller {
	c := &Controller{
		sem:       syncs.NewSemaphore(1),
		scheduler: opts.Scheduler,
		surface:   opts.Surface,
		store:     opts.Store,
		logger:    opts.Logger,
		params:    opts.Params,
		backWords: opts.BackWords,
		rate:      opts.Rate,
	}
	if c.scheduler == nil {
		c.scheduler = schedules.Real{}
	}
	if c.surface == nil {
		c.surface = SurfaceFunc(func(Frame) {})
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.params == (pacings.Params{}) {
		c.params = pacings.DefaultParams()
	}
	if c.backWords <= 0 {
		c.backWords = DefaultBackWords
	}
	if !c.rate.Valid() {
		c.rate = rates.Default
	}
	return c
}

// step runs fn exclusively and repaints when fn reports a change.
func (c *Controller) step(fn func() bool) {
	c.sem.Acquire()
	defer c.sem.Release()
	if fn() {
		c.surface.Present(c.frame())
	}
}

func (c *Controller) frame() Frame {
	return Frame{
		Presentation: c.presented,
		Position:     c.position,
		Total:        len(c.tokens),
		Phase:        c.phase,
		Rate:         c.rate,
	}
}

func (c *Controller) setPhase(phase Phase) {
	if phase == c.phase {
		return
	}
	c.logger.Debug("phase",
		"from", c.phase,
		"to", phase,
		"position", c.position,
		"total", len(c.tokens),
	)
	c.phase = phase
}

func (c *Controller) present() {
	c.presented = fixations.Split(c.tokens[c.position])
}

func (c *Controller) load(text string) {
	spans := tokens.Spans(text)
	c.tokens = make([]tokens.Token, 0, len(spans))
	c.offsets = make([]int, 0, len(spans))
	for _, span := range spans {
		c.tokens = append(c.tokens, span.Token)
		c.offsets = append(c.offsets, span.StartByte)
	}
	c.position = 0
	c.presented = fixations.Presentation{}
}

// cancel stops and forgets the pending advancement. It must run before any
// new schedule and before any phase change that invalidates the pending one.
func (c *Controller) cancel() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.pendingSerial = 0
}

// schedule arms the advancement off the current token, with the rate in effect now.
func (c *Controller) schedule() {
	c.cancel()
	delay := c.params.Duration(c.tokens[c.position], int(c.rate))
	c.serial++
	serial := c.serial
	c.pendingSerial = serial
	c.pending = c.scheduler.Schedule(delay, func() {
		c.fire(serial)
	})
}

func (c *Controller) fire(serial uint64) {
	c.step(func() bool {
		if serial != c.pendingSerial {
			// cancelled after the timer had already started firing
			return false
		}
		c.pending = nil
		c.pendingSerial = 0
		c.advance()
		return true
	})
}

func (c *Controller) advance() {
	c.position++
	if c.position >= len(c.tokens) {
		c.position = len(c.tokens)
		c.setPhase(Finished)
		return
	}
	c.present()
	if c.phase == Playing {
		// the last token is scheduled too, so it stays on screen for its full
		// duration; n tokens take n advancements to reach Finished
		c.schedule()
		return
	}
	c.setPhase(Paused)
}

// SetSource sets the text Start reads when no tokens are loaded.
// source runs inside a step and must not block.
func (c *Controller) SetSource(source func() string) {
	c.step(func() bool {
		c.source = source
		return false
	})
}

// SetText replaces the tokens and rewinds to the first one. While playing,
// the pending advancement is cancelled and the session pauses on the first
// new token; in other phases the phase is kept.
func (c *Controller) SetText(text string) {
	c.step(func() bool {
		wasPlaying := c.phase == Playing
		if wasPlaying {
			c.cancel()
		}
		c.load(text)
		if wasPlaying {
			if len(c.tokens) == 0 {
				c.setPhase(Idle)
			} else {
				c.setPhase(Paused)
				c.present()
			}
		}
		return true
	})
}

// Start plays from the first token. Calling it while playing replays.
func (c *Controller) Start() {
	c.step(func() bool {
		if len(c.tokens) == 0 && c.source != nil {
			c.load(c.source())
		}
		if len(c.tokens) == 0 {
			return false
		}
		c.cancel()
		c.position = 0
		c.setPhase(Playing)
		c.present()
		c.schedule()
		return true
	})
}

func (c *Controller) Pause() {
	c.step(c.pause)
}

func (c *Controller) pause() bool {
	if c.phase != Playing {
		return false
	}
	c.cancel()
	c.setPhase(Paused)
	return true
}

// Resume continues from the current token, scheduling its remaining time
// without presenting it again. A token that was never shown is shown first.
func (c *Controller) Resume() {
	c.step(c.resume)
}

func (c *Controller) resume() bool {
	if c.phase == Playing || c.position >= len(c.tokens) {
		return false
	}
	c.setPhase(Playing)
	if c.presented.IsZero() {
		c.present()
	}
	c.schedule()
	return true
}

// Toggle pauses when playing and resumes otherwise.
func (c *Controller) Toggle() {
	c.step(func() bool {
		if c.phase == Playing {
			return c.pause()
		}
		return c.resume()
	})
}

// Back rewinds by the configured number of words, clamped at the first one.
// It keeps the phase and any pending advancement.
func (c *Controller) Back() {
	c.step(func() bool {
		c.position = max(0, c.position-c.backWords)
		if len(c.tokens) > 0 {
			c.present()
		}
		return true
	})
}

// SetRate accepts rates in [rates.Min, rates.Max] and persists them.
// The pending advancement keeps its delay; the next one uses the new rate.
func (c *Controller) SetRate(wpm int) (accepted bool) {
	rate, err := rates.Validate(wpm)
	if err != nil {
		return false
	}
	c.step(func() bool {
		c.rate = rate
		c.logger.Info("rate", "wpm", int(rate))
		if c.store != nil {
			if err := settings.SaveRate(c.store, rate); err != nil {
				c.logger.Error("persist rate", "error", err)
			}
		}
		return true
	})
	return true
}

// SetRateString is SetRate for widget text; non-numeric input is rejected.
func (c *Controller) SetRateString(s string) (accepted bool) {
	rate, err := rates.Parse(s)
	if err != nil {
		return false
	}
	return c.SetRate(int(rate))
}

func (c *Controller) CurrentPresentation() (ret fixations.Presentation) {
	c.step(func() bool {
		ret = c.presented
		return false
	})
	return
}

func (c *Controller) IsPlaying() (ret bool) {
	c.step(func() bool {
		ret = c.phase == Playing
		return false
	})
	return
}

func (c *Controller) Phase() (ret Phase) {
	c.step(func() bool {
		ret = c.phase
		return false
	})
	return
}

// Position is the index of the current token; it equals Len once finished.
func (c *Controller) Position() (ret int) {
	c.step(func() bool {
		ret = c.position
		return false
	})
	return
}

// Len is the number of loaded tokens.
func (c *Controller) Len() (ret int) {
	c.step(func() bool {
		ret = len(c.tokens)
		return false
	})
	return
}

func (c *Controller) Rate() (ret rates.Rate) {
	c.step(func() bool {
		ret = c.rate
		return false
	})
	return
}

// Frame returns what the surface last received or would receive now.
func (c *Controller) Frame() (ret Frame) {
	c.step(func() bool {
		ret = c.frame()
		return false
	})
	return
}
