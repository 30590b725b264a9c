package readers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/logs"
	"github.com/reusee/rsvp/pacings"
	"github.com/reusee/rsvp/rates"
	"github.com/reusee/rsvp/rsvpconfigs"
	"github.com/reusee/rsvp/schedules"
	"github.com/reusee/rsvp/settings"
)

type Module struct {
	dscope.Module
	Configs   rsvpconfigs.Module
	Schedules schedules.Module
	Logs      logs.Module
}

// Surface discards frames; frontends fork their own.
func (Module) Surface() Surface {
	return SurfaceFunc(func(Frame) {})
}

func (Module) Controller(
	scheduler schedules.Scheduler,
	surface Surface,
	store settings.Store,
	params pacings.Params,
	rate rsvpconfigs.InitialRate,
	backWords rsvpconfigs.BackWords,
	logger logs.Logger,
) *Controller {
	return New(Options{
		Scheduler: scheduler,
		Surface:   surface,
		Store:     store,
		Logger:    logger,
		Params:    params,
		Rate:      rates.Rate(rate),
		BackWords: int(backWords),
	})
}
