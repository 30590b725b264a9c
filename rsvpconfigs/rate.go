package rsvpconfigs

import (
	"github.com/reusee/rsvp/cmds"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/logs"
	"github.com/reusee/rsvp/rates"
	"github.com/reusee/rsvp/settings"
)

// InitialRate is the rate a new session starts with.
type InitialRate rates.Rate

var _ configs.Configurable = InitialRate(0)

func (InitialRate) ConfigExpr() string {
	return "wpm"
}

var wpmFlag = cmds.Var[int]("-wpm", "words per minute, 100 to 900")

// InitialRate resolves flag, then the remembered rate, then config, then the default.
// Out of range flag values are ignored like any rejected rate.
func (Module) InitialRate(
	loader configs.Loader,
	store settings.Store,
	logger logs.Logger,
) InitialRate {
	if rate, err := rates.Validate(*wpmFlag); err == nil {
		return InitialRate(rate)
	} else if *wpmFlag != 0 {
		logger.Warn("ignore -wpm", "error", err)
	}

	if rate, ok, err := settings.LoadRate(store); err != nil {
		logger.Warn("remembered rate", "error", err)
	} else if ok {
		return InitialRate(rate)
	}

	if rate := configs.Lookup[InitialRate](loader); rates.Rate(rate).Valid() {
		return rate
	}

	return InitialRate(rates.Default)
}
