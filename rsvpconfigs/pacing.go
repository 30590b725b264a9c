package rsvpconfigs

import (
	"time"

	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/pacings"
)

type pacingConfig struct {
	LengthThreshold    *int    `json:"length_threshold"`
	PerExtraRuneMS     *int    `json:"per_extra_rune_ms"`
	PunctuationPauseMS *int    `json:"punctuation_pause_ms"`
	Punctuation        *string `json:"punctuation"`
}

func (Module) PacingParams(
	loader configs.Loader,
) pacings.Params {
	params := pacings.DefaultParams()
	cfg := configs.First[pacingConfig](loader, "pacing")
	if cfg.LengthThreshold != nil {
		params.LengthThreshold = *cfg.LengthThreshold
	}
	if cfg.PerExtraRuneMS != nil {
		params.PerExtraRune = time.Duration(*cfg.PerExtraRuneMS) * time.Millisecond
	}
	if cfg.PunctuationPauseMS != nil {
		params.PunctuationPause = time.Duration(*cfg.PunctuationPauseMS) * time.Millisecond
	}
	if cfg.Punctuation != nil {
		params.Punctuation = *cfg.Punctuation
	}
	return params
}
