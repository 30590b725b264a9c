package rsvpconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
