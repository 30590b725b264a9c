package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/debugs"
	"github.com/reusee/rsvp/nets"
	"github.com/reusee/rsvp/readers"
	"github.com/reusee/rsvp/rsvpconfigs"
)

type Module struct {
	dscope.Module
	Readers readers.Module
	Configs rsvpconfigs.Module
	Nets    nets.Module
	Debugs  debugs.Module
}
