package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/logs"
)

// Module builds the HTTP client used to fetch remote texts.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
