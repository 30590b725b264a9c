package rsvpconfigs

import (
	"github.com/reusee/rsvp/cmds"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/vars"
)

// BackWords is how far Back rewinds.
type BackWords int

var _ configs.Configurable = BackWords(0)

func (BackWords) ConfigExpr() string {
	return "back_words"
}

func (Module) BackWords(
	loader configs.Loader,
) BackWords {
	return vars.FirstNonZero(
		configs.Lookup[BackWords](loader),
		BackWords(10),
	)
}

// LogFile receives log records while a full screen frontend owns the terminal.
type LogFile string

var _ configs.Configurable = LogFile("")

func (LogFile) ConfigExpr() string {
	return "log_file"
}

var logFileFlag = cmds.Var[string]("-log-file", "write logs to this file")

func (Module) LogFile(
	loader configs.Loader,
) LogFile {
	return vars.FirstNonZero(
		LogFile(*logFileFlag),
		configs.Lookup[LogFile](loader),
	)
}
