package rsvpconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/logs"
	"github.com/reusee/rsvp/modes"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"rsvp.cue",
	".rsvp.cue",
}

// ConfigsLoader finds config files, most specific first: working directory,
// user config dir, then /etc.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, Schema)
}

func findFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
