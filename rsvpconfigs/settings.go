package rsvpconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/rsvp/cmds"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/modes"
	"github.com/reusee/rsvp/settings"
	"github.com/reusee/rsvp/vars"
)

type SettingsFile string

var _ configs.Configurable = SettingsFile("")

func (SettingsFile) ConfigExpr() string {
	return "settings_file"
}

var settingsFlag = cmds.Var[string]("-settings", "path of the settings file")

func (Module) SettingsFile(
	loader configs.Loader,
) SettingsFile {
	var defaultPath string
	if dir, err := os.UserConfigDir(); err == nil {
		defaultPath = filepath.Join(dir, "rsvp", "settings.json")
	}
	return vars.FirstNonZero(
		SettingsFile(*settingsFlag),
		configs.Lookup[SettingsFile](loader),
		SettingsFile(defaultPath),
	)
}

// SettingsStore is the file store, or an in memory one in tests and when no
// path can be determined.
func (Module) SettingsStore(
	mode modes.Mode,
	path SettingsFile,
) settings.Store {
	if mode == modes.ModeDevelopment || path == "" {
		return settings.NewMemory()
	}
	return settings.NewFile(string(path))
}
