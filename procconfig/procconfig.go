// Package procconfig loads the ambient, non-functional runtime settings
// this window manager reads from a TOML file rather than compiling in:
// log level and whether to trace every dispatched X event. It never
// affects tiling/focus semantics (spec §1's compiled-in configuration file
// covers Rules/Tags/appearance; this is the observability knob dwm.c has
// no equivalent of, grounded on the teacher's own use of a TOML settings
// file for cache/tiling preferences).
package procconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Settings is the full contents of dwm.toml.
type Settings struct {
	LogLevel   string `toml:"log_level"`
	TraceEvents bool  `toml:"trace_events"`
}

// Default returns the settings used when no file is present or it fails
// to parse.
func Default() Settings {
	return Settings{LogLevel: "info"}
}

// Path returns $XDG_CONFIG_HOME/dwm/dwm.toml, falling back to
// ~/.config/dwm/dwm.toml.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dwm", "dwm.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dwm", "dwm.toml")
}

// Load reads Settings from Path(), returning Default() when the file is
// absent (silently) or malformed (with a logged warning) — this file never causes
// a fatal error, matching how dwm.c silently falls back to config.h
// compiled defaults when nothing overrides them.
func Load() Settings {
	path := Path()
	if path == "" {
		return Default()
	}
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Warn("procconfig: failed to parse dwm.toml, using defaults")
		}
		return Default()
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s
}

// ApplyLogLevel parses s.LogLevel and sets logrus's level, falling back to
// Info on an unrecognized value.
func ApplyLogLevel(s Settings) {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
		log.WithField("value", s.LogLevel).Warn("procconfig: unknown log_level, defaulting to info")
	}
	log.SetLevel(lvl)
}
