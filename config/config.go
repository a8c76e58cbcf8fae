// Package config holds the pure, data-only compile-time settings dwm.c
// keeps in config.h: appearance constants, the window-matching rule table,
// and tiling defaults. It deliberately excludes key/button bindings (spec
// §1 scopes the compiled-in configuration file out of core), since those
// bind to action functions on *wm.World and living here would create an
// import cycle between config and wm. The default binding tables are built
// in cmd/dwm instead, the Go analogue of dwm shipping config.def.h.
package config

// Rule matches a newly managed window against class/instance/title
// substrings, and assigns it a tag mask, floating state
// and preferred monitor (dwm.c's applyrules()).
type Rule struct {
	Class       string
	Instance    string
	Title       string
	Tags        uint32
	IsFloating  bool
	MonitorHint int // -1 means "monitor the window was mapped on"
}

// Config is the full set of compile-time-equivalent settings a running
// World is constructed from.
type Config struct {
	// Appearance
	BorderPx  int
	Snap      int
	ShowBar   bool
	TopBar    bool
	Fonts     []string
	ColBorder string
	ColFocus  string

	ColNormFg     string
	ColNormBg     string
	ColNormBorder string
	ColSelFg      string
	ColSelBg      string
	ColSelBorder  string

	// Tagging
	Tags []string

	Rules []Rule

	// Layout
	MFact          float64
	NMaster        int
	ResizeHints    bool
	LockFullscreen bool

	// External launcher commands referenced by default bindings (spec
	// explicitly scopes process spawning out of core; these are just the
	// data cmd/dwm's bindings pass to wm.Spawn).
	DmenuCmd []string
	TermCmd  []string
}

// Default returns the dwm.c config.def.h equivalent defaults.
func Default() Config {
	return Config{
		BorderPx:  1,
		Snap:      32,
		ShowBar:   true,
		TopBar:    true,
		Fonts:     []string{"monospace:size=10"},
		ColNormFg: "#bbbbbb", ColNormBg: "#222222", ColNormBorder: "#444444",
		ColSelFg: "#eeeeee", ColSelBg: "#005577", ColSelBorder: "#005577",
		Tags:           []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		MFact:          0.55,
		NMaster:        1,
		ResizeHints:    true,
		LockFullscreen: true,
		DmenuCmd:       []string{"dmenu_run"},
		TermCmd:        []string{"st"},
	}
}
