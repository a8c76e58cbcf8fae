package x11

import "github.com/delta1024/dwm/common"

// ScreenRect is one physical output's geometry as reported by whatever
// multi-head extension is active (spec §1 keeps Xinerama/RandR query
// details external; this package only needs the resulting rectangles).
type ScreenRect = common.Rect

// ScreenEnumerator abstracts "ask the server for the current physical
// screen layout" the way dwm.c's updategeom() calls into
// XineramaQueryScreens when XINERAMA is compiled in, falling back to a
// single full-root rectangle otherwise. Production wiring in cmd/dwm
// implements this against RandR (the extension jezek/xgb actually ships a
// binding for); tests supply a literal list.
type ScreenEnumerator interface {
	Screens() ([]ScreenRect, error)
}

// SingleScreen is the no-Xinerama fallback: one rectangle covering the
// whole root window (dwm.c's updategeom() "#else" branch).
type SingleScreen struct {
	W, H int
}

func (s SingleScreen) Screens() ([]ScreenRect, error) {
	return []ScreenRect{{X: 0, Y: 0, W: s.W, H: s.H}}, nil
}
