// Package draw specifies the drawing-library contract the core window
// manager consumes but does not implement. Text measurement, font loading
// and pixel blitting are explicitly out of scope (spec §1, §6) — this
// package is the seam a real drw.c-equivalent (or a test double) plugs
// into.
package draw

import "github.com/jezek/xgb/xproto"

// Col indexes the three colors of a Scheme, matching drw.h's ColFg/ColBg/
// ColBorder enum.
type Col int

const (
	ColFg Col = iota
	ColBg
	ColBorder
)

// Scheme is an allocated set of foreground/background/border pixels for one
// color slot (SchemeNorm or SchemeSel).
type Scheme interface {
	Pixel(c Col) uint32
}

// Cursor is an allocated X cursor handle.
type Cursor interface {
	XID() xproto.Cursor
}

// Surface is the draw collaborator contract from spec §6: create/destroy,
// resize, fontset handling, scheme allocation, and the primitive text/rect/
// map operations the bar renderer composes into a status bar.
type Surface interface {
	Resize(w, h uint16)
	FontSetCreate(fonts []string) error
	GetTextWidth(text string) uint16
	// LinePadding returns the sum of left and right text padding (dwm.c's
	// lrpad, derived from the loaded font's line height).
	LinePadding() uint16
	// BarHeight returns the bar height derived from the loaded font.
	BarHeight() uint16
	SchemeCreate(colors [3]string) (Scheme, error)
	SetScheme(s Scheme)
	// Text draws text at x,y within a w x h box with horizontal padding
	// pad, inverted (urgent/selected accent) when invert is true. Returns
	// x + w, the x coordinate just past the box.
	Text(x, y int, w, h uint16, pad uint16, text string, invert bool) int
	Rect(x, y int, w, h uint16, filled, invert bool)
	Map(win xproto.Window, x, y int, w, h uint16)
	CursorCreate(shape uint16) Cursor
	CursorFree(c Cursor)
}
