package x11

import (
	"github.com/jezek/xgb/xproto"
)

// MoveResize issues the XConfigureWindow dwm.c's resizeclient() performs
// directly, setting position, size and border width in one request.
func (c *Conn) MoveResize(win xproto.Window, x, y int, w, h, bw uint32) {
	xproto.ConfigureWindow(c.X.Conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(int32(x)), uint32(int32(y)), w, h, bw})
}

// Move issues a bare position-only XConfigureWindow (dwm.c's movemouse
// interactive loop calls resize() each motion event, but some callers only
// need position, e.g. restoring a floating window's last coordinates).
func (c *Conn) Move(win xproto.Window, x, y int) {
	xproto.ConfigureWindow(c.X.Conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))})
}

// SetBorderWidth updates a window's border width alone (dwm.c sets this
// once at manage() time and again whenever fullscreen toggles it to 0).
func (c *Conn) SetBorderWidth(win xproto.Window, bw uint32) {
	xproto.ConfigureWindow(c.X.Conn(), win, xproto.ConfigWindowBorderWidth, []uint32{bw})
}

// SetBorderPixel sets the window border color (dwm.c's
// "XSetWindowBorder(dpy, c->win, scheme[...][ColBorder].pixel)").
func (c *Conn) SetBorderPixel(win xproto.Window, pixel uint32) {
	xproto.ChangeWindowAttributes(c.X.Conn(), win, xproto.CwBorderPixel, []uint32{pixel})
}

// Raise puts win at the top of the stacking order (dwm.c's
// "XRaiseWindow(dpy, c->win)").
func (c *Conn) Raise(win xproto.Window) {
	xproto.ConfigureWindow(c.X.Conn(), win, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

// RestackAbove places win directly above sibling in the stacking order
// (dwm.c's restack() positioning a floating/fullscreen client above the
// bar window, and chaining each tiled client above the previous one).
func (c *Conn) RestackAbove(win, sibling xproto.Window) {
	xproto.ConfigureWindow(c.X.Conn(), win,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeAbove})
}

// Map/Unmap/Destroy mirror dwm.c's direct Xlib calls.
func (c *Conn) Map(win xproto.Window)     { xproto.MapWindow(c.X.Conn(), win) }
func (c *Conn) Unmap(win xproto.Window)   { xproto.UnmapWindow(c.X.Conn(), win) }
func (c *Conn) Destroy(win xproto.Window) { xproto.DestroyWindow(c.X.Conn(), win) }

// SelectInput updates a window's event mask (dwm.c's
// "XSelectInput(dpy, w, mask)").
func (c *Conn) SelectInput(win xproto.Window, mask uint32) {
	xproto.ChangeWindowAttributes(c.X.Conn(), win, xproto.CwEventMask, []uint32{mask})
}

// SetInputFocus sets the input focus to win, matching dwm.c's setfocus()
// use of RevertToPointerRoot.
func (c *Conn) SetInputFocus(win xproto.Window) {
	xproto.SetInputFocus(c.X.Conn(), xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

// WarpPointer moves the pointer to x,y inside win (dwm.c's movemouse/
// resizemouse warp the pointer to a client's corner before starting the
// interactive grab).
func (c *Conn) WarpPointer(win xproto.Window, x, y int16) {
	xproto.WarpPointer(c.X.Conn(), xproto.WindowNone, win, 0, 0, 0, 0, x, y)
}

// QueryPointer returns the pointer's current root-relative position (dwm.c's
// getrootptr()).
func (c *Conn) QueryPointer() (x, y int, ok bool) {
	reply, err := xproto.QueryPointer(c.X.Conn(), c.Root).Reply()
	if err != nil || reply == nil {
		return 0, 0, false
	}
	return int(reply.RootX), int(reply.RootY), true
}

// CreateSimpleWindow creates an unmapped override-redirect child of root
// that selects Expose events (dwm.c's updatebars() "XCreateWindow(dpy,
// root, ...)").
func (c *Conn) CreateSimpleWindow(x, y int, w, h uint16, bg uint32) (xproto.Window, error) {
	win, err := xproto.NewWindowId(c.X.Conn())
	if err != nil {
		return 0, err
	}
	screen := c.X.Screen()
	xproto.CreateWindow(c.X.Conn(), screen.RootDepth, win, c.Root,
		int16(x), int16(y), w, h, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{bg, 1, xproto.EventMaskExposure})
	return win, nil
}
