// Package x11 is the thin protocol layer: connection bootstrap, atom
// interning, the benign-error allow-list, cursor/grab setup and the raw
// window operations package wm drives. Besides drawx, it is the only
// package that imports jezek/xgbutil; other packages use jezek/xgb's
// protocol types directly (spec §1 keeps Xinerama query details and the
// drawing library as external collaborators reached through this seam).
package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	log "github.com/sirupsen/logrus"
)

// Conn wraps the xgbutil connection plus the handful of root-window facts
// every caller needs (dwm.c's globals dpy/root/screen/sw/sh).
type Conn struct {
	X        *xgbutil.XUtil
	Root     xproto.Window
	ScreenW  int
	ScreenH  int
	NumLockMask uint16
}

// Connect opens the X display named by the DISPLAY environment variable
// (dwm.c's "if (!(dpy = XOpenDisplay(NULL))) die(...)").
func Connect() (*Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: cannot open display: %w", err)
	}
	screen := xu.Screen()
	c := &Conn{
		X:       xu,
		Root:    xu.RootWin(),
		ScreenW: int(screen.WidthInPixels),
		ScreenH: int(screen.HeightInPixels),
	}
	log.WithFields(log.Fields{"w": c.ScreenW, "h": c.ScreenH}).Debug("x11: connected")
	return c, nil
}

// Close tears down the connection (dwm.c's "XCloseDisplay(dpy)" at the end
// of main()).
func (c *Conn) Close() {
	c.X.Conn().Close()
}

// Sync flushes and waits for the server to process every queued request
// (dwm.c's XSync(dpy, False) calls sprinkled after geometry changes). A
// round-trip request is the xgb-idiomatic way to force this since the
// protocol has no bare "sync" request of its own.
func (c *Conn) Sync() {
	xproto.GetInputFocus(c.X.Conn()).Reply()
}
