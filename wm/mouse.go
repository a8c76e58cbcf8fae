package wm

import (
	"time"

	"github.com/jezek/xgb/xproto"

	"github.com/delta1024/dwm/common"
	"github.com/delta1024/dwm/store"
)

// throttle matches dwm.c's movemouse/resizemouse 60 Hz motion-event
// coalescing: "if ((ev.xmotion.time - lasttime) <= (1000 / 60)) continue".
const throttle = time.Second / 60

// MoveMouse drives an interactive move grabbed on the pointer, snapping to
// monitor edges within w.Cfg.Snap pixels (dwm.c's movemouse()).
func MoveMouse(w *World, _ *Arg) {
	c := w.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	w.Restack(w.SelMon)
	ocx, ocy := c.X, c.Y
	if !w.Conn.GrabPointer(w.cursorMoveXID()) {
		return
	}
	defer w.Conn.UngrabPointer()

	px, py, _ := w.Conn.QueryPointer()
	var last time.Time
	for {
		ev, err := w.Conn.X.Conn().WaitForEvent()
		if err != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			if time.Since(last) <= throttle {
				continue
			}
			last = time.Now()
			nx := ocx + (int(e.RootX) - px)
			ny := ocy + (int(e.RootY) - py)
			nx, ny = w.snap(c, nx, ny)
			arrange := w.SelMon.Lt[w.SelMon.SelLt].Arrange
			if !c.IsFloating && arrange != nil && (abs(nx-c.X) > w.Cfg.Snap || abs(ny-c.Y) > w.Cfg.Snap) {
				ToggleFloating(w, nil)
			}
			if arrange == nil || c.IsFloating {
				w.resize(c, nx, ny, c.W, c.H, true)
			}
		case xproto.ButtonReleaseEvent:
			if m := w.monitorAtPoint(int(e.RootX), int(e.RootY)); m != w.SelMon {
				w.sendMon(c, m)
				w.SelMon = m
				w.Focus(c)
			}
			return
		default:
			w.dispatch(ev)
		}
	}
}

// ResizeMouse drives an interactive resize grabbed on the pointer,
// warping the pointer to the client's bottom-right corner when it starts
// and again on button release (dwm.c's resizemouse()).
func ResizeMouse(w *World, _ *Arg) {
	c := w.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	w.Restack(w.SelMon)
	ocx, ocy := c.X, c.Y
	if !w.Conn.GrabPointer(w.cursorResizeXID()) {
		return
	}
	defer w.Conn.UngrabPointer()

	w.Conn.WarpPointer(c.Win, int16(c.W+c.BW-1), int16(c.H+c.BW-1))
	var last time.Time
	for {
		ev, err := w.Conn.X.Conn().WaitForEvent()
		if err != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			if time.Since(last) <= throttle {
				continue
			}
			last = time.Now()
			nw := common.MaxInt(int(e.RootX)-ocx-2*c.BW+1, 1)
			nh := common.MaxInt(int(e.RootY)-ocy-2*c.BW+1, 1)
			arrange := w.SelMon.Lt[w.SelMon.SelLt].Arrange
			if !c.IsFloating && arrange != nil && (abs(nw-c.W) > w.Cfg.Snap || abs(nh-c.H) > w.Cfg.Snap) {
				ToggleFloating(w, nil)
			}
			if arrange == nil || c.IsFloating {
				w.resize(c, c.X, c.Y, nw, nh, true)
			}
		case xproto.ButtonReleaseEvent:
			w.Conn.WarpPointer(c.Win, int16(c.W+c.BW-1), int16(c.H+c.BW-1))
			if m := w.monitorAtPoint(int(e.RootX), int(e.RootY)); m != w.SelMon {
				w.sendMon(c, m)
				w.SelMon = m
				w.Focus(c)
			}
			return
		default:
			w.dispatch(ev)
		}
	}
}

// snap pulls x,y onto the monitor's work-area edges when within
// w.Cfg.Snap pixels, matching dwm.c's movemouse() snapping.
func (w *World) snap(c *store.Client, x, y int) (int, int) {
	m := c.Mon
	snap := w.Cfg.Snap
	if abs(x-m.WX) < snap {
		x = m.WX
	} else if abs((m.WX+m.WW)-(x+store.WidthOuter(c))) < snap {
		x = m.WX + m.WW - store.WidthOuter(c)
	}
	if abs(y-m.WY) < snap {
		y = m.WY
	} else if abs((m.WY+m.WH)-(y+store.HeightOuter(c))) < snap {
		y = m.WY + m.WH - store.HeightOuter(c)
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (w *World) cursorMoveXID() xproto.Cursor   { return w.cursorMove.XID() }
func (w *World) cursorResizeXID() xproto.Cursor { return w.cursorResize.XID() }
