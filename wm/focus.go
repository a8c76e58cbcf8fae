package wm

import (
	"github.com/delta1024/dwm/layout"
	"github.com/delta1024/dwm/store"
)

// Arrange recomputes geometry for m (or every monitor, if m is nil),
// showing/hiding clients for their new visibility first, then invoking the
// monitor's current layout's arrange function, then restacking (dwm.c's
// arrange()/arrangemon()).
func (w *World) Arrange(m *store.Monitor) {
	if m != nil {
		w.showHide(m.Stack)
	} else {
		for mm := w.Mons; mm != nil; mm = mm.Next {
			w.showHide(mm.Stack)
		}
	}
	if m != nil {
		w.arrangeMon(m)
		w.Restack(m)
	} else {
		for mm := w.Mons; mm != nil; mm = mm.Next {
			w.arrangeMon(mm)
		}
		for mm := w.Mons; mm != nil; mm = mm.Next {
			w.Restack(mm)
		}
	}
}

func (w *World) arrangeMon(m *store.Monitor) {
	m.LtSymbol = m.Lt[m.SelLt].Symbol
	if arrange := m.Lt[m.SelLt].Arrange; arrange != nil {
		arrange(m, w.resize)
	}
}

// resize applies size hints then, if anything changed, performs the
// actual X configure (dwm.c's resize()/resizeclient() split). Hints are
// refreshed first if they've been invalidated since the last read (dwm.c's
// applysizehints() "if (!c->hintsvalid) updatesizehints(state, c)").
func (w *World) resize(c *store.Client, x, y, width, height int, interact bool) {
	if !c.HintsValid {
		w.updateSizeHints(c)
	}
	hasArrange := c.Mon.Lt[c.Mon.SelLt].Arrange != nil
	nx, ny, nw, nh := layout.ApplySizeHints(c, x, y, width, height, interact,
		layout.WorkArea{X: c.Mon.WX, Y: c.Mon.WY, W: c.Mon.WW, H: c.Mon.WH},
		w.Conn.ScreenW, w.Conn.ScreenH, w.Cfg.ResizeHints, hasArrange)
	if nx != c.X || ny != c.Y || nw != c.W || nh != c.H {
		w.resizeClient(c, nx, ny, nw, nh)
	}
}

func (w *World) resizeClient(c *store.Client, x, y, width, height int) {
	c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
	c.X, c.Y, c.W, c.H = x, y, width, height
	w.Conn.MoveResize(c.Win, x, y, uint32(width), uint32(height), uint32(c.BW))
	w.Conn.Sync()
}

// showHide walks the focus-history stack, moving visible clients to their
// stored position top-down (re-applying size hints to floating ones) and
// moving invisible clients off-screen bottom-up (dwm.c's showhide()).
func (w *World) showHide(c *store.Client) {
	if c == nil {
		return
	}
	if store.IsVisible(c) {
		w.Conn.Move(c.Win, c.X, c.Y)
		if (c.Mon.Lt[c.Mon.SelLt].Arrange == nil || c.IsFloating) && !c.IsFullscreen {
			w.resize(c, c.X, c.Y, c.W, c.H, false)
		}
		w.showHide(c.SNext())
	} else {
		w.showHide(c.SNext())
		w.Conn.Move(c.Win, -2*store.WidthOuter(c), c.Y)
	}
}

// Restack raises the selected client (if floating or fullscreen), stacks
// the bar below the top tiled client, and chains every tiled client above
// the one before it in arrange order (dwm.c's restack()).
func (w *World) Restack(m *store.Monitor) {
	w.RedrawBar(m)
	if m.Sel == nil {
		return
	}
	if m.Sel.IsFloating || m.Lt[m.SelLt].Arrange == nil {
		w.Conn.Raise(m.Sel.Win)
	}
	if m.Lt[m.SelLt].Arrange != nil {
		sibling := m.BarWin
		for c := m.Clients; c != nil; c = c.Next() {
			if !c.IsFloating && store.IsVisible(c) {
				w.Conn.RestackAbove(c.Win, sibling)
				sibling = c.Win
			}
		}
	}
	w.Conn.Sync()
}

// Focus sets c as the selected client on its monitor, unfocusing the
// previous selection, raising c to the top of the focus-history stack, and
// updating border colors and _NET_ACTIVE_WINDOW (dwm.c's focus()). A nil c
// falls back to the first visible client in the current stack, and clears
// focus entirely if none exists.
func (w *World) Focus(c *store.Client) {
	if c == nil || !store.IsVisible(c) {
		c = w.SelMon.FirstVisibleStacked()
	}
	if w.SelMon.Sel != nil && w.SelMon.Sel != c {
		w.unfocus(w.SelMon.Sel, false)
	}
	if c != nil {
		if c.Mon != w.SelMon {
			w.SelMon = c.Mon
		}
		if c.IsUrgent {
			w.SetUrgent(c, false)
		}
		store.DetachStack(c)
		store.AttachStack(c)
		w.GrabButtons(c, true)
		w.Conn.SetBorderPixel(c.Win, w.schemeSelPixel())
		w.setFocus(c)
	} else {
		w.Conn.SetInputFocus(w.Conn.Root)
		w.Conn.SetActiveWindow(w.Atoms, 0)
	}
	w.SelMon.Sel = c
	w.RedrawBars()
}

func (w *World) schemeSelPixel() uint32 { return w.schemeSel.Pixel(0) }

// unfocus reverts c's border to the normal scheme and, unless setFocus is
// false (the caller is about to focus something else immediately), clears
// input focus back to the root (dwm.c's unfocus()).
func (w *World) unfocus(c *store.Client, setFocus bool) {
	if c == nil {
		return
	}
	w.GrabButtons(c, false)
	w.Conn.SetBorderPixel(c.Win, w.schemeNorm.Pixel(0))
	if setFocus {
		w.Conn.SetInputFocus(w.Conn.Root)
		w.Conn.SetActiveWindow(w.Atoms, 0)
	}
}

// setFocus gives c input focus directly and publishes it as
// _NET_ACTIVE_WINDOW unless c declines input focus, and also sends
// WM_TAKE_FOCUS when c advertises that protocol (dwm.c's setfocus()).
func (w *World) setFocus(c *store.Client) {
	if !c.NeverFocus {
		w.Conn.SetInputFocus(c.Win)
		w.Conn.SetActiveWindow(w.Atoms, c.Win)
		w.Conn.SetWMState(c.Win, w.Atoms, x11StateNormal)
	}
	w.sendEvent(c, w.Atoms.WMTakeFocus)
}

const x11StateNormal = 1

// FocusStack moves selection forward (arg.I > 0) or backward (arg.I < 0)
// through the visible clients in arrange order, wrapping around, matching
// dwm.c's focusstack() including its backward-traversal fallback: when
// moving backward finds nothing visible before the current selection, it
// rescans the full list from the head and takes the last visible client.
func FocusStack(w *World, arg *Arg) {
	c := w.SelMon.Sel
	if c == nil || (c.IsFullscreen && w.Cfg.LockFullscreen) {
		return
	}
	var next *store.Client
	if arg.I > 0 {
		for i := c.Next(); i != nil; i = i.Next() {
			if store.IsVisible(i) {
				next = i
				break
			}
		}
		if next == nil {
			for i := w.SelMon.Clients; i != nil; i = i.Next() {
				if store.IsVisible(i) {
					next = i
					break
				}
			}
		}
	} else {
		var last *store.Client
		for i := w.SelMon.Clients; i != c; i = i.Next() {
			if store.IsVisible(i) {
				last = i
			}
		}
		if last == nil {
			for i := w.SelMon.Clients; i != nil; i = i.Next() {
				if store.IsVisible(i) {
					last = i
				}
			}
		}
		next = last
	}
	if next != nil {
		w.Focus(next)
		w.Restack(w.SelMon)
	}
}
