package wm

import (
	"github.com/jezek/xgb/xproto"

	"github.com/delta1024/dwm/store"
	"github.com/delta1024/dwm/x11"
)

// updateSizeHints reads WM_NORMAL_HINTS into c's cached SizeHints via
// x11.Conn.GetNormalHints (backed by xgbutil/icccm), matching dwm.c's
// updatesizehints() field-by-field fallbacks (PBaseSize falls back to
// PMinSize and vice versa; PAspect feeds min/max aspect). A window is
// fixed-size when max equals min and both are nonzero.
func (w *World) updateSizeHints(c *store.Client) {
	c.HintsValid = true
	nh, ok := w.Conn.GetNormalHints(c.Win)
	if !ok {
		c.Hints = store.SizeHints{}
		c.IsFixed = false
		return
	}
	var h store.SizeHints
	if nh.Flags&x11.SizeHintPBaseSize != 0 {
		h.BaseW, h.BaseH = int(nh.BaseWidth), int(nh.BaseHeight)
	} else if nh.Flags&x11.SizeHintPMinSize != 0 {
		h.BaseW, h.BaseH = int(nh.MinWidth), int(nh.MinHeight)
	}
	if nh.Flags&x11.SizeHintPResizeInc != 0 {
		h.IncW, h.IncH = int(nh.WidthInc), int(nh.HeightInc)
	}
	if nh.Flags&x11.SizeHintPMaxSize != 0 {
		h.MaxW, h.MaxH = int(nh.MaxWidth), int(nh.MaxHeight)
	}
	if nh.Flags&x11.SizeHintPMinSize != 0 {
		h.MinW, h.MinH = int(nh.MinWidth), int(nh.MinHeight)
	} else if nh.Flags&x11.SizeHintPBaseSize != 0 {
		h.MinW, h.MinH = int(nh.BaseWidth), int(nh.BaseHeight)
	}
	if nh.Flags&x11.SizeHintPAspect != 0 {
		if nh.MinAspectNum != 0 {
			h.MinA = float64(nh.MinAspectDen) / float64(nh.MinAspectNum)
		}
		if nh.MaxAspectDen != 0 {
			h.MaxA = float64(nh.MaxAspectNum) / float64(nh.MaxAspectDen)
		}
	}
	c.Hints = h
	c.IsFixed = h.MaxW > 0 && h.MaxH > 0 && h.MaxW == h.MinW && h.MaxH == h.MinH
}

// updateWindowType applies _NET_WM_WINDOW_TYPE / _NET_WM_STATE, at manage
// time and on a _NET_WM_WINDOW_TYPE property change: a dialog gets
// floated, an already-fullscreen window is put into
// fullscreen immediately (dwm.c's updatewindowtype()).
func (w *World) updateWindowType(c *store.Client) {
	if w.Conn.GetFullscreenRequested(c.Win, w.Atoms) {
		w.SetFullscreen(c, true)
	}
	if w.Conn.GetWindowTypeDialog(c.Win, w.Atoms) {
		c.IsFloating = true
	}
}

// updateWMHints syncs urgency and NeverFocus from WM_HINTS (dwm.c's
// updatewmhints()); a window that is both the selected client and urgent
// has its urgency hint cleared immediately instead of surfacing it.
func (w *World) updateWMHints(c *store.Client) {
	urgent, hasInput, input := w.Conn.GetWMHintsUrgentInput(c.Win)
	if c == w.SelMon.Sel && urgent {
		urgent = false
		w.Conn.ClearUrgencyHint(c.Win)
	}
	c.IsUrgent = urgent
	if hasInput {
		c.NeverFocus = !input
	} else {
		c.NeverFocus = false
	}
}

// SetUrgent sets or clears a client's urgency flag and redraws the bars
// (dwm.c's seturgent()); the client's WM_HINTS property is not rewritten.
func (w *World) SetUrgent(c *store.Client, urgent bool) {
	c.IsUrgent = urgent
	w.RedrawBars()
}

// sendEvent delivers a ClientMessage for proto if the client advertises
// support for it via WM_PROTOCOLS (dwm.c's sendevent()).
func (w *World) sendEvent(c *store.Client, proto uint32) bool {
	if !w.Conn.GetWMProtocols(c.Win, xproto.Atom(proto)) {
		return false
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: c.Win,
		Type:   xproto.Atom(w.Atoms.WMProtocols),
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{proto, xproto.TimeCurrentTime, 0, 0, 0}),
	}
	xproto.SendEvent(w.Conn.X.Conn(), false, c.Win, xproto.EventMaskNoEvent, string(ev.Bytes()))
	return true
}

// SetFullscreen toggles fullscreen, saving/restoring the client's floating
// geometry and border, and preserving dwm.c's setfullscreen() zero-length
// _NET_WM_STATE payload when disabling fullscreen.
func (w *World) SetFullscreen(c *store.Client, fullscreen bool) {
	if fullscreen && !c.IsFullscreen {
		w.Conn.SetNetWMState(c.Win, w.Atoms, true)
		c.IsFullscreen = true
		c.OldState = c.IsFloating
		c.OldBW = c.BW
		c.BW = 0
		c.IsFloating = true
		w.resizeClient(c, c.Mon.MX, c.Mon.MY, c.Mon.MW, c.Mon.MH)
		w.Conn.Raise(c.Win)
	} else if !fullscreen && c.IsFullscreen {
		w.Conn.SetNetWMState(c.Win, w.Atoms, false)
		c.IsFullscreen = false
		c.IsFloating = c.OldState
		c.BW = c.OldBW
		c.X, c.Y, c.W, c.H = c.OldX, c.OldY, c.OldW, c.OldH
		w.resizeClient(c, c.X, c.Y, c.W, c.H)
		w.Arrange(c.Mon)
	}
}
