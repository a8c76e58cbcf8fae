package wm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"github.com/delta1024/dwm/store"
	"github.com/delta1024/dwm/x11"
)

// Run is the main event loop: wait for an event or error, dispatch it,
// repeat until Quit is called (dwm.c's run()).
func (w *World) Run() {
	w.running = true
	for w.running {
		ev, err := w.Conn.X.Conn().WaitForEvent()
		if err != nil {
			x11.HandleError(err)
			continue
		}
		if ev == nil {
			w.running = false
			return
		}
		w.dispatch(ev)
	}
}

// dispatch is the O(1) event-type switch dwm.c implements as a function-
// pointer array indexed by event type; Go's type switch gives the same
// dispatch without the array.
func (w *World) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		w.onButtonPress(e)
	case xproto.ConfigureRequestEvent:
		w.onConfigureRequest(e)
	case xproto.ConfigureNotifyEvent:
		w.onConfigureNotify(e)
	case xproto.DestroyNotifyEvent:
		w.onDestroyNotify(e)
	case xproto.EnterNotifyEvent:
		w.onEnterNotify(e)
	case xproto.ExposeEvent:
		w.onExpose(e)
	case xproto.KeyPressEvent:
		w.onKeyPress(e)
	case xproto.MappingNotifyEvent:
		w.onMappingNotify(e)
	case xproto.MapRequestEvent:
		w.onMapRequest(e)
	case xproto.MotionNotifyEvent:
		w.onMotionNotify(e)
	case xproto.PropertyNotifyEvent:
		w.onPropertyNotify(e)
	case xproto.UnmapNotifyEvent:
		w.onUnmapNotify(e)
	case xproto.ClientMessageEvent:
		w.onClientMessage(e)
	default:
		log.WithField("event", ev).Trace("wm: unhandled event")
	}
}

func (w *World) onButtonPress(e xproto.ButtonPressEvent) {
	click := ClkRootWin
	arg := Arg{}
	if m := w.WinToMon(e.Event); m != w.SelMon {
		w.unfocus(w.SelMon.Sel, true)
		w.SelMon = m
		w.Focus(nil)
	}
	if m := w.monitorForBarWin(e.Event); m != nil {
		click, arg = w.barClickRegion(m, int(e.EventX))
	} else if c := w.wintoclient(e.Event); c != nil {
		w.Focus(c)
		w.Restack(w.SelMon)
		xproto.AllowEvents(w.Conn.X.Conn(), xproto.AllowReplayPointer, xproto.TimeCurrentTime)
		click = ClkClientWin
	}
	for _, b := range w.Buttons {
		if b.Click == click && b.Button == e.Detail && w.cleanMask(b.Mod) == w.cleanMask(e.State) {
			a := arg
			if click != ClkTagBar {
				a = b.Arg
			}
			b.Func(w, &a)
		}
	}
}

// barClickRegion replicates dwm.c's buttonpress() left-to-right scan over
// the bar: tag boxes, the layout symbol box, then either the status text
// (right-aligned) or the window title filling the remainder.
func (w *World) barClickRegion(m *store.Monitor, origX int) (ClickArea, Arg) {
	pad := int(w.Draw.LinePadding())
	x := origX
	for i, t := range w.Cfg.Tags {
		tw := int(w.Draw.GetTextWidth(t)) + pad
		if x < tw {
			return ClkTagBar, Arg{UI: 1 << uint(i)}
		}
		x -= tw
	}
	ltw := int(w.Draw.GetTextWidth(m.LtSymbol)) + pad
	if x < ltw {
		return ClkLtSymbol, Arg{}
	}
	if m == w.SelMon {
		statusW := int(w.Draw.GetTextWidth(w.statusText())) + pad
		if origX > m.WW-statusW {
			return ClkStatusText, Arg{}
		}
	}
	return ClkWinTitle, Arg{}
}

func (w *World) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	if c := w.wintoclient(e.Window); c != nil {
		if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
			c.BW = int(e.BorderWidth)
		} else if c.IsFloating || w.SelMon.Lt[w.SelMon.SelLt].Arrange == nil {
			m := c.Mon
			if e.ValueMask&xproto.ConfigWindowX != 0 {
				c.OldX, c.X = c.X, m.MX+int(e.X)
			}
			if e.ValueMask&xproto.ConfigWindowY != 0 {
				c.OldY, c.Y = c.Y, m.MY+int(e.Y)
			}
			if e.ValueMask&xproto.ConfigWindowWidth != 0 {
				c.OldW, c.W = c.W, int(e.Width)
			}
			if e.ValueMask&xproto.ConfigWindowHeight != 0 {
				c.OldH, c.H = c.H, int(e.Height)
			}
			if c.X+c.W > m.MX+m.MW && c.IsFloating {
				c.X = m.MX + (m.MW / 2) - (c.W / 2)
			}
			if c.Y+c.H > m.MY+m.MH && c.IsFloating {
				c.Y = m.MY + (m.MH / 2) - (c.H / 2)
			}
			if e.ValueMask&(xproto.ConfigWindowX|xproto.ConfigWindowY) != 0 &&
				e.ValueMask&(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight) == 0 {
				w.configureClient(c)
			}
			if store.IsVisible(c) {
				w.Conn.MoveResize(c.Win, c.X, c.Y, uint32(c.W), uint32(c.H), uint32(c.BW))
			}
		} else {
			w.configureClient(c)
		}
		return
	}
	w.Conn.MoveResize(e.Window, int(e.X), int(e.Y), uint32(e.Width), uint32(e.Height), uint32(e.BorderWidth))
}

func (w *World) onConfigureNotify(e xproto.ConfigureNotifyEvent) {
	if e.Window != w.Conn.Root {
		return
	}
	w.Conn.ScreenW, w.Conn.ScreenH = int(e.Width), int(e.Height)
	if err := w.updateGeometry(); err == nil {
		w.Draw.Resize(uint16(w.Conn.ScreenW), uint16(w.Conn.ScreenH))
		for m := w.Mons; m != nil; m = m.Next {
			for c := m.Clients; c != nil; c = c.Next() {
				if c.IsFullscreen {
					w.resizeClient(c, m.MX, m.MY, m.MW, m.MH)
				}
			}
			if m.BarWin != 0 {
				w.Conn.MoveResize(m.BarWin, m.WX, m.By, uint32(m.WW), uint32(w.Draw.BarHeight()), 0)
			}
		}
		w.Focus(nil)
		w.Arrange(nil)
	}
}

func (w *World) onDestroyNotify(e xproto.DestroyNotifyEvent) {
	if c := w.wintoclient(e.Window); c != nil {
		w.Unmanage(c, true)
	}
}

func (w *World) onEnterNotify(e xproto.EnterNotifyEvent) {
	if (e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior) && e.Event != w.Conn.Root {
		return
	}
	c := w.wintoclient(e.Event)
	var m = w.SelMon
	if c != nil {
		m = c.Mon
	} else {
		m = w.WinToMon(e.Event)
	}
	if m != w.SelMon {
		w.unfocus(w.SelMon.Sel, true)
		w.SelMon = m
	} else if c == nil || c == w.SelMon.Sel {
		return
	}
	w.Focus(c)
}

func (w *World) onExpose(e xproto.ExposeEvent) {
	if e.Count == 0 {
		if m := w.monitorForBarWin(e.Window); m != nil {
			w.RedrawBar(m)
		}
	}
}

func (w *World) onKeyPress(e xproto.KeyPressEvent) {
	keysym := w.keycodeToKeysym(e.Detail)
	w.KeyPress(keysym, e.State)
}

func (w *World) onMappingNotify(e xproto.MappingNotifyEvent) {
	if e.Request == xproto.MappingKeyboard || e.Request == xproto.MappingModifier {
		w.Conn.UpdateNumLockMask()
		w.GrabKeys()
	}
}

func (w *World) onMapRequest(e xproto.MapRequestEvent) {
	attrs, err := xproto.GetWindowAttributes(w.Conn.X.Conn(), e.Window).Reply()
	if err != nil || attrs == nil || attrs.OverrideRedirect {
		return
	}
	if w.wintoclient(e.Window) == nil {
		geom, err := xproto.GetGeometry(w.Conn.X.Conn(), xproto.Drawable(e.Window)).Reply()
		if err != nil {
			return
		}
		w.Manage(e.Window, int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height), int(geom.BorderWidth))
	}
}

func (w *World) onMotionNotify(e xproto.MotionNotifyEvent) {
	if e.Event != w.Conn.Root {
		return
	}
	if m := w.monitorAtPoint(int(e.RootX), int(e.RootY)); m != w.SelMon {
		w.unfocus(w.SelMon.Sel, true)
		w.SelMon = m
		w.Focus(nil)
	}
}

func (w *World) onPropertyNotify(e xproto.PropertyNotifyEvent) {
	if e.Window == w.Conn.Root {
		w.RedrawBars()
		return
	}
	c := w.wintoclient(e.Window)
	if c == nil {
		return
	}
	switch e.Atom {
	case xproto.AtomWmTransientFor:
		if t, ok := w.Conn.GetTransientFor(c.Win); ok && !c.IsFloating {
			if tc := w.wintoclient(t); tc != nil {
				c.IsFloating = true
				w.Arrange(c.Mon)
			}
		}
	case xproto.AtomWmNormalHints:
		c.HintsValid = false
	case xproto.AtomWmHints:
		w.updateWMHints(c)
		w.RedrawBars()
	case xproto.AtomWmName:
		w.updateTitle(c)
	default:
		if uint32(e.Atom) == w.Atoms.NetWMName {
			w.updateTitle(c)
		} else if uint32(e.Atom) == w.Atoms.NetWMWindowType {
			w.updateWindowType(c)
		}
	}
	if c == c.Mon.Sel {
		w.RedrawBar(c.Mon)
	}
}

func (w *World) onUnmapNotify(e xproto.UnmapNotifyEvent) {
	if c := w.wintoclient(e.Window); c != nil {
		if e.FromConfigure {
			return
		}
		w.Conn.SetWMState(c.Win, w.Atoms, 0)
		w.Unmanage(c, false)
	}
}

func (w *World) onClientMessage(e xproto.ClientMessageEvent) {
	c := w.wintoclient(e.Window)
	if c == nil {
		return
	}
	data := e.Data.Data32
	if uint32(e.Type) == w.Atoms.NetWMState && len(data) >= 2 {
		if data[1] == w.Atoms.NetWMFullscreen || (len(data) >= 3 && data[2] == w.Atoms.NetWMFullscreen) {
			want := data[0] == 1 || (data[0] == 2 && !c.IsFullscreen)
			w.SetFullscreen(c, want)
		}
	} else if uint32(e.Type) == w.Atoms.NetActiveWindow && c != w.SelMon.Sel && !c.IsUrgent {
		w.SetUrgent(c, true)
	}
}

func (w *World) updateTitle(c *store.Client) {
	name := w.Conn.GetWMName(c.Win)
	if name == "" {
		name = "broken"
	}
	c.Name = name
}

func (w *World) configureClient(c *store.Client) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            c.Win,
		Window:           c.Win,
		X:                int16(c.X),
		Y:                int16(c.Y),
		Width:            uint16(c.W),
		Height:           uint16(c.H),
		BorderWidth:      uint16(c.BW),
		OverrideRedirect: false,
	}
	xproto.SendEvent(w.Conn.X.Conn(), false, c.Win, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

func (w *World) monitorForBarWin(win xproto.Window) *store.Monitor {
	for m := w.Mons; m != nil; m = m.Next {
		if m.BarWin == win {
			return m
		}
	}
	return nil
}

// keycodeToKeysym resolves a keycode at group 0, shift level 0, matching
// the common case dwm.c relies on XKeycodeToKeysym(dpy, keycode, 0) for.
func (w *World) keycodeToKeysym(kc xproto.Keycode) uint32 {
	setup := w.Conn.X.Setup()
	mapping, err := xproto.GetKeyboardMapping(w.Conn.X.Conn(), kc, 1).Reply()
	if err != nil || len(mapping.Keysyms) == 0 {
		return 0
	}
	_ = setup
	return uint32(mapping.Keysyms[0])
}
