package wm

import (
	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"github.com/delta1024/dwm/common"
	"github.com/delta1024/dwm/store"
)

// Manage begins managing win: applies matching rules, clamps it onto a
// monitor, records its geometry, updates size hints and window type,
// attaches it to both lists, maps it and gives it focus (dwm.c's
// manage()).
func (w *World) Manage(win xproto.Window, x, y, width, height, borderWidth int) {
	c := &store.Client{Win: win, X: x, Y: y, W: width, H: height, OldBW: borderWidth}
	c.BW = w.Cfg.BorderPx

	c.Mon = w.SelMon
	transientFor, hasTransient := w.Conn.GetTransientFor(win)
	var transientParent *store.Client
	if hasTransient {
		transientParent = w.wintoclient(transientFor)
	}
	if transientParent != nil {
		c.Mon = transientParent.Mon
		c.Tags = transientParent.Tags
	} else {
		w.applyRules(c)
	}

	if c.X+store.WidthOuter(c) > c.Mon.WX+c.Mon.WW {
		c.X = c.Mon.WX + c.Mon.WW - store.WidthOuter(c)
	}
	if c.Y+store.HeightOuter(c) > c.Mon.WY+c.Mon.WH {
		c.Y = c.Mon.WY + c.Mon.WH - store.HeightOuter(c)
	}
	if c.X < c.Mon.WX {
		c.X = c.Mon.WX
	}
	if c.Y < c.Mon.WY {
		c.Y = c.Mon.WY
	}

	w.Conn.SetBorderWidth(win, uint32(c.BW))
	w.Conn.SetBorderPixel(win, w.schemeNorm.Pixel(0))
	w.Conn.MoveResize(win, c.X-2*c.BW, c.Y-2*c.BW, uint32(c.W), uint32(c.H), uint32(c.BW))
	w.Conn.Sync()
	w.Conn.SetWMState(win, w.Atoms, 1)

	w.updateWindowType(c)
	w.updateSizeHints(c)
	w.updateWMHints(c)
	c.Name = w.Conn.GetWMName(win)
	if c.Name == "" {
		c.Name = "broken"
	}

	w.Conn.SelectInput(win, xproto.EventMaskEnterWindow|xproto.EventMaskFocusChange|
		xproto.EventMaskPropertyChange|xproto.EventMaskStructureNotify)

	if !c.IsFloating {
		c.IsFloating = hasTransient || c.IsFixed
		c.OldState = c.IsFloating
	}
	if c.IsFloating {
		w.Conn.Raise(c.Win)
	}

	store.Attach(c)
	store.AttachStack(c)
	w.windows = append(w.windows, c.Win)
	w.Conn.AppendNetClientList(w.Atoms, c.Win)
	w.Conn.MoveResize(win, c.X, c.Y, uint32(c.W), uint32(c.H), uint32(c.BW))
	w.Conn.Map(win)
	w.Arrange(c.Mon)
	w.Focus(c)

	log.WithFields(log.Fields{"win": win, "name": c.Name}).Debug("wm: managed client")
}

// Unmanage stops managing c; unless the window was already destroyed, it
// restores its border width, drops its button grabs and marks it withdrawn
// (dwm.c's unmanage()).
func (w *World) Unmanage(c *store.Client, destroyed bool) {
	m := c.Mon
	store.Detach(c)
	store.DetachStack(c)
	if !destroyed {
		w.Conn.SetBorderWidth(c.Win, uint32(c.OldBW))
		w.Conn.UngrabButtons(c.Win)
		w.Conn.SetWMState(c.Win, w.Atoms, 0)
		w.Conn.Sync()
	}
	w.windows = removeWindow(w.windows, c.Win)
	w.Arrange(m)
	w.Focus(nil)
	w.updateClientList()
}

// updateClientList rebuilds _NET_CLIENT_LIST from every monitor's client
// list, in monitor order and arrange order (dwm.c's updateclientlist()).
func (w *World) updateClientList() {
	var wins []xproto.Window
	for m := w.Mons; m != nil; m = m.Next {
		for c := m.Clients; c != nil; c = c.Next() {
			wins = append(wins, c.Win)
		}
	}
	w.Conn.RewriteNetClientList(w.Atoms, wins)
}

func (w *World) wintoclient(win xproto.Window) *store.Client {
	if win == 0 {
		return nil
	}
	for m := w.Mons; m != nil; m = m.Next {
		for c := m.Clients; c != nil; c = c.Next() {
			if c.Win == win {
				return c
			}
		}
	}
	return nil
}

// WinToMon finds the monitor a root-relative point, or a known client
// window, belongs to (dwm.c's wintomon()).
func (w *World) WinToMon(win xproto.Window) *store.Monitor {
	if win == w.Conn.Root {
		if x, y, ok := w.Conn.QueryPointer(); ok {
			return w.monitorAtPoint(x, y)
		}
	}
	if c := w.wintoclient(win); c != nil {
		return c.Mon
	}
	return w.SelMon
}

func (w *World) monitorAtPoint(x, y int) *store.Monitor {
	for m := w.Mons; m != nil; m = m.Next {
		if x >= m.WX && x < m.WX+m.WW && y >= m.WY && y < m.WY+m.WH {
			return m
		}
	}
	return w.SelMon
}

// applyRules matches c against every configured rule in order, OR-ing
// together the tags of every matching rule while the last match decides
// floating state and monitor (dwm.c's applyrules()).
func (w *World) applyRules(c *store.Client) {
	c.IsFloating = false
	c.Tags = 0
	class, instance := w.Conn.GetClassHint(c.Win)
	name := w.Conn.GetWMName(c.Win)

	for _, r := range w.Cfg.Rules {
		if (r.Title == "" || contains(name, r.Title)) &&
			(r.Class == "" || contains(class, r.Class)) &&
			(r.Instance == "" || contains(instance, r.Instance)) {
			c.IsFloating = r.IsFloating
			c.Tags |= r.Tags
			if r.MonitorHint >= 0 {
				if m := w.monitorNum(r.MonitorHint); m != nil {
					c.Mon = m
				}
			}
		}
	}
	if c.Tags != 0 {
		c.Tags &= common.TagMask(len(w.Cfg.Tags))
	} else {
		c.Tags = c.Mon.TagSet[c.Mon.SelTags]
	}
}

func (w *World) monitorNum(n int) *store.Monitor {
	i := 0
	for m := w.Mons; m != nil; m = m.Next {
		if i == n {
			return m
		}
		i++
	}
	return nil
}

func contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return indexOf(haystack, needle) >= 0
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

func removeWindow(s []xproto.Window, w xproto.Window) []xproto.Window {
	out := s[:0]
	for _, x := range s {
		if x != w {
			out = append(out, x)
		}
	}
	return out
}
