// Package wm is the generalized program_state: it owns the connection, the
// monitor/client graph, the event dispatch loop, and every user-facing
// action (view, tag, focus, move/resize, spawn). It is the only package
// that wires store, layout, config, x11, bar and draw together.
package wm

import (
	"github.com/jezek/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"github.com/delta1024/dwm/bar"
	"github.com/delta1024/dwm/common"
	"github.com/delta1024/dwm/config"
	"github.com/delta1024/dwm/draw"
	"github.com/delta1024/dwm/store"
	"github.com/delta1024/dwm/x11"
)

// Arg is the single argument passed to an ActionFunc, mirroring dwm.c's
// union Arg: exactly one field is meaningful per binding, selected by the
// action itself.
type Arg struct {
	I   int
	UI  uint32
	F   float64
	Str []string
}

// ActionFunc is a user-bindable action (dwm.c's "void (*func)(const Arg
// *arg)"), bound to the World it operates on.
type ActionFunc func(w *World, arg *Arg)

// Key is one keybinding entry (dwm.c's struct Key).
type Key struct {
	Mod     uint16
	Keysym  uint32
	Func    ActionFunc
	Arg     Arg
}

// Button is one pointer-button binding (dwm.c's struct Button). ClickArea
// restricts the binding to a bar region or the client area, matching
// dwm.c's ClkTagBar/ClkLtSymbol/ClkStatusText/ClkWinTitle/ClkClientWin/
// ClkRootWin enum.
type ClickArea int

const (
	ClkTagBar ClickArea = iota
	ClkLtSymbol
	ClkStatusText
	ClkWinTitle
	ClkClientWin
	ClkRootWin
)

type Button struct {
	Click   ClickArea
	Mod     uint16
	Button  xproto.Button
	Func    ActionFunc
	Arg     Arg
}

// World is the root object threading a connection through every handler
// and action, the direct generalization of dwm.c's static globals bundled
// into one program_state.
type World struct {
	Conn  *x11.Conn
	Atoms *x11.Atoms
	Draw  draw.Surface
	Cfg   config.Config

	Keys    []Key
	Buttons []Button
	Layouts []store.Layout

	Mons    *store.Monitor
	SelMon  *store.Monitor

	windows []xproto.Window // every managed window, in manage order

	schemeNorm draw.Scheme
	schemeSel  draw.Scheme

	cursorNormal draw.Cursor
	cursorResize draw.Cursor
	cursorMove   draw.Cursor

	screens x11.ScreenEnumerator

	running bool
}

// New constructs a World from an already-open connection and a fully
// resolved configuration. Setup still needs to run before it is usable.
func New(conn *x11.Conn, atoms *x11.Atoms, surface draw.Surface, cfg config.Config, screens x11.ScreenEnumerator) *World {
	return &World{
		Conn:    conn,
		Atoms:   atoms,
		Draw:    surface,
		Cfg:     cfg,
		screens: screens,
	}
}

// Setup performs the one-time bootstrap dwm.c's setup() does: allocate
// cursors and color schemes, compute the initial monitor geometry, create
// bar windows, advertise EWMH support, select the root event mask and grab
// the configured bindings, then focus nothing (dwm.c's setfocus(NULL)
// equivalent).
func (w *World) Setup() error {
	w.Conn.UpdateNumLockMask()

	var err error
	if w.cursorNormal, err = w.loadCursor(x11.CursorNormal); err != nil {
		return err
	}
	if w.cursorResize, err = w.loadCursor(x11.CursorResize); err != nil {
		return err
	}
	if w.cursorMove, err = w.loadCursor(x11.CursorMove); err != nil {
		return err
	}

	if w.schemeNorm, err = w.Draw.SchemeCreate([3]string{w.Cfg.ColNormFg, w.Cfg.ColNormBg, w.Cfg.ColNormBorder}); err != nil {
		return err
	}
	if w.schemeSel, err = w.Draw.SchemeCreate([3]string{w.Cfg.ColSelFg, w.Cfg.ColSelBg, w.Cfg.ColSelBorder}); err != nil {
		return err
	}
	if err = w.Draw.FontSetCreate(w.Cfg.Fonts); err != nil {
		return err
	}

	if err := w.updateGeometry(); err != nil {
		return err
	}
	w.updateBars()

	w.Conn.SetSupported(w.Atoms)
	w.Conn.SelectInput(w.Conn.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify|
			xproto.EventMaskButtonPress|xproto.EventMaskPointerMotion|
			xproto.EventMaskEnterWindow|xproto.EventMaskLeaveWindow|
			xproto.EventMaskStructureNotify|xproto.EventMaskPropertyChange)

	w.GrabKeys()
	w.Focus(nil)

	log.Info("wm: setup complete")
	return nil
}

func (w *World) loadCursor(glyph uint16) (draw.Cursor, error) {
	return w.Draw.CursorCreate(glyph), nil
}

// Cleanup tears down every managed client and frees allocated resources
// (dwm.c's cleanup()).
func (w *World) Cleanup() {
	View(w, &Arg{UI: ^uint32(0)})
	if w.SelMon != nil {
		w.SelMon.Lt[w.SelMon.SelLt] = &store.Layout{}
	}
	for m := w.Mons; m != nil; m = m.Next {
		for m.Stack != nil {
			w.Unmanage(m.Stack, false)
		}
	}
	w.Conn.UngrabAllKeys(w.Conn.Root)
	for m := w.Mons; m != nil; m = m.Next {
		w.cleanupMon(m)
	}
	w.Draw.CursorFree(w.cursorNormal)
	w.Draw.CursorFree(w.cursorResize)
	w.Draw.CursorFree(w.cursorMove)
	w.Conn.SetActiveWindow(w.Atoms, 0)
}

func (w *World) cleanupMon(m *store.Monitor) {
	if m == w.Mons {
		w.Mons = m.Next
	} else {
		for p := w.Mons; p != nil; p = p.Next {
			if p.Next == m {
				p.Next = m.Next
				break
			}
		}
	}
	if m.BarWin != 0 {
		w.Conn.Unmap(m.BarWin)
		w.Conn.Destroy(m.BarWin)
	}
}

// Quit stops the Run loop (dwm.c's quit()).
func Quit(w *World, _ *Arg) { w.running = false }

// updateGeometry wraps the store monitor list around whatever the screen
// enumerator reports, creating Monitor records for new heads and updating
// the geometry of existing ones (dwm.c's updategeom()). Monitors are never
// removed: when fewer heads are reported, the surplus Monitor records stay
// in the list with their old geometry and keep their clients.
func (w *World) updateGeometry() error {
	rects, err := w.screens.Screens()
	if err != nil || len(rects) == 0 {
		rects = []common.Rect{{X: 0, Y: 0, W: w.Conn.ScreenW, H: w.Conn.ScreenH}}
	}
	for i, r := range rects {
		m := w.monitorAt(i)
		if m == nil {
			m = w.createMonitor()
			m.Next = nil
			w.appendMonitor(m)
		}
		m.MX, m.MY, m.MW, m.MH = r.X, r.Y, r.W, r.H
		w.updateBarPos(m)
	}
	if w.SelMon == nil {
		w.SelMon = w.Mons
	}
	return nil
}

func (w *World) monitorAt(i int) *store.Monitor {
	n := 0
	for m := w.Mons; m != nil; m = m.Next {
		if n == i {
			return m
		}
		n++
	}
	return nil
}

func (w *World) appendMonitor(m *store.Monitor) {
	if w.Mons == nil {
		w.Mons = m
		return
	}
	p := w.Mons
	for p.Next != nil {
		p = p.Next
	}
	p.Next = m
}

func (w *World) createMonitor() *store.Monitor {
	m := &store.Monitor{
		TagSet:   [2]uint32{1, 1},
		MFact:    w.Cfg.MFact,
		NMaster:  w.Cfg.NMaster,
		ShowBar:  w.Cfg.ShowBar,
		TopBar:   w.Cfg.TopBar,
		LtSymbol: "[]=",
	}
	if len(w.Layouts) > 0 {
		m.Lt[0] = &w.Layouts[0]
	} else {
		m.Lt[0] = &store.Layout{}
	}
	if len(w.Layouts) > 1 {
		m.Lt[1] = &w.Layouts[1]
	} else {
		m.Lt[1] = &store.Layout{}
	}
	m.LtSymbol = m.Lt[0].Symbol
	return m
}

// updateBarPos positions a monitor's bar window and derives its work area
// from the bar height (dwm.c's updatebarpos()).
func (w *World) updateBarPos(m *store.Monitor) {
	m.WY = m.MY
	m.WH = m.MH
	if m.ShowBar {
		bh := int(w.Draw.BarHeight())
		m.WH -= bh
		if m.TopBar {
			m.By = m.WY
			m.WY += bh
		} else {
			m.By = m.WY + m.WH
		}
	} else {
		m.By = -int(w.Draw.BarHeight())
	}
	m.WX, m.WW = m.MX, m.MW
}

// updateBars creates a bar window for every monitor that doesn't have one
// yet (dwm.c's updatebars()).
func (w *World) updateBars() {
	for m := w.Mons; m != nil; m = m.Next {
		if m.BarWin != 0 {
			continue
		}
		win, err := w.Conn.CreateSimpleWindow(m.WX, m.By, uint16(m.WW), w.Draw.BarHeight(), w.schemeNorm.Pixel(1))
		if err != nil {
			continue
		}
		m.BarWin = win
		if m.ShowBar {
			w.Conn.Map(win)
		}
	}
}

// RedrawBar delegates a single monitor's bar contents to package bar,
// passing in exactly the read-only snapshot it needs (dwm.c's drawbar()).
func (w *World) RedrawBar(m *store.Monitor) {
	bar.Draw(w.Draw, m, w.Cfg.Tags, w.schemeNorm, w.schemeSel, m == w.SelMon, w.statusText)
}

// RedrawBars redraws every monitor's bar (dwm.c's drawbars()).
func (w *World) RedrawBars() {
	for m := w.Mons; m != nil; m = m.Next {
		w.RedrawBar(m)
	}
}

// statusText is the root window's WM_NAME, the status line external tools
// set by writing to it (dwm.c's updatestatus(), status spawning itself is
// out of scope per spec §1).
func (w *World) statusText() string {
	name := w.Conn.GetWMName(w.Conn.Root)
	if name == "" {
		return "dwm"
	}
	return name
}
