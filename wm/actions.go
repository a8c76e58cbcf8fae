package wm

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/jezek/xgb/xproto"

	"github.com/delta1024/dwm/common"
	"github.com/delta1024/dwm/store"
)

// View switches the selected monitor's visible tagset (dwm.c's view()). A
// UI of ^uint32(0) is the "view all" sentinel Cleanup uses.
func View(w *World, arg *Arg) {
	if arg.UI&common.TagMask(len(w.Cfg.Tags)) == w.SelMon.TagSet[w.SelMon.SelTags] {
		return
	}
	w.SelMon.SelTags ^= 1
	if arg.UI&common.TagMask(len(w.Cfg.Tags)) != 0 {
		w.SelMon.TagSet[w.SelMon.SelTags] = arg.UI & common.TagMask(len(w.Cfg.Tags))
	}
	w.Focus(nil)
	w.Arrange(w.SelMon)
}

// ToggleView flips the given tags in the current tagset on/off without
// discarding the rest (dwm.c's toggleview()).
func ToggleView(w *World, arg *Arg) {
	mask := w.SelMon.TagSet[w.SelMon.SelTags] ^ (arg.UI & common.TagMask(len(w.Cfg.Tags)))
	if mask == 0 {
		return
	}
	w.SelMon.TagSet[w.SelMon.SelTags] = mask
	w.Focus(nil)
	w.Arrange(w.SelMon)
}

// Tag moves the selected client onto the given tag set (dwm.c's tag()).
func Tag(w *World, arg *Arg) {
	c := w.SelMon.Sel
	if c == nil || arg.UI&common.TagMask(len(w.Cfg.Tags)) == 0 {
		return
	}
	c.Tags = arg.UI & common.TagMask(len(w.Cfg.Tags))
	w.Focus(nil)
	w.Arrange(w.SelMon)
}

// ToggleTag flips the given tags on the selected client (dwm.c's
// toggletag()).
func ToggleTag(w *World, arg *Arg) {
	c := w.SelMon.Sel
	if c == nil {
		return
	}
	mask := c.Tags ^ (arg.UI & common.TagMask(len(w.Cfg.Tags)))
	if mask == 0 {
		return
	}
	c.Tags = mask
	w.Focus(nil)
	w.Arrange(w.SelMon)
}

// FocusMon switches SelMon to the next/previous monitor in list order
// (dwm.c's focusmon()).
func FocusMon(w *World, arg *Arg) {
	next := w.dirToMon(arg.I)
	if next == w.SelMon {
		return
	}
	w.unfocus(w.SelMon.Sel, true)
	w.SelMon = next
	w.Focus(nil)
}

func (w *World) dirToMon(dir int) *store.Monitor {
	if w.Mons.Next == nil {
		return w.SelMon
	}
	if dir > 0 {
		if w.SelMon.Next != nil {
			return w.SelMon.Next
		}
		return w.Mons
	}
	if w.SelMon == w.Mons {
		p := w.Mons
		for p.Next != nil {
			p = p.Next
		}
		return p
	}
	for p := w.Mons; p != nil; p = p.Next {
		if p.Next == w.SelMon {
			return p
		}
	}
	return w.SelMon
}

// TagMon moves the selected client to the next/previous monitor, replacing
// its tags with that monitor's selected tagset (dwm.c's tagmon()).
func TagMon(w *World, arg *Arg) {
	c := w.SelMon.Sel
	if c == nil || w.Mons.Next == nil {
		return
	}
	w.sendMon(c, w.dirToMon(arg.I))
}

func (w *World) sendMon(c *store.Client, m *store.Monitor) {
	if c.Mon == m {
		return
	}
	w.unfocus(c, true)
	store.Detach(c)
	store.DetachStack(c)
	c.Mon = m
	c.Tags = m.TagSet[m.SelTags]
	store.Attach(c)
	store.AttachStack(c)
	w.Focus(nil)
	w.Arrange(nil)
}

// IncNMaster adjusts the master-area client count, floored at zero
// (dwm.c's incnmaster()).
func IncNMaster(w *World, arg *Arg) {
	w.SelMon.NMaster = common.MaxInt(w.SelMon.NMaster+arg.I, 0)
	w.Arrange(w.SelMon)
}

// SetMFact adjusts the master/stack split factor (dwm.c's setmfact()).
// arg.F below 1.0 is added to the current factor; arg.F of 1.0 or more is
// an absolute value plus 1.0. A result outside [0.05, 0.95] is rejected
// and leaves the factor unchanged.
func SetMFact(w *World, arg *Arg) {
	f := arg.F
	if f < 1.0 {
		f += w.SelMon.MFact
	} else {
		f -= 1.0
	}
	if f < 0.05 || f > 0.95 {
		return
	}
	w.SelMon.MFact = f
	w.Arrange(w.SelMon)
}

// SetLayout installs w.Layouts[arg.I] in the active layout slot, or swaps
// to the other slot when arg.I is out of range, then rearranges the
// monitor if it has a selected client and otherwise only redraws its bar
// (dwm.c's setlayout()).
func SetLayout(w *World, arg *Arg) {
	if arg.I < 0 || arg.I >= len(w.Layouts) {
		w.SelMon.SelLt ^= 1
	} else {
		w.SelMon.Lt[w.SelMon.SelLt] = &w.Layouts[arg.I]
	}
	w.SelMon.LtSymbol = w.SelMon.Lt[w.SelMon.SelLt].Symbol
	if w.SelMon.Sel != nil {
		w.Arrange(w.SelMon)
	} else {
		w.RedrawBar(w.SelMon)
	}
}

// Zoom promotes the selected client to the master slot, or demotes the
// current master if it was already selected (dwm.c's zoom()).
func Zoom(w *World, _ *Arg) {
	c := w.SelMon.Sel
	if w.SelMon.Lt[w.SelMon.SelLt].Arrange == nil || (c != nil && c.IsFloating) {
		return
	}
	if c == store.NextTiled(w.SelMon.Clients) {
		c = store.NextTiled(c.Next())
		if c == nil {
			return
		}
	}
	w.pop(c)
}

// pop moves c to the head of its monitor's client list and selects it
// (dwm.c's pop()).
func (w *World) pop(c *store.Client) {
	store.Detach(c)
	store.Attach(c)
	w.Focus(c)
	w.Arrange(c.Mon)
}

// ToggleFloating flips the selected client's floating flag (fixed-size
// clients always end up floating), re-applies its current geometry through
// size hints when it becomes floating, and refuses on fullscreen clients
// (dwm.c's togglefloating()).
func ToggleFloating(w *World, _ *Arg) {
	c := w.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	c.IsFloating = !c.IsFloating || c.IsFixed
	if c.IsFloating {
		w.resize(c, c.X, c.Y, c.W, c.H, false)
	}
	w.Arrange(c.Mon)
}

// ToggleBar shows/hides the bar on the selected monitor (dwm.c's
// togglebar()).
func ToggleBar(w *World, _ *Arg) {
	w.SelMon.ShowBar = !w.SelMon.ShowBar
	w.updateBarPos(w.SelMon)
	if w.SelMon.BarWin != 0 {
		if w.SelMon.ShowBar {
			w.Conn.Move(w.SelMon.BarWin, w.SelMon.WX, w.SelMon.By)
			w.Conn.Map(w.SelMon.BarWin)
		} else {
			w.Conn.Unmap(w.SelMon.BarWin)
		}
	}
	w.Arrange(w.SelMon)
}

// KillClient politely asks the selected client to close via
// WM_DELETE_WINDOW, falling back to a KillClient request (XKillClient)
// when it does not support that protocol (dwm.c's killclient()).
func KillClient(w *World, _ *Arg) {
	c := w.SelMon.Sel
	if c == nil {
		return
	}
	if !w.sendEvent(c, w.Atoms.WMDelete) {
		xproto.KillClient(w.Conn.X.Conn(), uint32(c.Win))
	}
}

// Spawn runs an external command in a new session, detached from the
// window manager process (dwm.c's spawn()). No SIGCHLD handler is
// installed; instead each started child is waited on in its own goroutine
// so it is reaped when it exits.
func Spawn(w *World, arg *Arg) {
	if len(arg.Str) == 0 {
		return
	}
	cmd := exec.Command(arg.Str[0], arg.Str[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Start(); err == nil {
		go func() { _ = cmd.Wait() }()
	}
}
