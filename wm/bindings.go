package wm

import (
	"github.com/jezek/xgb/xproto"

	"github.com/delta1024/dwm/store"
)

// GrabKeys re-grabs every configured keybinding on root, replacing any
// previous grab set (dwm.c's grabkeys()).
func (w *World) GrabKeys() {
	w.Conn.UngrabAllKeys(w.Conn.Root)
	for _, k := range w.Keys {
		for _, kc := range w.Conn.KeysymToKeycode(k.Keysym) {
			w.Conn.GrabKey(w.Conn.Root, kc, k.Mod)
		}
	}
}

// GrabButtons replaces c's button grabs (dwm.c's grabbuttons()). An
// unfocused client gets one grab on any button with any modifier, so a
// click on it can focus it first; a focused client gets only the
// configured ClkClientWin bindings.
func (w *World) GrabButtons(c *store.Client, focused bool) {
	w.Conn.UngrabButtons(c.Win)
	if !focused {
		w.Conn.GrabButton(c.Win, xproto.ButtonIndexAny, xproto.ModMaskAny,
			uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease))
		return
	}
	for _, b := range w.Buttons {
		if b.Click == ClkClientWin {
			w.Conn.GrabButton(c.Win, b.Button, b.Mod,
				uint16(xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease))
		}
	}
}

// KeyPress matches a key event against the configured table and runs its
// action (dwm.c's keypress()).
func (w *World) KeyPress(keysym uint32, state uint16) {
	for _, k := range w.Keys {
		if k.Keysym == keysym && w.cleanMask(state) == w.cleanMask(k.Mod) && k.Func != nil {
			arg := k.Arg
			k.Func(w, &arg)
			return
		}
	}
}

// cleanMask strips NumLock/CapsLock/Lock from a modifier state so bindings
// compare only against the modifiers they actually care about (dwm.c's
// CLEANMASK macro).
func (w *World) cleanMask(mask uint16) uint16 {
	const allModifiers = xproto.ModMaskShift | xproto.ModMaskControl |
		xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5
	return mask &^ (w.Conn.NumLockMask | xproto.ModMaskLock) & allModifiers
}
