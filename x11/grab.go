package x11

import "github.com/jezek/xgb/xproto"

// lockMasks are the modifier combinations dwm.c's grabbuttons/grabkeys
// repeat a grab under, so bindings still fire with NumLock or CapsLock
// toggled on (dwm.c's "modifiers[] = {0, LockMask, numlockmask,
// numlockmask|LockMask}").
func (c *Conn) lockMasks() []uint16 {
	return []uint16{0, xproto.ModMaskLock, c.NumLockMask, c.NumLockMask | xproto.ModMaskLock}
}

// UpdateNumLockMask recomputes which modifier bit the server currently
// treats as NumLock (dwm.c's updatenumlockmask()). package wm runs it at
// setup and again on every keyboard or modifier MappingNotify.
func (c *Conn) UpdateNumLockMask() {
	modmap, err := xproto.GetModifierMapping(c.X.Conn()).Reply()
	if err != nil {
		return
	}
	mapping, err := xproto.GetKeyboardMapping(c.X.Conn(), c.X.Setup().MinKeycode,
		byte(int(c.X.Setup().MaxKeycode)-int(c.X.Setup().MinKeycode)+1)).Reply()
	if err != nil {
		return
	}
	numLockKeysym := uint32(0xff7f) // XK_Num_Lock
	for i := 0; i < 8; i++ {
		for j := 0; j < int(modmap.KeycodesPerModifier); j++ {
			kc := modmap.Keycodes[i*int(modmap.KeycodesPerModifier)+j]
			if kc == 0 {
				continue
			}
			idx := (int(kc) - int(c.X.Setup().MinKeycode)) * int(mapping.KeysymsPerKeycode)
			if idx < 0 || idx >= len(mapping.Keysyms) {
				continue
			}
			if uint32(mapping.Keysyms[idx]) == numLockKeysym {
				c.NumLockMask = 1 << uint(i)
			}
		}
	}
}

// GrabButton grabs button on win under every NumLock/CapsLock variant of
// mod, owner-events semantics matching dwm.c's grabbuttons() (sync
// pointer mode so button clicks still reach the client, async keyboard).
func (c *Conn) GrabButton(win xproto.Window, button xproto.Button, mod uint16, eventMask uint16) {
	for _, lock := range c.lockMasks() {
		xproto.GrabButton(c.X.Conn(), false, win, eventMask,
			xproto.GrabModeSync, xproto.GrabModeAsync, 0, 0, button, mod|lock)
	}
}

// UngrabButtons removes every button grab on win (dwm.c's grabbuttons()
// "XUngrabButton(dpy, AnyButton, AnyModifier, c->win)" before re-granting).
func (c *Conn) UngrabButtons(win xproto.Window) {
	xproto.UngrabButton(c.X.Conn(), xproto.ButtonIndexAny, win, xproto.ModMaskAny)
}

// GrabKey grabs a keycode under every NumLock/CapsLock variant of mod
// (dwm.c's grabkeys()).
func (c *Conn) GrabKey(win xproto.Window, keycode xproto.Keycode, mod uint16) {
	for _, lock := range c.lockMasks() {
		xproto.GrabKey(c.X.Conn(), true, win, mod|lock, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}

// UngrabAllKeys removes every key grab on win (dwm.c's grabkeys()
// "XUngrabKey(dpy, AnyKey, AnyModifier, root)" before re-granting).
func (c *Conn) UngrabAllKeys(win xproto.Window) {
	xproto.UngrabKey(c.X.Conn(), 0, win, xproto.ModMaskAny)
}

// KeysymToKeycode resolves a keysym to the keycode(s) that currently
// produce it (dwm.c's grabkeys() "XKeysymToKeycode").
func (c *Conn) KeysymToKeycode(keysym uint32) []xproto.Keycode {
	setup := c.X.Setup()
	count := int(setup.MaxKeycode) - int(setup.MinKeycode) + 1
	mapping, err := xproto.GetKeyboardMapping(c.X.Conn(), setup.MinKeycode, byte(count)).Reply()
	if err != nil {
		return nil
	}
	var out []xproto.Keycode
	per := int(mapping.KeysymsPerKeycode)
	for i := 0; i < count; i++ {
		for j := 0; j < per; j++ {
			idx := i*per + j
			if idx >= len(mapping.Keysyms) {
				continue
			}
			if uint32(mapping.Keysyms[idx]) == keysym {
				out = append(out, xproto.Keycode(int(setup.MinKeycode)+i))
			}
		}
	}
	return out
}

// GrabPointer starts an active pointer grab for an interactive move/resize
// (dwm.c's movemouse/resizemouse "XGrabPointer").
func (c *Conn) GrabPointer(cursor xproto.Cursor) bool {
	reply, err := xproto.GrabPointer(c.X.Conn(), false, c.Root,
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, cursor, xproto.TimeCurrentTime).Reply()
	return err == nil && reply != nil && reply.Status == xproto.GrabStatusSuccess
}

// UngrabPointer releases an active pointer grab.
func (c *Conn) UngrabPointer() {
	xproto.UngrabPointer(c.X.Conn(), xproto.TimeCurrentTime)
}
