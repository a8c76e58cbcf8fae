package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// CheckOtherWM reports whether another window manager already owns
// substructure-redirect on the root window, matching dwm.c's
// checkotherwm()/xerrorstart(): briefly select SubstructureRedirect on
// root and see whether the server answers with a BadAccess.
func (c *Conn) CheckOtherWM() error {
	cookie := xproto.ChangeWindowAttributesChecked(c.X.Conn(), c.Root,
		xproto.CwEventMask, []uint32{xproto.EventMaskSubstructureRedirect})
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("x11: another window manager is already running: %w", err)
	}
	return nil
}
