package wm

import "github.com/jezek/xgb/xproto"

// Scan walks the existing window tree at startup and manages every mapped,
// non-override-redirect top-level window, transient windows last so their
// WM_TRANSIENT_FOR lookups can find an already-managed parent (dwm.c's
// scan()).
func (w *World) Scan() {
	tree, err := xproto.QueryTree(w.Conn.X.Conn(), w.Conn.Root).Reply()
	if err != nil {
		return
	}
	var transients []xproto.Window
	for _, win := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(w.Conn.X.Conn(), win).Reply()
		if err != nil || attrs == nil || attrs.OverrideRedirect {
			continue
		}
		if _, ok := w.Conn.GetTransientFor(win); ok {
			transients = append(transients, win)
			continue
		}
		if attrs.MapState == xproto.MapStateViewable || w.Conn.GetWMState(win) == int(normalStateIconic) {
			w.manageExisting(win)
		}
	}
	for _, win := range transients {
		attrs, err := xproto.GetWindowAttributes(w.Conn.X.Conn(), win).Reply()
		if err != nil || attrs == nil {
			continue
		}
		if attrs.MapState == xproto.MapStateViewable || w.Conn.GetWMState(win) == int(normalStateIconic) {
			w.manageExisting(win)
		}
	}
}

const normalStateIconic = 3

func (w *World) manageExisting(win xproto.Window) {
	geom, err := xproto.GetGeometry(w.Conn.X.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return
	}
	w.Manage(win, int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height), int(geom.BorderWidth))
}
