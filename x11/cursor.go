package x11

import "github.com/jezek/xgb/xproto"

// Standard cursor font glyph indices dwm.c loads via XCreateFontCursor
// (X11/cursorfont.h): XC_left_ptr, XC_sizing, XC_fleur.
const (
	CursorNormal = 68
	CursorResize = 120
	CursorMove   = 52
)

// CreateFontCursor loads a glyph from the X core cursor font (dwm.c's
// drw_cur_create, modeled here directly on Conn since cursor allocation is
// a connection-level resource, not a drawing-surface one).
func (c *Conn) CreateFontCursor(glyph uint16) (xproto.Cursor, error) {
	fid, err := xproto.NewFontId(c.X.Conn())
	if err != nil {
		return 0, err
	}
	xproto.OpenFont(c.X.Conn(), fid, uint16(len("cursor")), "cursor")
	cid, err := xproto.NewCursorId(c.X.Conn())
	if err != nil {
		return 0, err
	}
	xproto.CreateGlyphCursor(c.X.Conn(), cid, fid, fid, glyph, glyph+1,
		0, 0, 0, 0xffff, 0xffff, 0xffff)
	xproto.CloseFont(c.X.Conn(), fid)
	return cid, nil
}

// FreeCursor releases a cursor allocated by CreateFontCursor.
func (c *Conn) FreeCursor(cur xproto.Cursor) {
	xproto.FreeCursor(c.X.Conn(), cur)
}
