// Package drawx is a minimal concrete implementation of draw.Surface using
// core X11 text and graphics-context primitives (no Xft) — good enough to
// drive a real bar, standing in for the genuinely external drawing
// library spec §1/§6 scope out of the core window-manager packages. A
// production build can swap this for an Xft-backed surface without
// touching package bar or package wm, since both only see draw.Surface.
package drawx

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"

	"github.com/delta1024/dwm/draw"
)

// Surface is the xgb-backed draw.Surface implementation.
type Surface struct {
	x    *xgbutil.XUtil
	win  xproto.Window
	gc   xproto.Gcontext
	font xproto.Font

	w, h       uint16
	lineHeight uint16
	cur        *scheme
}

type scheme struct {
	pixels [3]uint32
}

func (s *scheme) Pixel(c draw.Col) uint32 { return s.pixels[c] }

type cursor struct{ id xproto.Cursor }

func (c *cursor) XID() xproto.Cursor { return c.id }

// New creates a drawing surface backed by win, an already-created window
// of the given initial size (dwm.c's drw_create()).
func New(x *xgbutil.XUtil, win xproto.Window, w, h uint16) (*Surface, error) {
	gc, err := xproto.NewGcontextId(x.Conn())
	if err != nil {
		return nil, err
	}
	xproto.CreateGC(x.Conn(), gc, xproto.Drawable(win), 0, nil)
	return &Surface{x: x, win: win, gc: gc, w: w, h: h, lineHeight: 16}, nil
}

func (s *Surface) Resize(w, h uint16) { s.w, s.h = w, h }

func (s *Surface) FontSetCreate(fonts []string) error {
	if len(fonts) == 0 {
		return fmt.Errorf("drawx: no fonts given")
	}
	fid, err := xproto.NewFontId(s.x.Conn())
	if err != nil {
		return err
	}
	name := fonts[0]
	if err := xproto.OpenFontChecked(s.x.Conn(), fid, uint16(len(name)), name).Check(); err != nil {
		// Fall back to a guaranteed core font name rather than failing
		// setup outright (dwm.c's drw_fontset_create dies here; we prefer
		// a usable bar over no bar).
		name = "fixed"
		if err := xproto.OpenFontChecked(s.x.Conn(), fid, uint16(len(name)), name).Check(); err != nil {
			return err
		}
	}
	s.font = fid
	xproto.ChangeGC(s.x.Conn(), s.gc, xproto.GcFont, []uint32{uint32(fid)})
	reply, err := xproto.QueryFont(s.x.Conn(), xproto.Fontable(fid)).Reply()
	if err == nil && reply != nil {
		s.lineHeight = uint16(reply.FontAscent + reply.FontDescent)
	}
	return nil
}

func (s *Surface) GetTextWidth(text string) uint16 {
	reply, err := xproto.QueryTextExtents(s.x.Conn(), xproto.Fontable(s.font), str16(text)).Reply()
	if err != nil || reply == nil {
		return uint16(len(text) * 6)
	}
	return uint16(reply.OverallWidth)
}

func (s *Surface) LinePadding() uint16 { return s.lineHeight }
func (s *Surface) BarHeight() uint16   { return s.lineHeight + 2 }

func (s *Surface) SchemeCreate(colors [3]string) (draw.Scheme, error) {
	sch := &scheme{}
	for i, name := range colors {
		pixel, err := allocNamedColor(s.x, name)
		if err != nil {
			return nil, err
		}
		sch.pixels[i] = pixel
	}
	return sch, nil
}

func (s *Surface) SetScheme(sc draw.Scheme) {
	if cs, ok := sc.(*scheme); ok {
		s.cur = cs
	}
}

func (s *Surface) Text(x, y int, w, h uint16, pad uint16, text string, invert bool) int {
	fg, bg := draw.ColFg, draw.ColBg
	if invert {
		fg, bg = draw.ColBg, draw.ColFg
	}
	if s.cur != nil {
		xproto.ChangeGC(s.x.Conn(), s.gc, xproto.GcForeground, []uint32{s.cur.Pixel(bg)})
		xproto.PolyFillRectangle(s.x.Conn(), xproto.Drawable(s.win), s.gc,
			[]xproto.Rectangle{{X: int16(x), Y: int16(y), Width: w, Height: h}})
		xproto.ChangeGC(s.x.Conn(), s.gc, xproto.GcForeground, []uint32{s.cur.Pixel(fg)})
	}
	baseline := y + int(h-s.lineHeight)/2 + int(s.lineHeight) - 2
	xproto.ImageText8(s.x.Conn(), byte(len(text)), xproto.Drawable(s.win), s.gc,
		int16(x)+int16(pad), int16(baseline), text)
	return x + int(w)
}

func (s *Surface) Rect(x, y int, w, h uint16, filled, invert bool) {
	col := draw.ColFg
	if invert {
		col = draw.ColBg
	}
	if s.cur == nil {
		return
	}
	xproto.ChangeGC(s.x.Conn(), s.gc, xproto.GcForeground, []uint32{s.cur.Pixel(col)})
	rect := xproto.Rectangle{X: int16(x), Y: int16(y), Width: w, Height: h}
	if filled {
		xproto.PolyFillRectangle(s.x.Conn(), xproto.Drawable(s.win), s.gc, []xproto.Rectangle{rect})
	} else {
		xproto.PolyRectangle(s.x.Conn(), xproto.Drawable(s.win), s.gc, []xproto.Rectangle{rect})
	}
}

func (s *Surface) Map(win xproto.Window, x, y int, w, h uint16) {
	xproto.CopyArea(s.x.Conn(), xproto.Drawable(s.win), xproto.Drawable(win), s.gc,
		int16(x), int16(y), int16(x), int16(y), w, h)
}

func (s *Surface) CursorCreate(shape uint16) draw.Cursor {
	fid, err := xproto.NewFontId(s.x.Conn())
	if err != nil {
		return &cursor{}
	}
	xproto.OpenFont(s.x.Conn(), fid, uint16(len("cursor")), "cursor")
	cid, err := xproto.NewCursorId(s.x.Conn())
	if err != nil {
		return &cursor{}
	}
	xproto.CreateGlyphCursor(s.x.Conn(), cid, fid, fid, shape, shape+1, 0, 0, 0, 0xffff, 0xffff, 0xffff)
	xproto.CloseFont(s.x.Conn(), fid)
	return &cursor{id: cid}
}

func (s *Surface) CursorFree(c draw.Cursor) {
	if cur, ok := c.(*cursor); ok && cur.id != 0 {
		xproto.FreeCursor(s.x.Conn(), cur.id)
	}
}

func str16(text string) []xproto.Char2b {
	out := make([]xproto.Char2b, len(text))
	for i, b := range []byte(text) {
		out[i] = xproto.Char2b{Byte1: 0, Byte2: b}
	}
	return out
}

func allocNamedColor(x *xgbutil.XUtil, name string) (uint32, error) {
	screen := x.Screen()
	reply, err := xproto.AllocNamedColor(x.Conn(), screen.DefaultColormap, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Pixel, nil
}
