package store

import "github.com/jezek/xgb/xproto"

// ResizeFunc is how a layout's arrange function asks the owning world to
// place a client: apply size hints, and if the result differs from the
// client's current geometry, issue the X configure request. Layout
// implementations never talk to X11 directly (spec §1 keeps the drawing and
// protocol plumbing as external collaborators); they call back through this
// function, supplied by package wm.
type ResizeFunc func(c *Client, x, y, w, h int, interact bool)

// ArrangeFunc computes and applies geometry for every visible, non-floating
// client on m. A nil ArrangeFunc means "floating layout" (spec §4.3): no
// tiling is performed, clients stay where they are.
type ArrangeFunc func(m *Monitor, resize ResizeFunc)

// Layout pairs a short display symbol with the function that arranges a
// monitor under it (dwm.c's Layout struct).
type Layout struct {
	Symbol  string
	Arrange ArrangeFunc
}

// Monitor is a single physical (or Xinerama-rect) screen's worth of window
// manager state (spec §3).
type Monitor struct {
	Num int

	MX, MY, MW, MH int // screen rectangle
	WX, WY, WW, WH int // work area (screen minus bar)

	By      int // bar y
	ShowBar bool
	TopBar  bool

	TagSet  [2]uint32
	SelTags int // 0 or 1

	MFact   float64
	NMaster int

	Lt       [2]*Layout
	SelLt    int
	LtSymbol string

	Clients *Client // arrange-order list head
	Stack   *Client // MRU focus-order list head
	Sel     *Client

	BarWin xproto.Window

	Next *Monitor
}

// Attach prepends c to c.Mon's client list (dwm.c's attach).
func Attach(c *Client) {
	c.next = c.Mon.Clients
	c.Mon.Clients = c
}

// Detach unlinks c from c.Mon's client list, preserving the stable relative
// order of the rest (dwm.c's detach).
func Detach(c *Client) {
	tc := &c.Mon.Clients
	for *tc != nil && *tc != c {
		tc = &(*tc).next
	}
	*tc = c.next
	c.next = nil
}

// AttachStack prepends c to c.Mon's focus-history stack (dwm.c's
// attachstack).
func AttachStack(c *Client) {
	c.snext = c.Mon.Stack
	c.Mon.Stack = c
}

// DetachStack unlinks c from c.Mon's focus-history stack. When c was the
// monitor's selected client, the new selection becomes the first visible
// client remaining in the stack, or nil (dwm.c's detachstack).
func DetachStack(c *Client) {
	tc := &c.Mon.Stack
	for *tc != nil && *tc != c {
		tc = &(*tc).snext
	}
	*tc = c.snext
	c.snext = nil

	if c == c.Mon.Sel {
		t := c.Mon.Stack
		for t != nil && !IsVisible(t) {
			t = t.snext
		}
		c.Mon.Sel = t
	}
}

// ClientCount returns the number of clients attached to m, visible or not.
func (m *Monitor) ClientCount() int {
	n := 0
	for c := m.Clients; c != nil; c = c.next {
		n++
	}
	return n
}

// VisibleCount returns the number of clients visible under m's current
// tagset, tiled or floating (dwm.c's monocle counts these for its [N]
// symbol).
func (m *Monitor) VisibleCount() int {
	n := 0
	for c := m.Clients; c != nil; c = c.next {
		if IsVisible(c) {
			n++
		}
	}
	return n
}

// FirstVisibleStacked returns the first visible client in m's focus-history
// stack, or nil.
func (m *Monitor) FirstVisibleStacked() *Client {
	for c := m.Stack; c != nil; c = c.snext {
		if IsVisible(c) {
			return c
		}
	}
	return nil
}
