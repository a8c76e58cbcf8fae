// Package store holds the in-memory client/monitor graph: the per-window
// state record, the per-monitor state record, and the intrusive list
// helpers that keep both orderings (arrange order and focus-history order)
// consistent under arbitrary event sequences. Nothing in this package
// touches X11 — it is the pure data model spec §3 describes.
package store

import "github.com/jezek/xgb/xproto"

// SizeHints mirrors the ICCCM WM_NORMAL_HINTS fields dwm.c keeps directly on
// Client (basew/baseh/incw/inch/minw/minh/maxw/maxh/mina/maxa).
type SizeHints struct {
	BaseW, BaseH int
	IncW, IncH   int
	MinW, MinH   int
	MaxW, MaxH   int
	MinA, MaxA   float64
}

// Client is a managed top-level window (spec §3).
type Client struct {
	Win  xproto.Window
	Name string // last-known title; falls back to "broken"

	X, Y, W, H             int
	OldX, OldY, OldW, OldH int
	BW, OldBW              int

	Hints      SizeHints
	HintsValid bool

	Tags uint32

	IsFixed      bool
	IsFloating   bool
	IsUrgent     bool
	NeverFocus   bool
	OldState     bool // pre-fullscreen floating flag
	IsFullscreen bool

	Mon *Monitor // weak back-reference; owner is Mon.Clients

	next  *Client // arrange-order list link
	snext *Client // focus-history list link
}

// IsVisible reports whether c is visible on its monitor's selected tagset
// (dwm.c's ISVISIBLE macro).
func IsVisible(c *Client) bool {
	if c == nil || c.Mon == nil {
		return false
	}
	return c.Tags&c.Mon.TagSet[c.Mon.SelTags] != 0
}

// WidthOuter is dwm.c's WIDTH macro: content width plus both borders.
func WidthOuter(c *Client) int { return c.W + 2*c.BW }

// HeightOuter is dwm.c's HEIGHT macro: content height plus both borders.
func HeightOuter(c *Client) int { return c.H + 2*c.BW }

// NextTiled advances past floating and invisible clients, starting at c
// (dwm.c's nexttiled).
func NextTiled(c *Client) *Client {
	for c != nil && (c.IsFloating || !IsVisible(c)) {
		c = c.next
	}
	return c
}

// Next returns the next client in arrange order.
func (c *Client) Next() *Client { return c.next }

// SNext returns the next client in focus-history order.
func (c *Client) SNext() *Client { return c.snext }
