// Package layout implements the arrange functions that compute client
// geometry for a monitor: master/stack tiling and monocle (spec §4.3). It
// never touches X11 directly — each function is handed a store.ResizeFunc
// callback by package wm and calls back through it to apply the computed
// geometry, which keeps this package a pure, unit-testable geometry engine.
package layout

import (
	"fmt"

	"github.com/delta1024/dwm/store"
)

// Tile arranges m's visible, non-floating clients into a master column and
// a stack column (dwm.c's tile()). The master column holds up to
// m.NMaster clients stacked vertically at the left (taking the full width
// when there are no more tiled clients than m.NMaster); the remainder
// splits the rest of the
// work area. resize is expected to mutate c's geometry in place (after
// applying size hints), mirroring how dwm.c's resize() leaves c->h set to
// the post-hint height that the accumulators below read back.
func Tile(m *store.Monitor, resize store.ResizeFunc) {
	var n int
	for c := store.NextTiled(m.Clients); c != nil; c = store.NextTiled(c.Next()) {
		n++
	}
	if n == 0 {
		return
	}

	var mw int
	if n > m.NMaster {
		if m.NMaster != 0 {
			mw = int(float64(m.WW) * m.MFact)
		}
	} else {
		mw = m.WW
	}

	var i, my, ty int
	for c := store.NextTiled(m.Clients); c != nil; c = store.NextTiled(c.Next()) {
		if i < m.NMaster {
			h := (m.WH - my) / (min(n, m.NMaster) - i)
			resize(c, m.WX, m.WY+my, mw-2*c.BW, h-2*c.BW, false)
			if my+store.HeightOuter(c) < m.WH {
				my += store.HeightOuter(c)
			}
		} else {
			h := (m.WH - ty) / (n - i)
			resize(c, m.WX+mw, m.WY+ty, m.WW-mw-2*c.BW, h-2*c.BW, false)
			if ty+store.HeightOuter(c) < m.WH {
				ty += store.HeightOuter(c)
			}
		}
		i++
	}
}

// Monocle arranges every visible, non-floating client to fill the entire
// work area, stacked in z-order (dwm.c's monocle()). When any client is
// visible, m.LtSymbol is rewritten to "[N]", N being the number of visible
// clients, tiled or floating.
func Monocle(m *store.Monitor, resize store.ResizeFunc) {
	if n := m.VisibleCount(); n > 0 {
		m.LtSymbol = fmt.Sprintf("[%d]", n)
	}
	for c := store.NextTiled(m.Clients); c != nil; c = store.NextTiled(c.Next()) {
		resize(c, m.WX, m.WY, m.WW-2*c.BW, m.WH-2*c.BW, false)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
