package layout

import "github.com/delta1024/dwm/store"

// ApplySizeHints clamps a proposed x/y/w/h against c's WM_NORMAL_HINTS and
// keeps the position on screen: against the root dimensions sw/sh when
// interact is true, otherwise against the work area m. It follows dwm.c's
// applysizehints() sequence, including the baseismin branch, which decides
// whether the base size is subtracted before or after the aspect-ratio
// clamp. The size floor is 1 pixel; no bar-height minimum is applied. When
// c.HintsValid is false the hint math is skipped and the clamped rectangle
// is returned as is. Hint clamping itself only runs when resizeHints is
// set, c is floating, or hasArrange is false (the monitor's current layout
// is floating), matching dwm.c's
// "resizehints || c->isfloating || !c->mon->lt[c->mon->sellt]->arrange".
func ApplySizeHints(c *store.Client, x, y, w, h int, interact bool, m WorkArea, sw, sh int, resizeHints, hasArrange bool) (nx, ny, nw, nh int) {
	nx, ny, nw, nh = x, y, w, h

	if w < 1 {
		nw = 1
	} else {
		nw = w
	}
	if h < 1 {
		nh = 1
	} else {
		nh = h
	}

	if interact {
		if nx > sw {
			nx = sw - store.WidthOuter(c)
		}
		if ny > sh {
			ny = sh - store.HeightOuter(c)
		}
		if nx+nw+2*c.BW < 0 {
			nx = 0
		}
		if ny+nh+2*c.BW < 0 {
			ny = 0
		}
	} else {
		if nx >= m.X+m.W {
			nx = m.X + m.W - store.WidthOuter(c)
		}
		if ny >= m.Y+m.H {
			ny = m.Y + m.H - store.HeightOuter(c)
		}
		if nx+nw+2*c.BW <= m.X {
			nx = m.X
		}
		if ny+nh+2*c.BW <= m.Y {
			ny = m.Y
		}
	}

	if nh < 1 {
		nh = 1
	}
	if nw < 1 {
		nw = 1
	}

	if resizeHints || c.IsFloating || !hasArrange {
		if !c.HintsValid {
			return nx, ny, nw, nh
		}
		hi := c.Hints
		baseismin := hi.BaseW == hi.MinW && hi.BaseH == hi.MinH

		if !baseismin {
			nw -= hi.BaseW
			nh -= hi.BaseH
		}

		if hi.MinA > 0 && hi.MaxA > 0 {
			if hi.MaxA < float64(nw)/float64(nh) {
				nw = int(float64(nh)*hi.MaxA + 0.5)
			} else if hi.MinA < float64(nh)/float64(nw) {
				nh = int(float64(nw)*hi.MinA + 0.5)
			}
		}

		if baseismin {
			nw -= hi.BaseW
			nh -= hi.BaseH
		}

		if hi.IncW != 0 {
			nw -= nw % hi.IncW
		}
		if hi.IncH != 0 {
			nh -= nh % hi.IncH
		}

		nw = max(nw+hi.BaseW, hi.MinW)
		nh = max(nh+hi.BaseH, hi.MinH)
		if hi.MaxW != 0 {
			nw = min(nw, hi.MaxW)
		}
		if hi.MaxH != 0 {
			nh = min(nh, hi.MaxH)
		}
	}

	return nx, ny, nw, nh
}

// WorkArea is the subset of a Monitor's geometry ApplySizeHints needs,
// passed explicitly rather than as *store.Monitor so this function stays
// testable against hand-built rectangles.
type WorkArea struct {
	X, Y, W, H int
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
