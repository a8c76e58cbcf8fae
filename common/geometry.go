// Package common holds geometry and tag primitives shared by every layer of
// the window manager: the store (client/monitor state), the layout engine
// and the bar renderer all compute on these types without reaching into X11.
package common

// Rect is an axis-aligned rectangle in root-window coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// Width returns the rectangle's width including the two borders.
func (r Rect) Width(bw int) int { return r.W + 2*bw }

// Height returns the rectangle's height including the two borders.
func (r Rect) Height(bw int) int { return r.H + 2*bw }

// IntersectArea is the INTERSECT macro from dwm.c: the area of overlap
// between a candidate x/y/w/h rectangle and a monitor's work area.
func IntersectArea(x, y, w, h int, wx, wy, ww, wh int) int {
	ix := max(0, min(x+w, wx+ww)-max(x, wx))
	iy := max(0, min(y+h, wy+wh)-max(y, wy))
	return ix * iy
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt and MinInt are exported for callers outside this package (layout,
// store) that need the same clamp helpers dwm.c expresses with MAX/MIN
// macros.
func MaxInt(a, b int) int { return max(a, b) }
func MinInt(a, b int) int { return min(a, b) }

// Point is a root-window pointer position.
type Point struct {
	X, Y int
}

// Inside reports whether p lies within r.
func (p Point) Inside(r Rect) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
