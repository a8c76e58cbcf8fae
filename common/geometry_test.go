package common

import "testing"

import "github.com/stretchr/testify/assert"

func TestRectOuterDimensions(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}
	assert.Equal(t, 104, r.Width(2))
	assert.Equal(t, 54, r.Height(2))
}

func TestIntersectArea(t *testing.T) {
	// Fully contained rectangle: area equals the candidate's own area.
	assert.Equal(t, 100, IntersectArea(10, 10, 10, 10, 0, 0, 100, 100))
	// Disjoint rectangles never overlap.
	assert.Equal(t, 0, IntersectArea(200, 200, 10, 10, 0, 0, 100, 100))
	// Partial overlap clips to the shared region.
	assert.Equal(t, 100, IntersectArea(90, 90, 20, 20, 0, 0, 100, 100))
}

func TestPointInside(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, Point{X: 5, Y: 5}.Inside(r))
	assert.False(t, Point{X: 10, Y: 5}.Inside(r))
	assert.False(t, Point{X: -1, Y: 5}.Inside(r))
}
