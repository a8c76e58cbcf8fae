package layout

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"

	"github.com/delta1024/dwm/store"
)

// recordingResize mimics wm.World.resize well enough for geometry tests:
// it clamps nothing, just writes the proposed rectangle onto the client,
// matching the contract Tile relies on (that resize mutates c in place).
func recordingResize(c *store.Client, x, y, w, h int, interact bool) {
	c.X, c.Y, c.W, c.H = x, y, w, h
}

func newMonitor(nmaster int, mfact float64) *store.Monitor {
	m := &store.Monitor{
		WX: 0, WY: 0, WW: 1000, WH: 500,
		TagSet: [2]uint32{1, 1}, SelTags: 0,
		NMaster: nmaster, MFact: mfact,
	}
	return m
}

func attachVisible(m *store.Monitor, n int) []*store.Client {
	clients := make([]*store.Client, n)
	for i := n - 1; i >= 0; i-- {
		c := &store.Client{Win: xproto.Window(i + 1), Mon: m, Tags: 1}
		store.Attach(c)
		clients[i] = c
	}
	return clients
}

func TestTileSingleClientFillsMaster(t *testing.T) {
	m := newMonitor(1, 0.5)
	cs := attachVisible(m, 1)

	Tile(m, recordingResize)

	c := cs[0]
	assert.Equal(t, 0, c.X)
	assert.Equal(t, 0, c.Y)
	assert.Equal(t, 1000, c.W)
	assert.Equal(t, 500, c.H)
}

func TestTileSplitsMasterAndStackColumns(t *testing.T) {
	m := newMonitor(1, 0.6)
	cs := attachVisible(m, 2)

	Tile(m, recordingResize)

	master := cs[0]
	stacked := cs[1]
	assert.Equal(t, 0, master.X)
	assert.Equal(t, 600, master.W)
	assert.Equal(t, 600, stacked.X)
	assert.Equal(t, 400, stacked.W)
}

func TestTileStacksMultipleMasterClientsVertically(t *testing.T) {
	m := newMonitor(2, 1.0)
	cs := attachVisible(m, 2)

	Tile(m, recordingResize)

	assert.Equal(t, 0, cs[0].Y)
	assert.Equal(t, 250, cs[0].H)
	assert.Equal(t, 250, cs[1].Y)
	assert.Equal(t, 250, cs[1].H)
}

func TestMonocleFillsWorkAreaForEveryVisibleClient(t *testing.T) {
	m := newMonitor(1, 0.5)
	cs := attachVisible(m, 3)

	Monocle(m, recordingResize)

	for _, c := range cs {
		assert.Equal(t, m.WW, c.W)
		assert.Equal(t, m.WH, c.H)
	}
}

func TestApplySizeHintsEnforcesMinimumSize(t *testing.T) {
	c := &store.Client{HintsValid: true, Hints: store.SizeHints{MinW: 50, MinH: 40}}
	wa := WorkArea{X: 0, Y: 0, W: 1000, H: 1000}

	_, _, w, h := ApplySizeHints(c, 0, 0, 10, 10, false, wa, 1000, 1000, true, true)

	assert.Equal(t, 50, w)
	assert.Equal(t, 40, h)
}

func TestApplySizeHintsRespectsIncrementsAboveBase(t *testing.T) {
	c := &store.Client{HintsValid: true, Hints: store.SizeHints{BaseW: 10, BaseH: 10, IncW: 10, IncH: 10, MinW: 10, MinH: 10}}
	wa := WorkArea{X: 0, Y: 0, W: 1000, H: 1000}

	_, _, w, h := ApplySizeHints(c, 0, 0, 37, 37, false, wa, 1000, 1000, true, true)

	// 37-10=27, rounds down to the nearest increment (20), +10 base = 30.
	assert.Equal(t, 30, w)
	assert.Equal(t, 30, h)
}

func TestApplySizeHintsSkipsHintClampingWhenTiledAndResizeHintsOff(t *testing.T) {
	c := &store.Client{HintsValid: true, Hints: store.SizeHints{MinW: 500, MinH: 500}}
	wa := WorkArea{X: 0, Y: 0, W: 1000, H: 1000}

	_, _, w, h := ApplySizeHints(c, 0, 0, 10, 10, false, wa, 1000, 1000, false, true)

	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}
