package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor() *Monitor {
	return &Monitor{TagSet: [2]uint32{1, 1}, SelTags: 0}
}

func TestAttachPrependsToHead(t *testing.T) {
	m := newTestMonitor()
	c1 := &Client{Win: 1, Mon: m}
	c2 := &Client{Win: 2, Mon: m}

	Attach(c1)
	Attach(c2)

	require.NotNil(t, m.Clients)
	assert.Equal(t, c2, m.Clients)
	assert.Equal(t, c1, m.Clients.Next())
	assert.Nil(t, c1.Next())
}

func TestDetachPreservesRelativeOrder(t *testing.T) {
	m := newTestMonitor()
	c1, c2, c3 := &Client{Win: 1, Mon: m}, &Client{Win: 2, Mon: m}, &Client{Win: 3, Mon: m}
	Attach(c1)
	Attach(c2)
	Attach(c3) // list: c3, c2, c1

	Detach(c2)

	assert.Equal(t, c3, m.Clients)
	assert.Equal(t, c1, m.Clients.Next())
	assert.Nil(t, c2.Next())
}

func TestDetachStackRecomputesSelOnlyForSelectedClient(t *testing.T) {
	m := newTestMonitor()
	c1, c2 := &Client{Win: 1, Mon: m, Tags: 1}, &Client{Win: 2, Mon: m, Tags: 1}
	AttachStack(c1)
	AttachStack(c2) // stack: c2, c1
	m.Sel = c2

	DetachStack(c2)

	assert.Equal(t, c1, m.Sel)
}

func TestDetachStackLeavesSelAloneWhenNotSelected(t *testing.T) {
	m := newTestMonitor()
	c1, c2, c3 := &Client{Win: 1, Mon: m, Tags: 1}, &Client{Win: 2, Mon: m, Tags: 1}, &Client{Win: 3, Mon: m, Tags: 1}
	AttachStack(c1)
	AttachStack(c2)
	AttachStack(c3)
	m.Sel = c3

	DetachStack(c1)

	assert.Equal(t, c3, m.Sel)
}

func TestIsVisibleFollowsMonitorSelectedTagset(t *testing.T) {
	m := newTestMonitor()
	m.TagSet[0] = 0b01
	c := &Client{Mon: m, Tags: 0b10}
	assert.False(t, IsVisible(c))

	c.Tags = 0b01
	assert.True(t, IsVisible(c))
}

func TestNextTiledSkipsFloatingAndInvisible(t *testing.T) {
	m := newTestMonitor()
	m.TagSet[0] = 0b1
	floating := &Client{Win: 1, Mon: m, Tags: 1, IsFloating: true}
	hidden := &Client{Win: 2, Mon: m, Tags: 0b10}
	tiled := &Client{Win: 3, Mon: m, Tags: 1}
	Attach(tiled)
	Attach(hidden)
	Attach(floating) // arrange order: floating, hidden, tiled

	assert.Equal(t, tiled, NextTiled(m.Clients))
}
