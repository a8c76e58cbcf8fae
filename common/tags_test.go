package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagMask(t *testing.T) {
	assert.Equal(t, uint32(0), TagMask(0))
	assert.Equal(t, uint32(0b1), TagMask(1))
	assert.Equal(t, uint32(0b111111111), TagMask(9))
	// Clamps at the 31-bit compile-time limit rather than overflowing.
	assert.Equal(t, TagMask(MaxTags), TagMask(MaxTags+5))
}
