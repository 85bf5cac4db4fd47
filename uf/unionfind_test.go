package uf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFindBasic(t *testing.T) {
	d := New(6)
	assert.Equal(t, 6, d.ComponentCount())
	assert.False(t, d.InSame(0, 1))

	assert.True(t, d.Unite(0, 1))
	assert.True(t, d.Unite(1, 2))
	assert.False(t, d.Unite(0, 2)) // already same component

	assert.Equal(t, 4, d.ComponentCount())
	assert.True(t, d.InSame(0, 2))
	assert.Equal(t, 3, d.ComponentSize(0))
	assert.Equal(t, 1, d.ComponentSize(3))

	d.Unite(3, 4)
	d.Unite(4, 5)
	assert.True(t, d.InSame(3, 5))
	assert.False(t, d.InSame(0, 3))
	assert.Equal(t, 2, d.ComponentCount())
}

func TestUnionFindPathCompression(t *testing.T) {
	d := New(5)
	// unite 0..4 one pair at a time (union by size hangs each node directly
	// under 0's root), then confirm every element finds the same root.
	d.Unite(0, 1)
	d.Unite(1, 2)
	d.Unite(2, 3)
	d.Unite(3, 4)
	root := d.Find(4)
	for i := int32(0); i < 5; i++ {
		assert.Equal(t, root, d.Find(i))
	}
}
