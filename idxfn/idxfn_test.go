package idxfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayFuncGetSet(t *testing.T) {
	f := NewArrayFunc([]int32{3, 1, 4, 1, 5}, 6)
	assert.Equal(t, 5, f.PreimageCount())
	assert.Equal(t, int32(4), f.Get(2))
	f.Set(2, 9)
	assert.Equal(t, int32(9), f.Get(2))
}

func TestChainComposesWithoutCopying(t *testing.T) {
	f := NewArrayFunc([]int32{1, 2, 0}, 3) // i -> i+1 mod 3
	g := NewArrayFunc([]int32{10, 20, 30}, 31)
	h := Chain(f, g)
	require.Equal(t, 3, h.PreimageCount())
	assert.Equal(t, int32(20), h.Get(0)) // g(f(0)) = g(1) = 20
	assert.Equal(t, int32(30), h.Get(1))
	assert.Equal(t, int32(10), h.Get(2))

	// mutating the underlying array is visible through the chain.
	f.Set(0, 2)
	assert.Equal(t, int32(30), h.Get(0))
}

func TestKeepIfCompactsDomain(t *testing.T) {
	f := NewArrayFunc([]int32{10, 11, 12, 13, 14}, 15)
	mask := func(i int) bool { return i%2 == 0 }
	k := CountTrue(f.PreimageCount(), mask)
	out := KeepIf(mask, k, f)
	assert.Equal(t, []int32{10, 12, 14}, out.Slice())
}

func TestPermutationInverse(t *testing.T) {
	p := NewPermutation([]int32{2, 0, 1})
	inv := p.Inverse()
	for i := 0; i < 3; i++ {
		assert.Equal(t, int32(i), inv.Get(int(p.Get(i))))
	}
	// applying Inverse twice recovers the original (idempotence property,
	// spec.md §8 round-trip behaviors).
	assert.Equal(t, p.Slice(), inv.Inverse().Slice())
}

func TestValidatePermutation(t *testing.T) {
	assert.True(t, ValidatePermutation([]int32{2, 0, 1}))
	assert.False(t, ValidatePermutation([]int32{2, 0, 0}))
	assert.False(t, ValidatePermutation([]int32{3, 0, 1}))
}

func TestInvertSortedTails(t *testing.T) {
	// arcs: 0->*, 0->*, 1->*, 3->*
	tail := []int32{0, 0, 1, 3}
	idx := InvertSortedTails(tail, 4)
	b, e := idx.Range(0)
	assert.Equal(t, []int32{0, 2}, []int32{b, e})
	b, e = idx.Range(2)
	assert.Equal(t, []int32{3, 3}, []int32{b, e})
	assert.Equal(t, 1, idx.Degree(1))
}

func TestInvertSortedTailsPanicsOnUnsorted(t *testing.T) {
	assert.Panics(t, func() {
		InvertSortedTails([]int32{1, 0}, 2)
	})
}

func TestInvertUnsortedTails(t *testing.T) {
	tail := []int32{3, 0, 1, 0}
	idx, order := InvertUnsortedTails(tail, 4)
	require.Len(t, order, 4)
	b, e := idx.Range(0)
	assert.Equal(t, 2, int(e-b))
}

func TestBitSet(t *testing.T) {
	b := NewBitSet(70)
	b.Set(5, true)
	b.Set(69, true)
	assert.True(t, b.Get(5))
	assert.True(t, b.Get(69))
	assert.False(t, b.Get(6))
	assert.Equal(t, 2, b.Count())

	c := b.Clone()
	c.Set(5, false)
	assert.True(t, b.Get(5))
	assert.False(t, c.Get(5))

	b.Fill(true)
	assert.Equal(t, 70, b.Count())
	b.Fill(false)
	assert.Equal(t, 0, b.Count())
}
