package pqueue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapPushAndPopOrdered(t *testing.T) {
	h := New(5)
	h.PushOrDecreaseKey(0, 5)
	h.PushOrDecreaseKey(1, 2)
	h.PushOrDecreaseKey(2, 8)
	h.PushOrDecreaseKey(3, 1)
	h.PushOrDecreaseKey(4, 3)

	var order []int32
	for h.Len() > 0 {
		id, _ := h.Pop()
		order = append(order, id)
	}
	assert.Equal(t, []int32{3, 1, 4, 0, 2}, order)
}

func TestDecreaseKeyIgnoresIncrease(t *testing.T) {
	h := New(2)
	h.PushOrDecreaseKey(0, 10)
	h.PushOrDecreaseKey(0, 20) // should be ignored (increase)
	_, key := h.PeekMinKey()
	assert.Equal(t, int64(10), key)
	h.PushOrDecreaseKey(0, 3)
	_, key = h.PeekMinKey()
	assert.Equal(t, int64(3), key)
}

func TestPushOrSetKeyAllowsIncrease(t *testing.T) {
	h := New(2)
	h.PushOrSetKey(0, 10)
	h.PushOrSetKey(1, 1)
	h.PushOrSetKey(1, 50) // now 0 should be the min
	id, _ := h.PeekMinKey()
	assert.Equal(t, int32(0), id)
}

func TestContainsAndClear(t *testing.T) {
	h := New(3)
	assert.False(t, h.Contains(1))
	h.PushOrDecreaseKey(1, 4)
	assert.True(t, h.Contains(1))
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains(1))
}

func TestHeapAgainstSortRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 200
	keys := make([]int64, n)
	h := New(n)
	for i := 0; i < n; i++ {
		k := int64(r.Intn(1000))
		keys[i] = k
		h.PushOrDecreaseKey(int32(i), k)
	}
	expectedOrder := make([]int32, n)
	for i := range expectedOrder {
		expectedOrder[i] = int32(i)
	}
	sort.SliceStable(expectedOrder, func(i, j int) bool {
		return keys[expectedOrder[i]] < keys[expectedOrder[j]]
	})

	var gotKeys []int64
	for h.Len() > 0 {
		_, k := h.Pop()
		gotKeys = append(gotKeys, k)
	}
	require.Len(t, gotKeys, n)
	for i := 1; i < n; i++ {
		assert.LessOrEqual(t, gotKeys[i-1], gotKeys[i])
	}
}
