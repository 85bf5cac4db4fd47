package pqueue

// Heap is an addressable binary min-heap over a dense int ID domain
// [0, capacity). Keys are int64 so it serves both hop-distance (small
// ints) and weight-distance (arbitrary weights) pierce ratings.
type Heap struct {
	ids      []int32 // heap[i] = id stored at slot i
	keys     []int64 // keys[id] = current key for id (valid only while contains[id])
	position []int32 // position[id] = slot index in ids, or -1 if absent
}

const absent int32 = -1

// New allocates an empty Heap with room for IDs in [0, capacity).
func New(capacity int) *Heap {
	h := &Heap{
		ids:      make([]int32, 0, capacity),
		keys:     make([]int64, capacity),
		position: make([]int32, capacity),
	}
	for i := range h.position {
		h.position[i] = absent
	}
	return h
}

// Contains reports whether id currently has an entry in the heap.
func (h *Heap) Contains(id int32) bool { return h.position[id] != absent }

// Len returns the number of entries currently in the heap.
func (h *Heap) Len() int { return len(h.ids) }

// Clear empties the heap without reallocating backing storage.
func (h *Heap) Clear() {
	for _, id := range h.ids {
		h.position[id] = absent
	}
	h.ids = h.ids[:0]
}

// PeekMinKey returns the id with the smallest key and that key, without
// removing it. Panics if the heap is empty.
func (h *Heap) PeekMinKey() (id int32, key int64) {
	top := h.ids[0]
	return top, h.keys[top]
}

// Pop removes and returns the id with the smallest key.
func (h *Heap) Pop() (id int32, key int64) {
	top := h.ids[0]
	key = h.keys[top]
	last := len(h.ids) - 1
	h.swap(0, last)
	h.ids = h.ids[:last]
	h.position[top] = absent
	if last > 0 {
		h.siftDown(0)
	}
	return top, key
}

// PushOrDecreaseKey inserts id with key if absent; if present, lowers its
// key to min(current, key) and re-sifts up. Raising the key via this call
// is a silent no-op, matching typical Dijkstra-relaxation usage.
func (h *Heap) PushOrDecreaseKey(id int32, key int64) {
	if !h.Contains(id) {
		h.push(id, key)
		return
	}
	if key < h.keys[id] {
		h.keys[id] = key
		h.siftUp(int(h.position[id]))
	}
}

// PushOrSetKey inserts id with key if absent; if present, unconditionally
// replaces its key and re-sifts in whichever direction is needed.
func (h *Heap) PushOrSetKey(id int32, key int64) {
	if !h.Contains(id) {
		h.push(id, key)
		return
	}
	old := h.keys[id]
	h.keys[id] = key
	slot := int(h.position[id])
	if key < old {
		h.siftUp(slot)
	} else if key > old {
		h.siftDown(slot)
	}
}

func (h *Heap) push(id int32, key int64) {
	h.keys[id] = key
	h.ids = append(h.ids, id)
	h.position[id] = int32(len(h.ids) - 1)
	h.siftUp(len(h.ids) - 1)
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.keys[h.ids[parent]] <= h.keys[h.ids[i]] {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.ids)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.keys[h.ids[left]] < h.keys[h.ids[smallest]] {
			smallest = left
		}
		if right < n && h.keys[h.ids[right]] < h.keys[h.ids[smallest]] {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap) swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.position[h.ids[i]] = int32(i)
	h.position[h.ids[j]] = int32(j)
}
