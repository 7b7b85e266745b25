// Package collections holds the generic data structures the generation
// pipeline is built on: a keyed binary min-heap and a disjoint set.
package collections

import "cmp"

// Heap is an array-backed binary min-heap over (key, value) pairs. The
// backing arrays are 1-indexed with a dummy element in slot zero, which
// keeps the parent/child index calculations shift-only. There is no
// delete-by-key; callers that need decrease-key semantics insert a fresh
// pair and lazily skip stale entries on extraction.
type Heap[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
	n    int
}

// NewHeap creates an empty heap with room for capacity pairs. The expected
// number of entries is usually known up front, so preallocating avoids
// growth during the hot search loop.
func NewHeap[K cmp.Ordered, V any](capacity int) *Heap[K, V] {
	return &Heap[K, V]{
		keys: make([]K, 1, capacity+1),
		vals: make([]V, 1, capacity+1),
	}
}

// Len returns the number of pairs in the heap.
func (h *Heap[K, V]) Len() int {
	return h.n
}

// IsEmpty reports whether the heap holds no pairs.
func (h *Heap[K, V]) IsEmpty() bool {
	return h.n == 0
}

// Clear resets the heap to empty while retaining the backing capacity.
func (h *Heap[K, V]) Clear() {
	h.keys = h.keys[:1]
	h.vals = h.vals[:1]
	h.n = 0
}

// Min returns the minimum pair without removing it. The boolean is false
// when the heap is empty.
func (h *Heap[K, V]) Min() (K, V, bool) {
	if h.n == 0 {
		var k K
		var v V
		return k, v, false
	}
	return h.keys[1], h.vals[1], true
}

// Insert adds a pair to the heap.
func (h *Heap[K, V]) Insert(key K, val V) {
	h.keys = append(h.keys, key)
	h.vals = append(h.vals, val)
	h.ascend(len(h.keys) - 1)
	h.n++
}

// ExtractMin removes and returns the minimum pair. The boolean is false
// when the heap is empty.
func (h *Heap[K, V]) ExtractMin() (K, V, bool) {
	if h.n == 0 {
		var k K
		var v V
		return k, v, false
	}

	key, val := h.keys[1], h.vals[1]

	last := len(h.keys) - 1
	h.keys[1] = h.keys[last]
	h.vals[1] = h.vals[last]
	h.keys = h.keys[:last]
	h.vals = h.vals[:last]
	h.n--

	h.descend(1)
	return key, val, true
}

// ascend restores the heap property after an insert at index.
func (h *Heap[K, V]) ascend(index int) {
	parent := index >> 1
	for parent > 0 && h.keys[index] < h.keys[parent] {
		h.swap(index, parent)
		index = parent
		parent >>= 1
	}
}

// descend restores the heap property after a removal left index out of place.
func (h *Heap[K, V]) descend(index int) {
	for {
		left := index << 1
		if left >= len(h.keys) {
			return
		}

		minChild := left
		if right := left + 1; right < len(h.keys) && h.keys[right] < h.keys[left] {
			minChild = right
		}

		if h.keys[index] <= h.keys[minChild] {
			return
		}

		h.swap(index, minChild)
		index = minChild
	}
}

func (h *Heap[K, V]) swap(a, b int) {
	h.keys[a], h.keys[b] = h.keys[b], h.keys[a]
	h.vals[a], h.vals[b] = h.vals[b], h.vals[a]
}
