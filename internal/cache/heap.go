package cache

import "golang.org/x/exp/constraints"

// Heap is a generic priority queue. It pops elements in decreasing order of
// the caller-supplied comparator: cmp(a, b) > 0 means a has strictly higher
// priority than b and is popped first; cmp(a, b) == 0 leaves relative order
// of a and b unspecified.
//
// The zero value of Heap[T] is usable directly for any T that supports the
// natural '<'/'>' ordering (via constraints.Ordered); a nil comparator falls
// back to that natural order the first time it is needed. Pass an explicit
// comparator to New to rank by anything else, including a derived key
// or a multi-field tie-break.
//
// This is grounded on the teacher's common/heap package, whose test file
// (heap_test.go) was the only artifact retrieved for it -- the
// implementation itself is authored here to satisfy that pinned-down
// contract (New, zero-value usability, Add, Peek, Pop, ContainsFunc).
type Heap[T constraints.Ordered] struct {
	items []T
	cmp   func(a, b T) int
}

// New creates a Heap ordered by cmp.
func New[T constraints.Ordered](cmp func(a, b T) int) Heap[T] {
	return Heap[T]{cmp: cmp}
}

func (h *Heap[T]) ensureCmp() {
	if h.cmp == nil {
		h.cmp = func(a, b T) int {
			switch {
			case a > b:
				return 1
			case a < b:
				return -1
			default:
				return 0
			}
		}
	}
}

// Len returns the number of elements currently queued.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Add inserts v into the heap.
func (h *Heap[T]) Add(v T) {
	h.ensureCmp()
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Peek returns the highest-priority element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the highest-priority element.
func (h *Heap[T]) Pop() (T, bool) {
	top, ok := h.Peek()
	if !ok {
		return top, false
	}
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top, true
}

// ContainsFunc reports whether any queued element satisfies pred.
func (h *Heap[T]) ContainsFunc(pred func(T) bool) bool {
	for _, v := range h.items {
		if pred(v) {
			return true
		}
	}
	return false
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) <= 0 {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.cmp(h.items[left], h.items[largest]) > 0 {
			largest = left
		}
		if right < n && h.cmp(h.items[right], h.items[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
