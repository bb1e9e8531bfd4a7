package heap

// Heap implements a binary heap ordered by a user-provided comparison
// function.
type Heap[E any] struct {
	items []E
	lessF func(a, b E) bool // returns true if a has higher priority than b
}

// New creates a new heap with the given comparator.
func New[E any](less func(a, b E) bool) *Heap[E] {
	return &Heap[E]{
		items: make([]E, 0),
		lessF: less,
	}
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.items)
}

// Push adds an item to the heap.
func (h *Heap[E]) Push(v E) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the highest priority item.
func (h *Heap[E]) Pop() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}

	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]

	var zero E
	h.items[last] = zero
	h.items = h.items[:last]

	if last > 0 {
		h.down(0)
	}

	return top, true
}

// Peek returns the highest priority item without removing it.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}
	return h.items[0], true
}

// swap swaps items at index i and j.
func (h *Heap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// less compares items at index i and j.
func (h *Heap[E]) less(i, j int) bool {
	return h.lessF(h.items[i], h.items[j])
}

// up moves the element at index i up to its proper position.
func (h *Heap[E]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (h *Heap[E]) down(i int) {
	for {
		highest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.items) && h.less(left, highest) {
			highest = left
		}
		if right < len(h.items) && h.less(right, highest) {
			highest = right
		}

		if highest == i {
			break
		}

		h.swap(i, highest)
		i = highest
	}
}
