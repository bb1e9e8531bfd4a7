package windowsort

import "github.com/davidvella/windowsort/heap"

// Buffer is the bounded multiset behind the sliding window. It holds the
// pulled-but-not-yet-yielded elements and surfaces the highest-priority one
// on Pop. The WindowSort never holds more than its capacity in the buffer;
// implementations do not need to enforce a bound of their own.
//
// The default buffer is a binary heap. Use WithBuffer to substitute another
// implementation, e.g. NewStableBuffer for arrival-order stability or a
// spill.Buffer for windows too large for memory.
type Buffer[E any] interface {
	// Push inserts an element into the window.
	Push(v E)
	// Pop removes and returns the highest-priority element, reporting
	// false if the window is empty.
	Pop() (E, bool)
	// Len returns the number of buffered elements.
	Len() int
}

// NewHeapBuffer returns the default window buffer: a binary heap ordered by
// less. Equal elements are popped in unspecified order.
func NewHeapBuffer[E any](less func(a, b E) bool) Buffer[E] {
	return heap.New(less)
}
