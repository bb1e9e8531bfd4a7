// Package heap implements a generic binary heap ordered by a user-provided
// comparison function. It backs the default window buffer of the windowsort
// package and is usable on its own wherever a plain priority queue is needed.
//
// The ordering is determined by the comparison function supplied at
// construction: less(a, b) should return true if a has higher priority than
// b, i.e. a should be popped before b. Passing an inverted comparison turns
// the max-heap into a min-heap.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(log n) push and pop
//   - O(1) peek
//   - Duplicate elements are allowed (the heap is a multiset)
//
// Basic usage:
//
//	// Create a max-heap of ints
//	h := heap.New(func(a, b int) bool { return a > b })
//
//	h.Push(3)
//	h.Push(1)
//	h.Push(2)
//
//	v, ok := h.Pop() // 3, true
//	v, ok = h.Peek() // 2, true
package heap
