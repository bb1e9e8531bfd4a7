// Package windowsort implements a streaming, bounded-memory approximate
// sort: a sequence adapter that reorders elements within a sliding window
// of fixed capacity.
//
// The adapter keeps a bounded priority buffer filled from the upstream
// sequence. Each request for the next element tops the buffer up to
// capacity, then extracts the highest-priority buffered element under the
// comparison supplied at construction. Once upstream ends, the remaining
// window drains in priority order. Memory use is bounded by the window
// capacity regardless of how long the upstream runs, so the adapter works
// over unbounded sequences.
//
// This is useful when an input is almost sorted, e.g. timestamped events
// merged from several sources with bounded jitter: if the displacement of
// any element from its sorted position is at most the window capacity, the
// output is fully sorted. Beyond that bound the output is only locally
// sorted; each yielded element is maximal within the current window, not
// globally.
//
// Basic usage:
//
//	out := windowsort.Sort(seq, 2, func(a, b int) bool { return a > b })
//	for v := range out {
//		fmt.Println(v)
//	}
//
// The comparison decides which element leaves the window first. Invert it
// to flip the direction, e.g. func(a, b int) bool { return a < b } for
// ascending output.
//
// For sources that can fail, SortErr adapts an iter.Seq2[E, error] and
// surfaces upstream errors immediately without disturbing the window. For
// windows too large to hold in memory, the spill package provides a
// disk-backed buffer with the same sorting behavior. The merge package
// combines multiple per-source sequences into the kind of almost-sorted
// stream this package is designed to finish off.
package windowsort
