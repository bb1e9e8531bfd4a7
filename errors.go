package windowsort

import (
	"iter"

	"github.com/davidvella/windowsort/heap"
)

// SortErr is the fallible-source form of Sort, operating on error-paired
// sequences. Successful pulls enter the window as usual. A pull that
// carries a non-nil error is surfaced immediately and verbatim, without
// entering the window or disturbing the elements already buffered; those
// remain retrievable afterwards. There is no retry.
//
// As with Sort, capacity must be non-negative; a negative capacity yields
// an empty sequence. A capacity of zero passes every pair through
// unbuffered.
func SortErr[E any](seq iter.Seq2[E, error], capacity int, less func(a, b E) bool) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		if capacity < 0 {
			return
		}

		var zero E
		if capacity == 0 {
			for v, err := range seq {
				if !yield(v, err) {
					return
				}
			}
			return
		}

		buf := heap.New(less)
		pull, stop := iter.Pull2(seq)
		defer stop()

		exhausted := false
		for {
			for !exhausted && buf.Len() < capacity {
				v, err, ok := pull()
				if !ok {
					exhausted = true
					break
				}
				if err != nil {
					// Abort the current fill; the window is
					// untouched and filling resumes on the
					// next request.
					if !yield(zero, err) {
						return
					}
					continue
				}
				buf.Push(v)
			}

			v, ok := buf.Pop()
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
