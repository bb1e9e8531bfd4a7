package spill

import "iter"

// Sort reorders seq within a sliding window held in the given disk buffer.
// The machine is the same as windowsort.Sort: fill the window to capacity,
// yield the largest-keyed element, drain once upstream ends. Upstream
// errors and storage errors are both surfaced in the output pair at the
// request that hit them; an upstream error leaves the window untouched,
// an element whose write fails is reported and not retried, and a failed
// extraction ends the sequence after being reported.
//
// The buffer must be empty and remains owned by the caller; close it after
// consuming the output. A negative capacity or nil buffer yields an empty
// sequence, and a capacity of zero passes every pair through unbuffered.
func Sort[E any](seq iter.Seq2[E, error], capacity int, buf *Buffer[E]) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		if capacity < 0 || buf == nil {
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
					if !yield(zero, err) {
						return
					}
					continue
				}
				if err := buf.Push(v); err != nil {
					if !yield(zero, err) {
						return
					}
				}
			}

			v, ok, err := buf.Pop()
			if err != nil {
				// The window state is suspect after a failed
				// extraction; report and stop.
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
