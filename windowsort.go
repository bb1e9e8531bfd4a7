package windowsort

import (
	"errors"
	"iter"
)

// ErrNegativeCapacity is returned by New when the window capacity is
// negative.
var ErrNegativeCapacity = errors.New("windowsort: capacity must be non-negative")

// phase tracks where the sorter is in its fill/drain lifecycle.
type phase int

const (
	// phaseFilling: the buffer has not yet reached capacity and the
	// upstream sequence is still producing.
	phaseFilling phase = iota
	// phaseSteady: the buffer is at capacity; every pull is matched by an
	// extraction.
	phaseSteady
	// phaseDraining: the upstream sequence is exhausted; only extraction
	// remains. This transition is one-way.
	phaseDraining
	// phaseDone: the buffer is empty and the upstream sequence is
	// exhausted. Terminal.
	phaseDone
)

// WindowSort reorders the elements of an upstream sequence within a sliding
// window of fixed capacity. Elements are buffered until the window is full,
// then the highest-priority buffered element (under the comparison supplied
// at construction) is yielded for every element pulled. Once the upstream
// sequence ends, the remaining window drains in priority order.
//
// The output is only locally sorted: each yielded element is maximal among
// the at most capacity elements buffered at that instant, not among the
// whole sequence. The sorter never buffers more than capacity elements, so
// it works over unbounded upstreams.
//
// A WindowSort is single-use: consumption advances the upstream cursor and
// drains the window, and there is no way to rewind. Construct a fresh
// instance to iterate again. Not safe for concurrent use.
type WindowSort[E any] struct {
	src      Sequence[E]
	capacity int
	buf      Buffer[E]
	pull     func() (E, bool)
	stop     func()
	phase    phase
}

// New creates a WindowSort over src with the given window capacity.
// less(a, b) should return true if a has higher priority than b, i.e. a is
// yielded before b; invert it to flip the output direction. A capacity of
// zero disables buffering entirely and the sorter becomes a transparent
// pass-through. A negative capacity returns ErrNegativeCapacity.
func New[E any](src Sequence[E], capacity int, less func(a, b E) bool, opts ...Option[E]) (*WindowSort[E], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	o := defaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}

	buf := o.buffer
	if buf == nil {
		buf = NewHeapBuffer(less)
	}

	return &WindowSort[E]{
		src:      src,
		capacity: capacity,
		buf:      buf,
	}, nil
}

// Sort reorders seq within a sliding window of the given capacity and
// returns the result as a lazy sequence. It is a convenience wrapper around
// New for plain iter.Seq upstreams; capacity must be non-negative, a
// negative capacity yields an empty sequence.
func Sort[E any](seq iter.Seq[E], capacity int, less func(a, b E) bool) iter.Seq[E] {
	w, err := New(FromSeq(seq), capacity, less)
	if err != nil {
		return func(yield func(E) bool) {}
	}
	return w.All()
}

// Next produces the next output element. It pulls from upstream until the
// window is full or upstream ends, then extracts the buffered maximum. The
// second return value is false once the sequence is exhausted; further
// calls keep returning false.
func (w *WindowSort[E]) Next() (E, bool) {
	var zero E

	if w.phase == phaseDone {
		return zero, false
	}

	if w.pull == nil {
		w.pull, w.stop = iter.Pull(w.src.All())
	}

	// Zero capacity: pull one, yield it unbuffered.
	if w.capacity == 0 {
		v, ok := w.pull()
		if !ok {
			w.finish()
			return zero, false
		}
		return v, true
	}

	for w.phase != phaseDraining && w.buf.Len() < w.capacity {
		v, ok := w.pull()
		if !ok {
			w.phase = phaseDraining
			w.releaseUpstream()
			break
		}
		w.buf.Push(v)
	}

	if w.phase == phaseFilling && w.buf.Len() == w.capacity {
		w.phase = phaseSteady
	}

	v, ok := w.buf.Pop()
	if !ok {
		w.finish()
		return zero, false
	}
	return v, true
}

// All returns the sorted output as a lazy sequence. The sequence is
// destructive: breaking out of a range and ranging again continues from the
// current window rather than replaying from the start.
func (w *WindowSort[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			v, ok := w.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Stop releases the upstream cursor and discards the buffered window,
// moving the sorter to its terminal state. It is safe to call at any time
// and is idempotent. Stop only needs to be called when abandoning the
// sorter before exhaustion; a fully consumed sorter has already released
// its upstream.
func (w *WindowSort[E]) Stop() {
	w.finish()
}

func (w *WindowSort[E]) finish() {
	w.phase = phaseDone
	w.releaseUpstream()
}

func (w *WindowSort[E]) releaseUpstream() {
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
}
