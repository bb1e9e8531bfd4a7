package windowsort

import "iter"

// Sequence is a lazily evaluated sequence of elements. Implementations are
// typically single-use cursors over some underlying source; All may only be
// safely called once unless the implementation documents otherwise.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

type seqFunc[E any] iter.Seq[E]

func (f seqFunc[E]) All() iter.Seq[E] { return iter.Seq[E](f) }

// FromSeq adapts a plain iter.Seq to the Sequence interface.
func FromSeq[E any](seq iter.Seq[E]) Sequence[E] {
	return seqFunc[E](seq)
}

type sliceSeq[E any] struct {
	items []E
}

func (s sliceSeq[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a Sequence over the given elements. Unlike most sequences
// it is restartable; it exists mainly for tests and examples.
func Slice[E any](items ...E) Sequence[E] {
	return sliceSeq[E]{items: items}
}
