package windowsort

import "github.com/google/btree"

type stableItem[E any] struct {
	value E
	seq   uint64
}

// stableBuffer keeps the window in a B-tree ordered by the element
// comparison with a monotonic insertion sequence as tie-break, so equal
// elements leave the window in arrival order.
type stableBuffer[E any] struct {
	tree *btree.BTreeG[stableItem[E]]
	seq  uint64
}

// NewStableBuffer returns a window buffer that yields equal elements in the
// order they were pushed. The default heap buffer makes no such promise;
// use this when the relative order of equal elements matters, at the cost
// of the B-tree's higher constant factors.
func NewStableBuffer[E any](less func(a, b E) bool) Buffer[E] {
	// Tree order is inverted priority: the highest-priority element is
	// the tree maximum so Pop can use DeleteMax. Among equal elements
	// the earliest insertion is the maximum.
	byPriority := func(a, b stableItem[E]) bool {
		if less(b.value, a.value) {
			return true
		}
		if less(a.value, b.value) {
			return false
		}
		return a.seq > b.seq
	}
	return &stableBuffer[E]{
		tree: btree.NewG(2, byPriority),
	}
}

func (b *stableBuffer[E]) Push(v E) {
	b.seq++
	b.tree.ReplaceOrInsert(stableItem[E]{value: v, seq: b.seq})
}

func (b *stableBuffer[E]) Pop() (E, bool) {
	it, ok := b.tree.DeleteMax()
	if !ok {
		var zero E
		return zero, false
	}
	return it.value, true
}

func (b *stableBuffer[E]) Len() int {
	return b.tree.Len()
}
