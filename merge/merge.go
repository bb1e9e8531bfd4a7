package merge

import (
	"iter"

	"github.com/davidvella/windowsort"
)

// Tree merges multiple sorted sequences with a tournament (loser) tree.
// The tree is an array-laid-out binary tree: with k sources, leaves occupy
// slots k..2k-1 and internal slots 1..k-1 each hold the loser of the match
// between their subtrees. Slot 0 holds the overall winner. Advancing the
// winner and replaying its path to the root costs O(log k) comparisons per
// merged element.
type Tree[E any] struct {
	sentinel E
	slots    []slot[E]
	sources  []windowsort.Sequence[E]
	less     func(a, b E) bool
}

type slot[E any] struct {
	index int              // losing source for internal slots, winning source for slot 0
	value E                // value copied from that source
	next  func() (E, bool) // only populated for leaf slots
}

// New creates a merge tree over the given sources. less(a, b) reports
// whether a orders before b in the merged output; sources must already be
// sorted under the same comparison. sentinel must order after every real
// element (e.g. math.MaxInt for ascending ints); it marks exhausted
// sources inside the tree and is never yielded.
func New[E any](sources []windowsort.Sequence[E], sentinel E, less func(a, b E) bool) *Tree[E] {
	return &Tree[E]{
		sentinel: sentinel,
		slots:    make([]slot[E], len(sources)*2),
		sources:  sources,
		less:     less,
	}
}

// All returns the merged output as a lazy sequence. Sources are consumed as
// the output is consumed; the tree holds one pending element per source.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.slots) == 0 {
			return
		}
		k := len(t.sources)
		for i, src := range t.sources {
			next, stop := iter.Pull(src.All())
			t.slots[k+i].next = next
			//nolint:gocritic // one deferred stop per source, bounded by k.
			defer stop()
			t.advance(k + i)
		}
		t.build()
		for t.slots[t.slots[0].index].index != -1 &&
			yield(t.slots[0].value) {
			t.advance(t.slots[0].index)
			t.replay(t.slots[0].index)
		}
	}
}

// advance pulls the next element for the leaf at index, installing the
// sentinel once the source is exhausted.
func (t *Tree[E]) advance(index int) bool {
	s := &t.slots[index]
	if v, ok := s.next(); ok {
		s.value = v
		return true
	}
	s.value = t.sentinel
	s.index = -1
	return false
}

// build plays the initial tournament and records the winner in slot 0.
func (t *Tree[E]) build() {
	winner := t.play(1)
	t.slots[0].index = winner
	t.slots[0].value = t.slots[winner].value
}

// play finds the winner of the subtree rooted at pos, storing losers in the
// internal slots on the way up. pos must be >= 1 and < len(t.slots).
func (t *Tree[E]) play(pos int) int {
	slots := t.slots
	if pos >= len(slots)/2 {
		return pos
	}
	left := t.play(pos * 2)
	right := t.play(pos*2 + 1)
	var loser, winner int
	if t.less(slots[left].value, slots[right].value) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	slots[pos].index = loser
	slots[pos].value = slots[loser].value
	return winner
}

// replay re-runs the matches on the path from pos, a freshly advanced leaf,
// up to the root, leaving the new winner in slot 0.
func (t *Tree[E]) replay(pos int) {
	slots := t.slots
	winning := slots[pos].value
	for n := pos / 2; n != 0; n /= 2 {
		s := &slots[n]
		if t.less(s.value, winning) {
			// The stored loser beats the incoming value, so they
			// swap roles.
			s.index, pos = pos, s.index
			s.value, winning = winning, s.value
		}
	}
	slots[0].index = pos
	slots[0].value = winning
}
