// Package merge combines multiple sorted sequences into one using a
// tournament tree, with O(log k) comparisons per element for k sources.
//
// It is the natural upstream for the windowsort adapter: merge the
// per-source streams first, then window-sort the result to absorb whatever
// jitter the individual sources carry. If each source is internally sorted
// the merge output is fully sorted and no window is needed; if sources are
// themselves only approximately sorted, follow the merge with
// windowsort.Sort and a window sized to the expected displacement.
//
// Basic usage:
//
//	tree := merge.New(
//	    []windowsort.Sequence[int]{seq1, seq2, seq3},
//	    math.MaxInt, // sentinel, orders after every real element
//	    func(a, b int) bool { return a < b },
//	)
//	for v := range tree.All() {
//	    fmt.Println(v)
//	}
//
// The sentinel value marks exhausted sources inside the tree. It must
// compare after every element the sources can produce and is never yielded.
package merge
