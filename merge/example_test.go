package merge_test

import (
	"fmt"
	"math"

	"github.com/davidvella/windowsort"
	"github.com/davidvella/windowsort/merge"
)

// ExampleNew demonstrates merging sorted sequences.
func ExampleNew() {
	tree := merge.New(
		[]windowsort.Sequence[int]{
			windowsort.Slice(1, 4, 7),
			windowsort.Slice(2, 5, 8),
			windowsort.Slice(3, 6, 9),
		},
		math.MaxInt,
		func(a, b int) bool { return a < b },
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleNew_jitter merges event streams whose timestamps carry bounded
// jitter, then window-sorts the residual disorder away.
func ExampleNew_jitter() {
	// Each source is almost sorted: no timestamp is displaced by more
	// than one position.
	tree := merge.New(
		[]windowsort.Sequence[int]{
			windowsort.Slice(10, 30, 20),
			windowsort.Slice(15, 25, 45, 35),
		},
		math.MaxInt,
		func(a, b int) bool { return a < b },
	)

	// A window of 3 covers the worst-case displacement after merging.
	sorted := windowsort.Sort(tree.All(), 3, func(a, b int) bool { return a < b })
	for v := range sorted {
		fmt.Printf("%d ", v)
	}

	// Output: 10 15 20 25 30 35 45
}
