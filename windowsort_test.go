package windowsort_test

import (
	"iter"
	"math/rand"
	"sort"
	"testing"

	"github.com/davidvella/windowsort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descInt(a, b int) bool { return a > b }

func collect[E any](seq iter.Seq[E]) []E {
	var out []E
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		capacity int
		want     []int
	}{
		{
			name:     "reorders within window",
			input:    []int{4, 2, 3, 1},
			capacity: 2,
			want:     []int{4, 3, 2, 1},
		},
		{
			name:     "capacity one is identity",
			input:    []int{4, 2, 3, 1},
			capacity: 1,
			want:     []int{4, 2, 3, 1},
		},
		{
			name:     "ascending input reordered only within window",
			input:    []int{1, 2, 3, 4},
			capacity: 2,
			want:     []int{2, 3, 4, 1},
		},
		{
			name:     "later elements stay behind the window",
			input:    []int{4, 2, 1, 3},
			capacity: 2,
			want:     []int{4, 2, 3, 1},
		},
		{
			name:     "capacity beyond input sorts fully",
			input:    []int{2, 3, 4, 1},
			capacity: 10,
			want:     []int{4, 3, 2, 1},
		},
		{
			name:     "empty input",
			input:    nil,
			capacity: 3,
			want:     nil,
		},
		{
			name:     "zero capacity is pass-through",
			input:    []int{3, 1, 2},
			capacity: 0,
			want:     []int{3, 1, 2},
		},
		{
			name:     "negative capacity yields nothing",
			input:    []int{1, 2},
			capacity: -1,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(windowsort.Sort(
				windowsort.Slice(tt.input...).All(),
				tt.capacity,
				descInt,
			))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewNegativeCapacity(t *testing.T) {
	w, err := windowsort.New(windowsort.Slice(1, 2), -1, descInt)
	require.ErrorIs(t, err, windowsort.ErrNegativeCapacity)
	assert.Nil(t, w)
}

func TestNextIdempotentAfterDone(t *testing.T) {
	w, err := windowsort.New(windowsort.Slice(1), 2, descInt)
	require.NoError(t, err)

	v, ok := w.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	for i := 0; i < 3; i++ {
		_, ok := w.Next()
		assert.False(t, ok)
	}
}

func TestAllDestructiveConsumption(t *testing.T) {
	w, err := windowsort.New(windowsort.Slice(5, 1, 4, 2, 3), 2, descInt)
	require.NoError(t, err)

	var head []int
	for v := range w.All() {
		head = append(head, v)
		if len(head) == 2 {
			break
		}
	}
	assert.Equal(t, []int{5, 4}, head)

	// Ranging again continues from internal state rather than replaying.
	tail := collect(w.All())
	assert.Equal(t, []int{2, 3, 1}, tail)

	assert.Nil(t, collect(w.All()))
}

func TestStop(t *testing.T) {
	w, err := windowsort.New(windowsort.Slice(3, 1, 2), 2, descInt)
	require.NoError(t, err)

	v, ok := w.Next()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	w.Stop()
	w.Stop()

	_, ok = w.Next()
	assert.False(t, ok)
}

func TestStopBeforeFirstNext(t *testing.T) {
	w, err := windowsort.New(windowsort.Slice(1, 2, 3), 2, descInt)
	require.NoError(t, err)

	w.Stop()

	_, ok := w.Next()
	assert.False(t, ok)
}

func TestSortPreservesMultiset(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	input := make([]int, 500)
	for i := range input {
		input[i] = r.Intn(50)
	}

	got := collect(windowsort.Sort(windowsort.Slice(input...).All(), 16, descInt))

	wantSorted := append([]int(nil), input...)
	sort.Ints(wantSorted)
	gotSorted := append([]int(nil), got...)
	sort.Ints(gotSorted)

	assert.Equal(t, wantSorted, gotSorted)
}

// referenceWindowSort is a direct, quadratic rendition of the windowed
// extraction rule, used to cross-check the adapter.
func referenceWindowSort(input []int, capacity int, less func(a, b int) bool) []int {
	var out []int
	var window []int
	i := 0
	for {
		for len(window) < capacity && i < len(input) {
			window = append(window, input[i])
			i++
		}
		if capacity == 0 {
			if i == len(input) {
				break
			}
			out = append(out, input[i])
			i++
			continue
		}
		if len(window) == 0 {
			break
		}
		best := 0
		for j := 1; j < len(window); j++ {
			if less(window[j], window[best]) {
				best = j
			}
		}
		out = append(out, window[best])
		window = append(window[:best], window[best+1:]...)
	}
	return out
}

func TestSortMatchesReferenceModel(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for trial := 0; trial < 50; trial++ {
		n := r.Intn(40)
		input := make([]int, n)
		for i := range input {
			input[i] = r.Intn(20)
		}

		for capacity := 0; capacity <= n+2; capacity++ {
			want := referenceWindowSort(input, capacity, descInt)
			got := collect(windowsort.Sort(windowsort.Slice(input...).All(), capacity, descInt))
			require.Equal(t, want, got,
				"input %v capacity %d", input, capacity)
		}
	}
}

func TestSortAscending(t *testing.T) {
	got := collect(windowsort.Sort(
		windowsort.Slice(1, 4, 2, 3).All(),
		2,
		func(a, b int) bool { return a < b },
	))
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestSortInfiniteUpstreamStaysLazy(t *testing.T) {
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	var got []int
	for v := range windowsort.Sort(naturals, 3, func(a, b int) bool { return a < b }) {
		got = append(got, v)
		if len(got) == 5 {
			break
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}
