package fn_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/maxbolgarin/gitpulse/internal/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	toString := fn.Map(strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, toString([]int{1, 2, 3}))
	assert.Equal(t, []string{}, toString(nil))
}

func TestMapRoundTrip(t *testing.T) {
	double := fn.Map(func(n int) int { return n * 2 })
	halve := fn.Map(func(n int) int { return n / 2 })

	input := []int{2, 4, 6}
	assert.Equal(t, input, halve(double(input)), "pure composition has no hidden state")
}

func TestFilter(t *testing.T) {
	evens := fn.Filter(func(n int) bool { return n%2 == 0 })
	input := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{2, 4}, evens(input))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, input, "input must not be mutated")
}

func TestSortByIsStable(t *testing.T) {
	type pair struct {
		key   int
		label string
	}
	byKey := fn.SortBy(func(a, b pair) bool { return a.key < b.key })

	input := []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	sorted := byKey(input)

	assert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, sorted)
	assert.Equal(t, []pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}, input, "input must not be mutated")
}

func TestGroupBy(t *testing.T) {
	byLen := fn.GroupBy(func(s string) int { return len(s) })
	groups := byLen([]string{"a", "bb", "cc", "d"})
	assert.Equal(t, []string{"a", "d"}, groups[1])
	assert.Equal(t, []string{"bb", "cc"}, groups[2])
}

func TestUniqueByKeepsFirstOccurrence(t *testing.T) {
	byLower := fn.UniqueBy(strings.ToLower)
	assert.Equal(t, []string{"Alpha", "beta"}, byLower([]string{"Alpha", "beta", "ALPHA", "Beta"}))
}

func TestPartition(t *testing.T) {
	split := fn.Partition(func(n int) bool { return n > 2 })
	high, low := split([]int{1, 3, 2, 4})
	assert.Equal(t, []int{3, 4}, high)
	assert.Equal(t, []int{1, 2}, low)
	// Every element lands in exactly one half.
	assert.Len(t, append(high, low...), 4)
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, fn.Chunk[int](2)([]int{1, 2, 3, 4, 5}))
	assert.Nil(t, fn.Chunk[int](0)([]int{1, 2}))
	assert.Nil(t, fn.Chunk[int](3)(nil))
}

func TestTakeAndSkip(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, fn.Take[int](2)(items))
	assert.Equal(t, items, fn.Take[int](10)(items))
	assert.Empty(t, fn.Take[int](0)(items))

	assert.Equal(t, []int{3}, fn.Skip[int](2)(items))
	assert.Empty(t, fn.Skip[int](10)(items))
	assert.Equal(t, items, fn.Skip[int](0)(items))
}

func TestPipeAppliesLeftToRight(t *testing.T) {
	got := fn.Pipe("x",
		func(s string) string { return s + "a" },
		func(s string) string { return s + "b" },
	)
	assert.Equal(t, "xab", got)
}

func TestComposeAppliesRightToLeft(t *testing.T) {
	f := fn.Compose(
		func(s string) string { return s + "a" },
		func(s string) string { return s + "b" },
	)
	require.NotNil(t, f)
	assert.Equal(t, "xba", f("x"))
}
