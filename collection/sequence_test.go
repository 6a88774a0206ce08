package collection_test

import (
	"errors"
	"iter"
	"math"
	"strconv"
	"testing"

	"github.com/npillmayer/immutable/collection"
	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backing creates sequences of the same values with different backing strategies.
type backing struct {
	name string
	make func(values ...int) collection.Sequence[int]
}

var backings = []backing{
	{"eager", func(values ...int) collection.Sequence[int] {
		return collection.Of(values...)
	}},
	{"deferred", func(values ...int) collection.Sequence[int] {
		return collection.Defer(pullOver(values))
	}},
	{"lazy", func(values ...int) collection.Sequence[int] {
		return collection.LazySeq(seqOver(values))
	}},
}

func forAllBackings(t *testing.T, test func(t *testing.T, of func(...int) collection.Sequence[int])) {
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			test(t, b.make)
		})
	}
}

func pullOver[T any](values []T) func() (T, bool) {
	i := 0
	return func() (T, bool) {
		if i >= len(values) {
			var zero T
			return zero, false
		}
		i++
		return values[i-1], true
	}
}

func seqOver[T any](values []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range values {
			if !yield(x) {
				return
			}
		}
	}
}

func odd(n int) bool { return n%2 == 1 }

// ---------------------------------------------------------------------------

func TestSequenceRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, s.ToList())
		assert.True(t, s.Reverse().Reverse().Equal(collection.Of(1, 2, 3)))
		assert.True(t, collection.Of(1, 2, 3).Equal(s))
		assert.False(t, s.Equal(collection.Of(1, 2)))
		assert.False(t, s.Equal(collection.Of(1, 3, 2)))
	})
}

func TestSequenceQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3)
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, 3, s.Count())
		assert.Equal(t, 2, s.Get(1).WithDefault(-1))
		assert.False(t, s.Get(3).IsJust())
		assert.False(t, s.Get(-1).IsJust())
		assert.Equal(t, 1, s.First().WithDefault(-1))
		assert.Equal(t, 3, s.Last().WithDefault(-1))
		assert.True(t, s.Contains(2))
		assert.False(t, s.Contains(7))
		assert.Equal(t, 2, s.IndexOf(3).WithDefault(-1))
		assert.False(t, s.IndexOf(7).IsJust())
		assert.Equal(t, []int{0, 1, 2}, s.Indices().ToList())
		assert.False(t, s.Empty())
		assert.True(t, s.Clear().Empty())
		assert.True(t, of().Empty())
		assert.False(t, of().First().IsJust())
		assert.False(t, of().Last().IsJust())
		assert.Empty(t, of().Indices().ToList())
	})
}

func TestSequenceRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3)
		assert.Equal(t, []int{2, 3}, s.Drop(1).ToList())
		assert.Empty(t, s.Drop(10).ToList())
		assert.Equal(t, []int{1, 2}, s.DropEnd(1).ToList())
		assert.Empty(t, s.DropEnd(5).ToList())
		assert.Equal(t, []int{1, 2}, s.Take(2).ToList())
		assert.Empty(t, s.Take(0).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.Take(10).ToList())
		assert.Equal(t, []int{2, 3}, s.TakeEnd(2).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.TakeEnd(10).ToList())
		assert.Empty(t, s.TakeEnd(0).ToList())
		assert.Equal(t, []int{2, 3}, s.Slice(1, 3).ToList())
		assert.Equal(t, []int{1, 2}, s.Slice(-1, 2).ToList())
		assert.Empty(t, s.Slice(2, 1).ToList())
		assert.Empty(t, s.DropEnd(math.MaxInt).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.TakeEnd(math.MaxInt).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.DropEnd(math.MinInt).ToList())
		assert.Empty(t, s.TakeEnd(math.MinInt).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.ToList(), "receiver must stay unchanged")
	})
}

func TestBackingsAgreeOnExtremeCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	counts := []int{math.MinInt, -1, 0, 1, 2, 3, 4, math.MaxInt}
	ops := map[string]func(collection.Sequence[int], int) collection.Sequence[int]{
		"Drop":    collection.Sequence[int].Drop,
		"DropEnd": collection.Sequence[int].DropEnd,
		"Take":    collection.Sequence[int].Take,
		"TakeEnd": collection.Sequence[int].TakeEnd,
		"SliceFrom": func(s collection.Sequence[int], n int) collection.Sequence[int] {
			return s.Slice(n, 3)
		},
		"SliceUntil": func(s collection.Sequence[int], n int) collection.Sequence[int] {
			return s.Slice(1, n)
		},
	}
	for name, op := range ops {
		for _, n := range counts {
			expected := op(collection.Of(1, 2, 3), n).ToList()
			for _, b := range backings[1:] {
				assert.Equal(t, expected, op(b.make(1, 2, 3), n).ToList(),
					"%s(%d) on %s backing differs from eager", name, n, b.name)
			}
		}
	}
}

func TestSequenceTransformations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3)
		assert.Equal(t, []int{1, 3}, s.Filter(odd).ToList())
		assert.Equal(t, []int{1, 2, 3, 0, 0}, s.Pad(5, 0).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.Pad(2, 0).ToList())
		assert.Equal(t, []int{3, 2, 1}, s.Sort(collection.Descending[int]).ToList())
		assert.Equal(t, []int{3, 2, 1}, s.Reverse().ToList())
		assert.Equal(t, []int{1, 2, 3, 4}, s.Append(collection.Of(4)).ToList())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Add(4, 5).ToList())
		assert.Equal(t, []int{1, 3}, s.Diff(collection.Of(2)).ToList())
		assert.Equal(t, []int{2, 3}, s.Intersect(collection.Of(2, 3, 4)).ToList())
		assert.Equal(t, []int{1, 2, 3}, of(1, 2, 1, 3, 2).Distinct().ToList())
		assert.Equal(t, []int{2, 2}, of(1, 2, 2, 3).Intersect(collection.Of(2)).ToList())
		assert.Equal(t, []int{1, 3, 3}, of(1, 2, 3, 3).Diff(of(2)).ToList())
		assert.Equal(t, []int{1, 2, 3}, s.ToList(), "receiver must stay unchanged")
	})
}

func TestSequenceFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3)
		strs := collection.MapSeq(s, strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, strs.ToList())
		twice := collection.FlatMapSeq(s, func(n int) collection.Sequence[int] {
			return collection.Of(n, n)
		})
		assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, twice.ToList())
		assert.Equal(t, 6, collection.ReduceSeq(s, 0, collection.Sum[int]))
		var sum func(collection.Sequence[int]) int
		sum = func(s collection.Sequence[int]) int {
			return collection.MatchSeq(s, func(head int, tail collection.Sequence[int]) int {
				return head + sum(tail)
			}, func() int {
				return 0
			})
		}
		assert.Equal(t, 6, sum(s))
		n := 0
		s.Foreach(func(x int) { n += x })
		assert.Equal(t, 6, n)
	})
}

func TestSequencePredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3)
		assert.Equal(t, 2, s.Find(func(n int) bool { return n > 1 }).WithDefault(-1))
		assert.False(t, s.Find(func(n int) bool { return n > 5 }).IsJust())
		x, err := s.Require(func(n int) bool { return n > 2 })
		assert.NoError(t, err)
		assert.Equal(t, 3, x)
		_, err = s.Require(func(n int) bool { return n > 5 })
		assert.ErrorIs(t, err, collection.ErrNoMatch)
		assert.True(t, s.Matches(func(n int) bool { return n > 0 }))
		assert.False(t, s.Matches(odd))
		assert.True(t, s.Any(odd))
		assert.False(t, s.Any(func(n int) bool { return n > 3 }))
	})
}

func TestSequencePartition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		p := collection.PartitionSeq(of(1, 2, 3), odd)
		assert.Equal(t, []bool{true, false}, p.Keys().ToList())
		assert.Equal(t, []int{1, 3}, p.Get(true).WithDefault(collection.Empty[int]()).ToList())
		assert.Equal(t, []int{2}, p.Get(false).WithDefault(collection.Empty[int]()).ToList())
	})
}

func TestSequenceGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	forAllBackings(t, func(t *testing.T, of func(...int) collection.Sequence[int]) {
		s := of(1, 2, 3, 4)
		groups, err := collection.GroupSeq(s, func(n int) int { return n % 2 })
		require.NoError(t, err)
		assert.Equal(t, 2, groups.Size())
		assert.Equal(t, []int{1, 0}, groups.Keys().ToList(), "keys in first-seen order")
		var g collection.Sequence[int]
		switch m := groups.Get(0).Match(); m {
		case m.Just(&g):
			assert.Equal(t, []int{2, 4}, g.ToList())
		case m.Nothing():
			t.Errorf("expected group for key 0")
		}
		assert.True(t, maybe.Match(groups.Get(1), func(g collection.Sequence[int]) bool {
			return g.Equal(collection.Of(1, 3))
		}, func() bool { return false }))
		assert.Equal(t, []int{1, 2, 3, 4}, s.ToList(), "receiver must stay unchanged")
		_, err = collection.GroupSeq(of(), func(n int) int { return n })
		assert.ErrorIs(t, err, collection.ErrEmptyGroupSource)
	})
}

func TestSequenceSortIsComparatorDriven(t *testing.T) {
	s := collection.Of("pear", "fig", "banana", "kiwi")
	byLen := s.Sort(func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, "fig", byLen.First().WithDefault(""))
	assert.Equal(t, "banana", byLen.Last().WithDefault(""))
	assert.Equal(t, []string{"banana", "fig", "kiwi", "pear"}, s.Sort(collection.Ascending[string]).ToList())
}

func TestNarrow(t *testing.T) {
	s := collection.Of[any](1, 2, 3)
	ints, err := collection.Narrow[any, int](s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ints.ToList())
	_, err = collection.Narrow[any, int](s.Add("four"))
	assert.ErrorIs(t, err, collection.ErrTypeMismatch)
	var cerr *collection.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, collection.TypeMismatch, cerr.Kind)
	assert.Equal(t, "Narrow", cerr.Op)
}

func TestZeroSequence(t *testing.T) {
	var s collection.Sequence[int]
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, []int{1}, s.Add(1).ToList())
	assert.Equal(t, "Sequence[]", s.String())
}

func TestSequenceOfSequences(t *testing.T) {
	a := collection.Of(collection.Of(1, 2), collection.Of(3))
	b := collection.Of(collection.Of(1, 2), collection.Of(3))
	assert.True(t, a.Equal(b))
	assert.True(t, a.Contains(collection.Of(3)))
	assert.False(t, a.Contains(collection.Of(4)))
	c := collection.Of[any](collection.Of(1, 2), "x")
	d := collection.Of[any](collection.Of(1, 2), "x")
	assert.True(t, c.Equal(d), "elements held as any compare by their Equal method")
	assert.False(t, c.Equal(collection.Of[any](collection.Of(2, 1), "x")))
}

func TestWithBitsPerLevel(t *testing.T) {
	values := make([]int, 100)
	for i := range values {
		values[i] = i
	}
	s := collection.FromSlice(values, collection.WithBitsPerLevel(1))
	assert.Equal(t, 100, s.Size())
	assert.Equal(t, 57, s.Get(57).WithDefault(-1))
	assert.Equal(t, []int{97, 98, 99}, s.TakeEnd(3).ToList())
	assert.Equal(t, 0, collection.Empty[int](collection.WithBitsPerLevel(2)).Size())
}

func TestSequenceString(t *testing.T) {
	assert.Equal(t, "Sequence[1 2 3]", collection.Of(1, 2, 3).String())
	d := collection.Defer(pullOver([]int{1, 2, 3}))
	assert.Equal(t, "Sequence[…]", d.String())
	d.Get(0)
	assert.Equal(t, "Sequence[1 …]", d.String())
	d.Size()
	assert.Equal(t, "Sequence[1 2 3]", d.String())
	l := collection.LazySeq(seqOver([]int{1}))
	assert.Equal(t, "Sequence[…]", l.String())
}
