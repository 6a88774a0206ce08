package collection_test

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/immutable/collection"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// countingSource produces 1…n and counts how many values have been pulled.
func countingSource(n int, pulled *int) func() (int, bool) {
	return func() (int, bool) {
		if *pulled >= n {
			return 0, false
		}
		*pulled++
		return *pulled, true
	}
}

func TestDeferredSingleConsumption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	pulled := 0
	s := collection.Defer(countingSource(5, &pulled))
	evens := s.Filter(func(n int) bool { return n%2 == 0 })
	strs := collection.MapSeq(s, strconv.Itoa)
	if pulled != 0 {
		t.Fatalf("expected derived sequences to stay unrealized, source pulled %d times", pulled)
	}
	assert.Equal(t, []int{2, 4}, evens.ToList())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, strs.ToList())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.ToList())
	assert.Equal(t, []int{2, 4}, evens.ToList())
	if pulled != 5 {
		t.Errorf("expected source to be pulled 5 times in total, was %d", pulled)
	}
}

func TestDeferredFindShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	pulled := 0
	s := collection.Defer(countingSource(100, &pulled))
	x := s.Filter(func(n int) bool { return n%3 == 0 }).Find(func(n int) bool { return n > 4 })
	assert.Equal(t, 6, x.WithDefault(-1))
	if pulled != 6 {
		t.Errorf("expected find to pull 6 values, pulled %d", pulled)
	}
	assert.Equal(t, 3, s.Get(2).WithDefault(-1))
	assert.Equal(t, 6, pulled)
	assert.Equal(t, []int{1, 2, 3}, s.Take(3).ToList())
	assert.Equal(t, 6, pulled, "take must not pull beyond its limit")
}

func TestDeferredFlatMapIsStreaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	pulled := 0
	s := collection.Defer(countingSource(10, &pulled))
	fm := collection.FlatMapSeq(s, func(n int) collection.Sequence[int] {
		return collection.Of(n, -n)
	})
	assert.Equal(t, []int{1, -1, 2}, fm.Take(3).ToList())
	assert.Equal(t, 2, pulled)
}

func TestDeferredRealizingOperations(t *testing.T) {
	pulled := 0
	s := collection.Defer(countingSource(4, &pulled))
	r := s.Reverse()
	assert.Equal(t, 0, pulled)
	assert.Equal(t, 4, r.First().WithDefault(-1))
	assert.Equal(t, 4, pulled)
	assert.Equal(t, []int{3, 4}, s.TakeEnd(2).ToList())
	assert.Equal(t, []int{1, 2}, s.DropEnd(2).ToList())
	assert.Equal(t, 4, pulled)
}

func TestDeferredAppendAcrossBackings(t *testing.T) {
	s := collection.Defer(pullOver([]int{1, 2}))
	l := collection.LazySeq(seqOver([]int{5, 6}))
	all := s.Append(collection.Of(3, 4)).Append(l)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, all.ToList())
	assert.Equal(t, []int{1, 2}, s.ToList())
}

func TestDeferChan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	ch := make(chan string)
	go func() {
		for _, s := range []string{"a", "b", "c"} {
			ch <- s
		}
		close(ch)
	}()
	s := collection.DeferChan(ch)
	assert.Equal(t, "a", s.First().WithDefault(""))
	assert.Equal(t, []string{"a", "b", "c"}, s.ToList())
	assert.Equal(t, 3, s.Size())
}

func TestDeferredConcurrentFirstAccess(t *testing.T) {
	pulled := 0
	s := collection.Defer(countingSource(1000, &pulled))
	var wg sync.WaitGroup
	sizes := make([]int, 8)
	for i := range sizes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sizes[i] = s.Size()
		}(i)
	}
	wg.Wait()
	for _, n := range sizes {
		assert.Equal(t, 1000, n)
	}
	assert.Equal(t, 1000, pulled)
}

func TestDeferredCallbackMayDescribeSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.collection")
	defer teardown()
	//
	var seen []string
	var evens collection.Sequence[int]
	evens = collection.Defer(pullOver([]int{1, 2, 3, 4})).Filter(func(n int) bool {
		seen = append(seen, evens.String())
		return n%2 == 0
	})
	done := make(chan []int)
	go func() {
		done <- evens.ToList()
	}()
	select {
	case values := <-done:
		assert.Equal(t, []int{2, 4}, values)
	case <-time.After(5 * time.Second):
		t.Fatal("describing a deferred sequence from within its own predicate blocks")
	}
	assert.Equal(t, []string{"Sequence[…]", "Sequence[…]", "Sequence[2 …]", "Sequence[2 …]"}, seen)
}
