package collection

import (
	"iter"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
	"golang.org/x/exp/slices"
)

// RegisterCleanup is handed to a Generator at the start of every traversal.
// A cleanup function registered with it runs exactly once if the traversal
// is stopped before the generator reaches its natural end.
type RegisterCleanup func(cleanup func())

// Generator is a factory for restartable sources. It is called once per
// traversal.
type Generator[T any] func(register RegisterCleanup) iter.Seq[T]

// lazy is a pipeline of push iterators over a generator. Every traversal of
// src starts the generator afresh.
type lazy[T any] struct {
	src iter.Seq[T]
}

var _ implementation[int] = lazy[int]{}

func newLazy[T any](gen Generator[T]) lazy[T] {
	return lazy[T]{src: guard(gen)}
}

// guard wraps a generator with the cleanup protocol. Cleanups registered during
// a traversal run (in reverse order of registration) if the consumer stops the
// traversal or a panic unwinds through it. They are dropped if the generator
// returns on its own.
func guard[T any](gen Generator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var cleanups []func()
		register := func(cleanup func()) {
			if cleanup != nil {
				cleanups = append(cleanups, cleanup)
			}
		}
		stopped, ended := false, false
		defer func() {
			if stopped || !ended {
				if len(cleanups) > 0 {
					tracer().Debugf("lazy sequence stopped early, running %d cleanup(s)", len(cleanups))
				}
				for i := len(cleanups) - 1; i >= 0; i-- {
					cleanups[i]()
				}
			}
		}()
		for x := range gen(register) {
			if !yield(x) {
				stopped = true
				break
			}
		}
		ended = true
	}
}

// stage composes a new pipeline step on top of l.
func stage[T, S any](l lazy[T], step func(src iter.Seq[T], yield func(S) bool)) lazy[S] {
	return lazy[S]{src: func(yield func(S) bool) {
		step(l.src, yield)
	}}
}

// realized composes a step which needs all values of a traversal first.
func (l lazy[T]) realized(f func([]T) []T) lazy[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		for _, x := range f(collect(src)) {
			if !yield(x) {
				return
			}
		}
	})
}

func (l lazy[T]) add(values ...T) implementation[T] {
	return l.append(newEager(values))
}

func (l lazy[T]) put(index int, value T) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		i := 0
		for x := range src {
			if i == index {
				x = value
			}
			if !yield(x) {
				return
			}
			i++
		}
	})
}

func (l lazy[T]) size() int {
	n := 0
	for range l.src {
		n++
	}
	return n
}

func (l lazy[T]) all() iter.Seq[T] {
	return l.src
}

func (l lazy[T]) get(index int) maybe.Maybe[T] {
	if index < 0 {
		return maybe.Nothing[T]()
	}
	i := 0
	for x := range l.src {
		if i == index {
			return maybe.Just(x)
		}
		i++
	}
	return maybe.Nothing[T]()
}

func (l lazy[T]) first() maybe.Maybe[T] {
	return l.get(0)
}

func (l lazy[T]) last() maybe.Maybe[T] {
	var last T
	found := false
	for x := range l.src {
		last, found = x, true
	}
	if !found {
		return maybe.Nothing[T]()
	}
	return maybe.Just(last)
}

func (l lazy[T]) contains(value T) bool {
	return l.indexOf(value).IsJust()
}

func (l lazy[T]) indexOf(value T) maybe.Maybe[int] {
	return indexOfIn(l.src, value)
}

func (l lazy[T]) diff(other implementation[T]) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		in := membership(other)
		for x := range src {
			if !in(x) && !yield(x) {
				return
			}
		}
	})
}

func (l lazy[T]) intersect(other implementation[T]) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		in := membership(other)
		for x := range src {
			if in(x) && !yield(x) {
				return
			}
		}
	})
}

// distinct suppresses duplicates incrementally, per traversal.
func (l lazy[T]) distinct() implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		var seen []T
		for x := range src {
			if indexIn(seen, x) >= 0 {
				continue
			}
			seen = append(seen, x)
			if !yield(x) {
				return
			}
		}
	})
}

func (l lazy[T]) drop(n int) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		i := 0
		for x := range src {
			if i++; i <= n {
				continue
			}
			if !yield(x) {
				return
			}
		}
	})
}

// dropEnd holds back the last n values of a traversal in a ring buffer.
func (l lazy[T]) dropEnd(n int) implementation[T] {
	if n <= 0 {
		return l
	}
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		var ring ringBuffer[T]
		for x := range src {
			if old, full := ring.push(x, n); full && !yield(old) {
				return
			}
		}
	})
}

// ringBuffer holds the last values of a traversal. It grows as values arrive,
// so its size is bounded by the traversal, not by the requested count.
type ringBuffer[T any] struct {
	buf  []T
	next int // index of the oldest value once buf is full
}

// push adds x to a ring of capacity n (n > 0). If the ring was full, the
// oldest value is evicted and returned.
func (r *ringBuffer[T]) push(x T, n int) (T, bool) {
	if len(r.buf) < n {
		r.buf = append(r.buf, x)
		var zero T
		return zero, false
	}
	old := r.buf[r.next]
	r.buf[r.next] = x
	r.next = (r.next + 1) % len(r.buf)
	return old, true
}

// values iterates from the oldest to the newest value.
func (r *ringBuffer[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.buf {
			if !yield(r.buf[(r.next+i)%len(r.buf)]) {
				return
			}
		}
	}
}

// take stops the source right after the n-th value.
func (l lazy[T]) take(n int) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range src {
			if !yield(x) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	})
}

// takeEnd keeps the last n values of a traversal in a ring buffer.
func (l lazy[T]) takeEnd(n int) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		if n <= 0 {
			return
		}
		var ring ringBuffer[T]
		for x := range src {
			ring.push(x, n)
		}
		for x := range ring.values() {
			if !yield(x) {
				return
			}
		}
	})
}

func (l lazy[T]) slice(from, until int) implementation[T] {
	from = max(from, 0)
	if until <= from {
		return l.take(0)
	}
	return l.drop(from).take(until - from)
}

func (l lazy[T]) filter(predicate func(T) bool) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		for x := range src {
			if predicate(x) && !yield(x) {
				return
			}
		}
	})
}

func (l lazy[T]) foreach(f func(T)) immutable.SideEffect {
	for x := range l.src {
		f(x)
	}
	return immutable.SideEffect{}
}

func (l lazy[T]) pad(size int, value T) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		i := 0
		for x := range src {
			if !yield(x) {
				return
			}
			i++
		}
		for ; i < size; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// sort realizes every traversal. It is not stable.
func (l lazy[T]) sort(cmp func(T, T) int) implementation[T] {
	return l.realized(func(values []T) []T {
		slices.SortFunc(values, cmp)
		return values
	})
}

func (l lazy[T]) append(other implementation[T]) implementation[T] {
	return stage(l, func(src iter.Seq[T], yield func(T) bool) {
		for x := range src {
			if !yield(x) {
				return
			}
		}
		for x := range other.all() {
			if !yield(x) {
				return
			}
		}
	})
}

func (l lazy[T]) clear() implementation[T] {
	return lazy[T]{src: func(func(T) bool) {}}
}

// reverse realizes every traversal.
func (l lazy[T]) reverse() implementation[T] {
	return l.realized(func(values []T) []T {
		slices.Reverse(values)
		return values
	})
}

func (l lazy[T]) empty() bool {
	return !l.first().IsJust()
}

func (l lazy[T]) find(predicate func(T) bool) maybe.Maybe[T] {
	return findIn(l.src, predicate)
}

func (l lazy[T]) equals(other implementation[T]) bool {
	return equalSeqs(collect(l.src), collect(other.all()))
}
