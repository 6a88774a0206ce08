package collection

import (
	"fmt"
	"iter"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
)

// implementation is the contract every backing strategy of a Sequence satisfies.
// There are exactly three conforming types: eager, *deferred and lazy.
// Operations changing the element type cannot be methods in Go; they are
// package functions dispatching over these three (see transform.go).
//
// Sizes and indices out of range clamp instead of failing.
type implementation[T any] interface {
	add(values ...T) implementation[T]
	put(index int, value T) implementation[T] // replace value at index
	size() int
	all() iter.Seq[T]
	get(index int) maybe.Maybe[T]
	first() maybe.Maybe[T]
	last() maybe.Maybe[T]
	contains(value T) bool
	indexOf(value T) maybe.Maybe[int]
	diff(other implementation[T]) implementation[T]
	intersect(other implementation[T]) implementation[T]
	distinct() implementation[T]
	drop(n int) implementation[T]
	dropEnd(n int) implementation[T]
	take(n int) implementation[T]
	takeEnd(n int) implementation[T]
	slice(from, until int) implementation[T]
	filter(predicate func(T) bool) implementation[T]
	foreach(f func(T)) immutable.SideEffect
	pad(size int, value T) implementation[T]
	sort(cmp func(T, T) int) implementation[T]
	append(other implementation[T]) implementation[T]
	clear() implementation[T]
	reverse() implementation[T]
	empty() bool
	find(predicate func(T) bool) maybe.Maybe[T]
	equals(other implementation[T]) bool
}

// --- Shared helpers --------------------------------------------------------

// membership returns a containment test for other. Lazy sequences are
// traversed once per call of membership, not once per test.
func membership[T any](other implementation[T]) func(T) bool {
	if l, ok := other.(lazy[T]); ok {
		values := collect(l.all())
		return func(x T) bool {
			return indexIn(values, x) >= 0
		}
	}
	return other.contains
}

func indexIn[T any](values []T, x T) int {
	for i, v := range values {
		if immutable.Equal(v, x) {
			return i
		}
	}
	return -1
}

func collect[T any](seq iter.Seq[T]) []T {
	var values []T
	for x := range seq {
		values = append(values, x)
	}
	return values
}

// equalSeqs compares two iterations element-wise, in order.
func equalSeqs[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !immutable.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func findIn[T any](seq iter.Seq[T], predicate func(T) bool) maybe.Maybe[T] {
	for x := range seq {
		if predicate(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

func indexOfIn[T any](seq iter.Seq[T], value T) maybe.Maybe[int] {
	i := 0
	for x := range seq {
		if immutable.Equal(x, value) {
			return maybe.Just(i)
		}
		i++
	}
	return maybe.Nothing[int]()
}

// clampRange normalizes [from, until) to a valid range within size.
func clampRange(from, until, size int) (int, int) {
	from = clamp(from, 0, size)
	until = clamp(until, from, size)
	return from, until
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("collection: "+msg, msgargs...)
		panic(msg)
	}
}
