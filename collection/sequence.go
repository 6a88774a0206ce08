package collection

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
)

// Sequence is an immutable ordered list of values, permitting duplicates.
// The zero value is an empty eager sequence.
//
// Sequences are backed by one of three strategies (see package documentation).
// All operations behave identically for every backing; they differ in when
// values are computed. Operations which need every value (Size, Last, Sort,
// Reverse, TakeEnd, DropEnd, Equal) realize deferred and lazy sequences.
type Sequence[T any] struct {
	impl implementation[T]
}

func wrap[T any](impl implementation[T]) Sequence[T] {
	return Sequence[T]{impl: impl}
}

func (s Sequence[T]) backing() implementation[T] {
	if s.impl == nil {
		return newEager[T](nil)
	}
	return s.impl
}

// --- Constructors ----------------------------------------------------------

// Of creates an eager sequence of values.
func Of[T any](values ...T) Sequence[T] {
	return wrap[T](newEager(values))
}

// Empty creates an empty eager sequence.
func Empty[T any](opts ...Option) Sequence[T] {
	return wrap[T](newEager[T](nil, configure(opts).vectorOptions()...))
}

// FromSlice creates an eager sequence holding a copy of values.
func FromSlice[T any](values []T, opts ...Option) Sequence[T] {
	return wrap[T](newEager(values, configure(opts).vectorOptions()...))
}

// Defer creates a sequence pulling its values from a one-shot source.
// next returns false when the source is exhausted; it is never called again
// afterwards. Every value is pulled at most once, no matter how many sequences
// are derived from the result.
func Defer[T any](next func() (T, bool)) Sequence[T] {
	return wrap[T](newDeferred(next))
}

// DeferChan creates a deferred sequence receiving its values from ch, until ch
// is closed.
func DeferChan[T any](ch <-chan T) Sequence[T] {
	return Defer(func() (T, bool) {
		x, ok := <-ch
		return x, ok
	})
}

// Lazy creates a sequence calling gen for every traversal.
func Lazy[T any](gen Generator[T]) Sequence[T] {
	return wrap[T](newLazy(gen))
}

// LazySeq creates a lazy sequence from a restartable iterator which does not
// hold resources.
func LazySeq[T any](seq iter.Seq[T]) Sequence[T] {
	return Lazy(func(RegisterCleanup) iter.Seq[T] {
		return seq
	})
}

// --- Queries ---------------------------------------------------------------

// Size returns the number of values in s.
func (s Sequence[T]) Size() int {
	return s.backing().size()
}

// Count is a synonym for Size.
func (s Sequence[T]) Count() int {
	return s.backing().size()
}

// All is an iterator over the values of s. For lazy sequences every
// iteration is a new traversal; stopping the iteration early runs cleanups.
func (s Sequence[T]) All() iter.Seq[T] {
	return s.backing().all()
}

// ToList returns the values of s as a fresh slice, which is never nil.
func (s Sequence[T]) ToList() []T {
	return toList(s.backing())
}

func toList[T any](impl implementation[T]) []T {
	values := collect(impl.all())
	if values == nil {
		return []T{}
	}
	return values
}

func (s Sequence[T]) Get(index int) maybe.Maybe[T] {
	return s.backing().get(index)
}

func (s Sequence[T]) First() maybe.Maybe[T] {
	return s.backing().first()
}

func (s Sequence[T]) Last() maybe.Maybe[T] {
	return s.backing().last()
}

func (s Sequence[T]) Contains(value T) bool {
	return s.backing().contains(value)
}

// IndexOf returns the index of the first occurence of value.
func (s Sequence[T]) IndexOf(value T) maybe.Maybe[int] {
	return s.backing().indexOf(value)
}

// Indices returns the sequence of valid indices of s.
func (s Sequence[T]) Indices() Sequence[int] {
	return wrap(indicesImpl(s.backing()))
}

// Empty is true if s has no value at index 0.
func (s Sequence[T]) Empty() bool {
	return s.backing().empty()
}

// Find returns the first value satisfying predicate. Deferred and lazy sources
// are not consumed beyond the match.
func (s Sequence[T]) Find(predicate func(T) bool) maybe.Maybe[T] {
	return s.backing().find(predicate)
}

// Require is like Find, but absence of a match is an error (ErrNoMatch).
func (s Sequence[T]) Require(predicate func(T) bool) (T, error) {
	return require(s.backing(), "Require", predicate)
}

func require[T any](impl implementation[T], op string, predicate func(T) bool) (T, error) {
	var x T
	switch m := impl.find(predicate).Match(); m {
	case m.Just(&x):
		return x, nil
	}
	return x, fail(NoMatch, op, "")
}

// Matches is true if every value of s satisfies predicate.
func (s Sequence[T]) Matches(predicate func(T) bool) bool {
	return !s.backing().find(func(x T) bool { return !predicate(x) }).IsJust()
}

// Any is true if at least one value of s satisfies predicate.
func (s Sequence[T]) Any(predicate func(T) bool) bool {
	return s.backing().find(predicate).IsJust()
}

// Equal compares s and other value by value, in order.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	return s.backing().equals(other.backing())
}

// Foreach calls f for every value of s, in order.
func (s Sequence[T]) Foreach(f func(T)) immutable.SideEffect {
	return s.backing().foreach(f)
}

// --- Transformations -------------------------------------------------------

// Add returns a sequence with values appended.
func (s Sequence[T]) Add(values ...T) Sequence[T] {
	return wrap(s.backing().add(values...))
}

// Diff returns the values of s not contained in other, keeping order and
// duplicates of s.
func (s Sequence[T]) Diff(other Sequence[T]) Sequence[T] {
	return wrap(s.backing().diff(other.backing()))
}

// Intersect returns the values of s contained in other, keeping order and
// duplicates of s.
func (s Sequence[T]) Intersect(other Sequence[T]) Sequence[T] {
	return wrap(s.backing().intersect(other.backing()))
}

// Distinct removes duplicates; the first occurence wins.
func (s Sequence[T]) Distinct() Sequence[T] {
	return wrap(s.backing().distinct())
}

func (s Sequence[T]) Drop(n int) Sequence[T] {
	return wrap(s.backing().drop(n))
}

func (s Sequence[T]) DropEnd(n int) Sequence[T] {
	return wrap(s.backing().dropEnd(n))
}

func (s Sequence[T]) Take(n int) Sequence[T] {
	return wrap(s.backing().take(n))
}

func (s Sequence[T]) TakeEnd(n int) Sequence[T] {
	return wrap(s.backing().takeEnd(n))
}

// Slice returns the values at indices [from, until).
func (s Sequence[T]) Slice(from, until int) Sequence[T] {
	return wrap(s.backing().slice(from, until))
}

func (s Sequence[T]) Filter(predicate func(T) bool) Sequence[T] {
	return wrap(s.backing().filter(predicate))
}

// Pad appends value until s has at least size values.
func (s Sequence[T]) Pad(size int, value T) Sequence[T] {
	return wrap(s.backing().pad(size, value))
}

// Sort orders s by cmp, which returns a negative number for a < b, a
// positive number for a > b and zero otherwise. Sort is not stable.
func (s Sequence[T]) Sort(cmp func(T, T) int) Sequence[T] {
	return wrap(s.backing().sort(cmp))
}

// Append returns the values of s followed by the values of other.
func (s Sequence[T]) Append(other Sequence[T]) Sequence[T] {
	return wrap(s.backing().append(other.backing()))
}

// Clear returns an empty sequence of the same backing strategy.
func (s Sequence[T]) Clear() Sequence[T] {
	return wrap(s.backing().clear())
}

func (s Sequence[T]) Reverse() Sequence[T] {
	return wrap(s.backing().reverse())
}

// ToSet converts s to a set, keeping the first occurence of every value.
func (s Sequence[T]) ToSet() Set[T] {
	return setFrom(s.backing())
}

// String lists the values of eager sequences. Deferred sequences show the
// values pulled so far, lazy sequences are not traversed.
func (s Sequence[T]) String() string {
	return describe("Sequence", s.backing())
}

func describe[T any](name string, impl implementation[T]) string {
	var values []T
	more := false
	switch x := impl.(type) {
	case eager[T]:
		values = x.values()
	case *deferred[T]:
		x.mu.Lock()
		values, more = x.values, !x.done
		x.mu.Unlock()
	case lazy[T]:
		more = true
	}
	b := strings.Builder{}
	b.WriteString(name)
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", v))
	}
	if more {
		if len(values) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("…")
	}
	b.WriteByte(']')
	return b.String()
}
