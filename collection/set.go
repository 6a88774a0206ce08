package collection

import (
	"iter"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
)

// Set is an immutable collection of unique values. Sets have no index-based
// access. The zero value is an empty set.
//
// Sets created with SetOf check for containment whenever a value is added.
// Sets created with SetDefer or SetLazy suppress duplicates while values are
// produced.
type Set[T any] struct {
	impl setImplementation[T]
}

func (s Set[T]) backing() setImplementation[T] {
	if s.impl == nil {
		return setPrimitive[T]{elems: newEager[T](nil)}
	}
	return s.impl
}

func (s Set[T]) elements() implementation[T] {
	return s.backing().elements()
}

func (s Set[T]) with(elems implementation[T]) Set[T] {
	return Set[T]{impl: s.backing().with(elems)}
}

// SetOf creates a set of values, dropping duplicates.
func SetOf[T any](values ...T) Set[T] {
	return Set[T]{impl: setPrimitive[T]{elems: newEager[T](nil)}.add(values...)}
}

// SetDefer creates a set pulling its values from a one-shot source.
// See Defer.
func SetDefer[T any](next func() (T, bool)) Set[T] {
	return Set[T]{impl: streamSet[T](newDeferred(next))}
}

// SetLazy creates a set calling gen for every traversal. See Lazy.
func SetLazy[T any](gen Generator[T]) Set[T] {
	return Set[T]{impl: streamSet[T](newLazy(gen))}
}

// setFrom creates a set over impl, keeping its backing strategy.
func setFrom[T any](impl implementation[T]) Set[T] {
	if e, ok := impl.(eager[T]); ok {
		return Set[T]{impl: setPrimitive[T]{elems: e.distinct().(eager[T])}}
	}
	return Set[T]{impl: streamSet(impl)}
}

// --- Queries ---------------------------------------------------------------

func (s Set[T]) Size() int {
	return s.elements().size()
}

// Count is a synonym for Size.
func (s Set[T]) Count() int {
	return s.elements().size()
}

// All is an iterator over the values of s.
func (s Set[T]) All() iter.Seq[T] {
	return s.elements().all()
}

// ToList returns the values of s as a fresh slice, which is never nil.
func (s Set[T]) ToList() []T {
	return toList(s.elements())
}

func (s Set[T]) Contains(value T) bool {
	return s.elements().contains(value)
}

func (s Set[T]) Empty() bool {
	return s.elements().empty()
}

func (s Set[T]) Find(predicate func(T) bool) maybe.Maybe[T] {
	return s.elements().find(predicate)
}

// Require is like Find, but absence of a match is an error (ErrNoMatch).
func (s Set[T]) Require(predicate func(T) bool) (T, error) {
	return require(s.elements(), "Set.Require", predicate)
}

// Matches is true if every value of s satisfies predicate.
func (s Set[T]) Matches(predicate func(T) bool) bool {
	return s.ToSequence().Matches(predicate)
}

// Any is true if at least one value of s satisfies predicate.
func (s Set[T]) Any(predicate func(T) bool) bool {
	return s.Find(predicate).IsJust()
}

// Equal is true if s and other hold the same values, in any order.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	in := membership(other.elements())
	return s.Matches(in)
}

func (s Set[T]) Foreach(f func(T)) immutable.SideEffect {
	return s.elements().foreach(f)
}

// --- Transformations -------------------------------------------------------

// Add returns a set with values added, unless already present.
func (s Set[T]) Add(values ...T) Set[T] {
	return Set[T]{impl: s.backing().add(values...)}
}

func (s Set[T]) Remove(value T) Set[T] {
	return s.with(s.elements().filter(func(x T) bool {
		return !immutable.Equal(x, value)
	}))
}

func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return s.with(s.elements().intersect(other.elements()))
}

func (s Set[T]) Diff(other Set[T]) Set[T] {
	return s.with(s.elements().diff(other.elements()))
}

// Merge returns the union of s and other; values of s come first.
func (s Set[T]) Merge(other Set[T]) Set[T] {
	return Set[T]{impl: s.backing().merge(other.backing())}
}

func (s Set[T]) Filter(predicate func(T) bool) Set[T] {
	return s.with(s.elements().filter(predicate))
}

// Sort returns the values of s as a sequence ordered by cmp.
func (s Set[T]) Sort(cmp func(T, T) int) Sequence[T] {
	return wrap(s.elements().sort(cmp))
}

// Clear returns an empty set of the same backing strategy.
func (s Set[T]) Clear() Set[T] {
	return s.with(s.elements().clear())
}

// ToSequence returns the values of s as a sequence of the same backing strategy.
func (s Set[T]) ToSequence() Sequence[T] {
	return wrap(s.elements())
}

func (s Set[T]) String() string {
	return describe("Set", s.elements())
}

// --- Set functions ---------------------------------------------------------

// MapSet applies f to every value of s. Values mapping to equal results
// collapse into one.
func MapSet[T, S any](s Set[T], f func(T) S) Set[S] {
	return setFrom(mapImpl(s.elements(), f))
}

// FlatMapSet is the union of the sets f returns for the values of s.
func FlatMapSet[T, S any](s Set[T], f func(T) Set[S]) Set[S] {
	return setFrom(flatMapImpl(s.elements(), func(x T) implementation[S] {
		return f(x).elements()
	}))
}

// PartitionSet splits s into the values satisfying predicate (key true) and
// the others (key false).
func PartitionSet[T any](s Set[T], predicate func(T) bool) Map[bool, Set[T]] {
	return MapOf(
		immutable.P(true, s.Filter(predicate)),
		immutable.P(false, s.Filter(func(x T) bool { return !predicate(x) })),
	)
}

// ReduceSet is a strict left fold over s.
func ReduceSet[T, R any](s Set[T], initial R, f func(R, T) R) R {
	return reduceImpl(s.elements(), initial, f)
}

// GroupSet groups the values of s by discriminator. Grouping an empty set
// is an error (ErrEmptyGroupSource).
func GroupSet[T, D any](s Set[T], discriminator func(T) D) (Map[D, Set[T]], error) {
	groups, err := groupImpl(s.elements(), "GroupSet", discriminator)
	if err != nil {
		return EmptyMap[D, Set[T]](), err
	}
	return MapEntries(groups, func(d D, values Sequence[T]) (D, Set[T]) {
		return d, setFrom(values.backing())
	}), nil
}
