package collection

import (
	"fmt"
	"iter"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
)

// Operations changing the element type of a collection. They dispatch over the
// closed set of backings, keeping the backing strategy of their input.

func mapImpl[T, S any](impl implementation[T], f func(T) S) implementation[S] {
	switch x := impl.(type) {
	case eager[T]:
		vec := likeEager[T, S](x).vec
		for v := range x.all() {
			vec = vec.Push(f(v))
		}
		return eager[S]{vec: vec}
	case *deferred[T]:
		next := x.cursor()
		return newDeferred(func() (S, bool) {
			v, ok := next()
			if !ok {
				var zero S
				return zero, false
			}
			return f(v), true
		})
	case lazy[T]:
		return stage(x, func(src iter.Seq[T], yield func(S) bool) {
			for v := range src {
				if !yield(f(v)) {
					return
				}
			}
		})
	}
	panic(fmt.Sprintf("collection: unknown backing %T", impl))
}

// flatMapImpl concatenates the results of f. Deferred and lazy backings
// stay streaming: f is called when its result's values are needed.
func flatMapImpl[T, S any](impl implementation[T], f func(T) implementation[S]) implementation[S] {
	switch x := impl.(type) {
	case eager[T]:
		vec := likeEager[T, S](x).vec
		for v := range x.all() {
			for w := range f(v).all() {
				vec = vec.Push(w)
			}
		}
		return eager[S]{vec: vec}
	case *deferred[T]:
		next := x.cursor()
		var inner func() (S, bool)
		return newDeferred(func() (S, bool) {
			for {
				if inner != nil {
					if w, ok := inner(); ok {
						return w, true
					}
				}
				v, ok := next()
				if !ok {
					var zero S
					return zero, false
				}
				inner = pullFrom(f(v))
			}
		})
	case lazy[T]:
		return stage(x, func(src iter.Seq[T], yield func(S) bool) {
			for v := range src {
				for w := range f(v).all() {
					if !yield(w) {
						return
					}
				}
			}
		})
	}
	panic(fmt.Sprintf("collection: unknown backing %T", impl))
}

// indicesImpl creates the sequence 0…size-1, in the backing strategy of impl.
func indicesImpl[T any](impl implementation[T]) implementation[int] {
	if e, ok := impl.(eager[T]); ok {
		vec := likeEager[T, int](e).vec
		for i := 0; i < e.size(); i++ {
			vec = vec.Push(i)
		}
		return eager[int]{vec: vec}
	}
	i := -1
	if _, ok := impl.(*deferred[T]); ok {
		return mapImpl(impl, func(T) int {
			i++
			return i
		})
	}
	return stage(impl.(lazy[T]), func(src iter.Seq[T], yield func(int) bool) {
		i := 0
		for range src {
			if !yield(i) {
				return
			}
			i++
		}
	})
}

func reduceImpl[T, R any](impl implementation[T], initial R, f func(R, T) R) R {
	acc := initial
	for x := range impl.all() {
		acc = f(acc, x)
	}
	return acc
}

// groupImpl collects values into groups, in first-seen order of their
// discriminator. Groups are eager and keep source order.
func groupImpl[T, D any](impl implementation[T], op string, discriminator func(T) D) (Map[D, Sequence[T]], error) {
	var keys []D
	var groups []implementation[T]
	for x := range impl.all() {
		d := discriminator(x)
		if i := indexIn(keys, d); i >= 0 {
			groups[i] = groups[i].add(x)
			continue
		}
		keys = append(keys, d)
		groups = append(groups, newEager([]T{x}))
	}
	if len(keys) == 0 {
		return EmptyMap[D, Sequence[T]](), fail(EmptyGroupSource, op, "cannot group an empty collection")
	}
	m := EmptyMap[D, Sequence[T]]()
	for i, d := range keys {
		m = m.Put(d, wrap(groups[i]))
	}
	return m, nil
}

// --- Sequence functions ----------------------------------------------------

// MapSeq applies f to every value of s.
func MapSeq[T, S any](s Sequence[T], f func(T) S) Sequence[S] {
	return wrap(mapImpl(s.backing(), f))
}

// FlatMapSeq concatenates, in order, the sequences f returns for the values of s.
// For deferred and lazy sequences the result is streaming.
func FlatMapSeq[T, S any](s Sequence[T], f func(T) Sequence[S]) Sequence[S] {
	return wrap(flatMapImpl(s.backing(), func(x T) implementation[S] {
		return f(x).backing()
	}))
}

// ReduceSeq is a strict left fold over s.
func ReduceSeq[T, R any](s Sequence[T], initial R, f func(R, T) R) R {
	return reduceImpl(s.backing(), initial, f)
}

// GroupSeq groups the values of s by discriminator. Keys appear in first-seen
// order, every group keeps the order of s. Grouping an empty sequence is an error
// (ErrEmptyGroupSource).
func GroupSeq[T, D any](s Sequence[T], discriminator func(T) D) (Map[D, Sequence[T]], error) {
	return groupImpl(s.backing(), "GroupSeq", discriminator)
}

// PartitionSeq splits s into the values satisfying predicate (key true) and
// the others (key false), in this key order.
func PartitionSeq[T any](s Sequence[T], predicate func(T) bool) Map[bool, Sequence[T]] {
	impl := s.backing()
	return MapOf(
		immutable.P(true, wrap(impl.filter(predicate))),
		immutable.P(false, wrap(impl.filter(func(x T) bool { return !predicate(x) }))),
	)
}

// MatchSeq deconstructs s into head and tail. If s is empty, onEmpty is called.
// The tail keeps the backing strategy of s.
func MatchSeq[T, R any](s Sequence[T], onCons func(head T, tail Sequence[T]) R, onEmpty func() R) R {
	impl := s.backing()
	return maybe.Match(impl.first(), func(head T) R {
		return onCons(head, wrap(impl.drop(1)))
	}, onEmpty)
}

// Narrow converts a sequence to a sequence of a more specific element type.
// Every value is checked; if any is not of type S, Narrow returns an error
// matching ErrTypeMismatch. Lazy sequences are traversed once for the check.
func Narrow[T, S any](s Sequence[T]) (Sequence[S], error) {
	i := 0
	for x := range s.All() {
		if _, ok := any(x).(S); !ok {
			var target S
			return Empty[S](), fail(TypeMismatch, "Narrow", "value #%d is %T, not %T", i, x, target)
		}
		i++
	}
	return MapSeq(s, func(x T) S {
		return any(x).(S)
	}), nil
}
