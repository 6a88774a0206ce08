package collection

import (
	"iter"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/persistent/vector"
	"golang.org/x/exp/slices"
)

// eager holds its values in a persistent vector. Every operation is computed
// immediately; unchanged parts of the vector are shared between results.
type eager[T any] struct {
	vec vector.Vector[T]
}

var _ implementation[int] = eager[int]{}

func newEager[T any](values []T, opts ...vector.Option) eager[T] {
	return eager[T]{vec: vector.FromSlice(values, opts...)}
}

// likeEager creates an empty vector with the same degree as e.
func likeEager[T, S any](e eager[T]) eager[S] {
	return eager[S]{vec: vector.Immutable[S](vector.BitsPerLevel(e.vec.BitsPerLevel()))}
}

func (e eager[T]) rebuild(values []T) eager[T] {
	return eager[T]{vec: likeEager[T, T](e).vec.Append(values...)}
}

func (e eager[T]) values() []T {
	return e.vec.ToSlice()
}

func (e eager[T]) add(values ...T) implementation[T] {
	return eager[T]{vec: e.vec.Append(values...)}
}

func (e eager[T]) put(index int, value T) implementation[T] {
	if index < 0 || index >= e.vec.Len() {
		return e
	}
	return eager[T]{vec: e.vec.Set(index, value)}
}

func (e eager[T]) size() int {
	return e.vec.Len()
}

func (e eager[T]) all() iter.Seq[T] {
	return e.vec.Values()
}

func (e eager[T]) get(index int) maybe.Maybe[T] {
	if index < 0 || index >= e.vec.Len() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(e.vec.Get(index))
}

func (e eager[T]) first() maybe.Maybe[T] {
	return e.get(0)
}

func (e eager[T]) last() maybe.Maybe[T] {
	return e.vec.Last()
}

func (e eager[T]) contains(value T) bool {
	return e.indexOf(value).IsJust()
}

func (e eager[T]) indexOf(value T) maybe.Maybe[int] {
	return indexOfIn(e.all(), value)
}

func (e eager[T]) diff(other implementation[T]) implementation[T] {
	in := membership(other)
	return e.filter(func(x T) bool { return !in(x) })
}

func (e eager[T]) intersect(other implementation[T]) implementation[T] {
	return e.filter(membership(other))
}

func (e eager[T]) distinct() implementation[T] {
	var seen []T
	for x := range e.all() {
		if indexIn(seen, x) < 0 {
			seen = append(seen, x)
		}
	}
	if len(seen) == e.size() {
		return e
	}
	return e.rebuild(seen)
}

func (e eager[T]) drop(n int) implementation[T] {
	return e.slice(n, e.size())
}

// dropEnd pops values off the end, keeping the vector's trie shared.
func (e eager[T]) dropEnd(n int) implementation[T] {
	n = clamp(n, 0, e.size())
	vec := e.vec
	for i := 0; i < n; i++ {
		vec = vec.Pop()
	}
	return eager[T]{vec: vec}
}

func (e eager[T]) take(n int) implementation[T] {
	n = clamp(n, 0, e.size())
	return e.dropEnd(e.size() - n)
}

func (e eager[T]) takeEnd(n int) implementation[T] {
	n = clamp(n, 0, e.size())
	return e.slice(e.size()-n, e.size())
}

func (e eager[T]) slice(from, until int) implementation[T] {
	from, until = clampRange(from, until, e.size())
	if from == 0 {
		return e.dropEnd(e.size() - until)
	}
	vec := likeEager[T, T](e).vec
	for i := from; i < until; i++ {
		vec = vec.Push(e.vec.Get(i))
	}
	return eager[T]{vec: vec}
}

func (e eager[T]) filter(predicate func(T) bool) implementation[T] {
	vec := likeEager[T, T](e).vec
	for x := range e.all() {
		if predicate(x) {
			vec = vec.Push(x)
		}
	}
	return eager[T]{vec: vec}
}

func (e eager[T]) foreach(f func(T)) immutable.SideEffect {
	for x := range e.all() {
		f(x)
	}
	return immutable.SideEffect{}
}

func (e eager[T]) pad(size int, value T) implementation[T] {
	vec := e.vec
	for vec.Len() < size {
		vec = vec.Push(value)
	}
	return eager[T]{vec: vec}
}

// sort is not stable.
func (e eager[T]) sort(cmp func(T, T) int) implementation[T] {
	values := e.values()
	slices.SortFunc(values, cmp)
	return e.rebuild(values)
}

func (e eager[T]) append(other implementation[T]) implementation[T] {
	vec := e.vec
	for x := range other.all() {
		vec = vec.Push(x)
	}
	return eager[T]{vec: vec}
}

func (e eager[T]) clear() implementation[T] {
	return likeEager[T, T](e)
}

func (e eager[T]) reverse() implementation[T] {
	vec := likeEager[T, T](e).vec
	for i := e.size() - 1; i >= 0; i-- {
		vec = vec.Push(e.vec.Get(i))
	}
	return eager[T]{vec: vec}
}

func (e eager[T]) empty() bool {
	return e.vec.Len() == 0
}

func (e eager[T]) find(predicate func(T) bool) maybe.Maybe[T] {
	return findIn(e.all(), predicate)
}

func (e eager[T]) equals(other implementation[T]) bool {
	if o, ok := other.(eager[T]); ok && o.size() != e.size() {
		return false
	}
	return equalSeqs(e.values(), collect(other.all()))
}
