package collection

import (
	"fmt"
	"strings"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
)

// Map is an immutable association of unique keys to values, ordered by
// insertion of keys. The zero value is an empty map.
//
// A map is held as three index-aligned eager sequences: keys, values and
// key/value pairs. Index i refers to the same entry in each of them. Lookups
// are linear.
type Map[K, V any] struct {
	keys   Sequence[K]
	values Sequence[V]
	pairs  Sequence[immutable.Pair[K, V]]
}

// EmptyMap creates a map without entries.
func EmptyMap[K, V any]() Map[K, V] {
	return Map[K, V]{}
}

// MapOf creates a map from pairs. For duplicate keys the last pair wins,
// at the position of the first one.
func MapOf[K, V any](pairs ...immutable.Pair[K, V]) Map[K, V] {
	m := EmptyMap[K, V]()
	for _, p := range pairs {
		m = m.Put(p.Left, p.Right)
	}
	return m
}

// Put associates value with key. If key is already present, its value is
// replaced in place, keeping the position of the entry.
func (m Map[K, V]) Put(key K, value V) Map[K, V] {
	var i int
	switch mi := m.keys.IndexOf(key).Match(); mi {
	case mi.Just(&i):
		return Map[K, V]{
			keys:   m.keys,
			values: wrap(m.values.backing().put(i, value)),
			pairs:  wrap(m.pairs.backing().put(i, immutable.P(key, value))),
		}
	}
	return Map[K, V]{
		keys:   m.keys.Add(key),
		values: m.values.Add(value),
		pairs:  m.pairs.Add(immutable.P(key, value)),
	}
}

func (m Map[K, V]) Get(key K) maybe.Maybe[V] {
	return maybe.AndThen(m.values.Get, m.keys.IndexOf(key))
}

func (m Map[K, V]) Contains(key K) bool {
	return m.keys.Contains(key)
}

// Remove deletes the entry for key. Removing an absent key returns m.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	return maybe.Match(m.keys.IndexOf(key), func(i int) Map[K, V] {
		return Map[K, V]{
			keys:   removeAt(m.keys, i),
			values: removeAt(m.values, i),
			pairs:  removeAt(m.pairs, i),
		}
	}, immutable.Const(m))
}

func removeAt[T any](s Sequence[T], i int) Sequence[T] {
	return s.Take(i).Append(s.Drop(i + 1))
}

// Merge puts every entry of other into m. Values of other win for keys present
// in both maps.
func (m Map[K, V]) Merge(other Map[K, V]) Map[K, V] {
	return ReduceSeq(other.pairs, m, func(acc Map[K, V], p immutable.Pair[K, V]) Map[K, V] {
		return acc.Put(p.Left, p.Right)
	})
}

func (m Map[K, V]) Size() int {
	return m.keys.Size()
}

// Count is a synonym for Size.
func (m Map[K, V]) Count() int {
	return m.keys.Size()
}

func (m Map[K, V]) Empty() bool {
	return m.keys.Empty()
}

// Keys returns the keys of m, in insertion order.
func (m Map[K, V]) Keys() Sequence[K] {
	return m.keys
}

// Values returns the values of m, aligned with Keys.
func (m Map[K, V]) Values() Sequence[V] {
	return m.values
}

// Pairs returns the entries of m, aligned with Keys.
func (m Map[K, V]) Pairs() Sequence[immutable.Pair[K, V]] {
	return m.pairs
}

// KeySet returns the keys of m as a set.
func (m Map[K, V]) KeySet() Set[K] {
	return Set[K]{impl: setPrimitive[K]{elems: m.keys.backing().(eager[K])}}
}

// Filter keeps the entries satisfying predicate.
func (m Map[K, V]) Filter(predicate func(K, V) bool) Map[K, V] {
	return fromPairs(m.pairs.Filter(func(p immutable.Pair[K, V]) bool {
		return predicate(p.Left, p.Right)
	}))
}

// fromPairs builds a map from pairs with unique keys.
func fromPairs[K, V any](pairs Sequence[immutable.Pair[K, V]]) Map[K, V] {
	return Map[K, V]{
		keys: MapSeq(pairs, func(p immutable.Pair[K, V]) K {
			return p.Left
		}),
		values: MapSeq(pairs, func(p immutable.Pair[K, V]) V {
			return p.Right
		}),
		pairs: pairs,
	}
}

func (m Map[K, V]) Foreach(f func(K, V)) immutable.SideEffect {
	return m.pairs.Foreach(func(p immutable.Pair[K, V]) {
		f(p.Left, p.Right)
	})
}

// PartitionMap splits m into the entries satisfying predicate (key true) and
// the others (key false).
func PartitionMap[K, V any](m Map[K, V], predicate func(K, V) bool) Map[bool, Map[K, V]] {
	return MapOf(
		immutable.P(true, m.Filter(predicate)),
		immutable.P(false, m.Filter(func(k K, v V) bool { return !predicate(k, v) })),
	)
}

// Find returns the first entry satisfying predicate, in insertion order.
func (m Map[K, V]) Find(predicate func(K, V) bool) maybe.Maybe[immutable.Pair[K, V]] {
	return m.pairs.Find(func(p immutable.Pair[K, V]) bool {
		return predicate(p.Left, p.Right)
	})
}

// Equal is true if m and other associate equal values with the same keys.
// Order of insertion is not relevant.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.Size() != other.Size() {
		return false
	}
	return m.pairs.Matches(func(p immutable.Pair[K, V]) bool {
		return maybe.Match(other.Get(p.Left), func(v V) bool {
			return immutable.Equal(v, p.Right)
		}, immutable.Const(false))
	})
}

// Clear returns an empty map.
func (m Map[K, V]) Clear() Map[K, V] {
	return EmptyMap[K, V]()
}

func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteString("Map[")
	for i, p := range m.pairs.ToList() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v:%v", p.Left, p.Right))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Map functions ---------------------------------------------------------

// MapEntries transforms every entry of m. If f maps different keys to the
// same new key, the last entry wins.
func MapEntries[K, V, K2, V2 any](m Map[K, V], f func(K, V) (K2, V2)) Map[K2, V2] {
	return ReduceSeq(m.pairs, EmptyMap[K2, V2](), func(acc Map[K2, V2], p immutable.Pair[K, V]) Map[K2, V2] {
		return acc.Put(f(p.Left, p.Right))
	})
}

// ReduceMap is a strict left fold over the entries of m, in insertion order.
func ReduceMap[K, V, R any](m Map[K, V], initial R, f func(R, K, V) R) R {
	return ReduceSeq(m.pairs, initial, func(acc R, p immutable.Pair[K, V]) R {
		return f(acc, p.Left, p.Right)
	})
}

// GroupMap groups the entries of m by discriminator. Keys of the result
// appear in first-seen order. Grouping an empty map is an error
// (ErrEmptyGroupSource).
func GroupMap[K, V, D any](m Map[K, V], discriminator func(K, V) D) (Map[D, Map[K, V]], error) {
	groups, err := groupImpl(m.pairs.backing(), "GroupMap", func(p immutable.Pair[K, V]) D {
		return discriminator(p.Left, p.Right)
	})
	if err != nil {
		return EmptyMap[D, Map[K, V]](), err
	}
	return MapEntries(groups, func(d D, pairs Sequence[immutable.Pair[K, V]]) (D, Map[K, V]) {
		return d, fromPairs(pairs)
	}), nil
}
