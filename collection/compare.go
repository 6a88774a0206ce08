package collection

import (
	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

// Ascending is a comparator for Sort.
func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Descending is a comparator for Sort.
func Descending[T constraints.Ordered](a, b T) int {
	return Ascending(b, a)
}

// Sum is a reducer for numeric collections:
//
//	total := collection.ReduceSeq(seq, 0, collection.Sum[int])
func Sum[N constraints.Integer | constraints.Float](acc N, x N) N {
	return acc + x
}

// NaturalOrder is a comparator for strings containing numbers, ordering
// "file2" before "file10".
func NaturalOrder(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}
