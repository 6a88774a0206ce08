package immutable

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a tuple of two values. Maps use pairs to represent their entries.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair (x, y).
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Matches is true if both components of p are equal to the components of other.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return Equal(p.Left, other.Left) && Equal(p.Right, other.Right)
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// --- SideEffect ------------------------------------------------------------

// SideEffect is returned by operations which are executed for their effect only,
// e.g. iterating over every element of a collection. Receiving a SideEffect
// tells the caller that the operation ran (once).
type SideEffect struct{}
