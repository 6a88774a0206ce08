/*
Package either implements a sum type of two alternatives.

Haskell:

	type Either a b = Left a | Right b

An Either holds either a Right value (the primary outcome of a computation)
or a Left value (an alternate outcome, often an error). Combinators are biased
towards Right: Map and FlatMap act on Right values and let Left values pass
through, LeftMap and Otherwise are their duals on the Left side.

Clients pattern-match with a switch statement:

	var n int
	var s string
	switch m := e.Match(); m {
	case m.Right(&n):
		…
	case m.Left(&s):
		…
	}

or pass both branches to function Match.

Go does not have union types. Where a Left type may change between steps of
a computation, FlatMap requires a common Left type; use LeftMap to widen a
Left type beforehand. Otherwise, working on the Left side, may change the Left
type freely.
*/
package either

import (
	"fmt"

	"github.com/npillmayer/immutable/maybe"
)

// Either is the interface of values holding a Left or a Right alternative.
// The package functions treat a nil Either as Left holding the zero value of L.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsRight() bool
	Filter(predicate func(R) bool, onFail func() L) Either[L, R]
}

// EitherSum is a stand-in for a sum type:
//
//	type Either[L, R any] union {
//	    Left  L
//	    Right R
//	}
type eitherSum[L, R any] struct {
	right bool // discriminator
	l     L
	r     R
}

// Right creates an Either holding r.
func Right[L, R any](r R) Either[L, R] {
	return eitherSum[L, R]{right: true, r: r}
}

// Left creates an Either holding l.
func Left[L, R any](l L) Either[L, R] {
	return eitherSum[L, R]{l: l}
}

func (sum eitherSum[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: sum}
}

func (sum eitherSum[L, R]) IsRight() bool {
	return sum.right
}

// Filter demotes a Right value to a Left value if it does not satisfy predicate.
// onFail produces the Left value.
func (sum eitherSum[L, R]) Filter(predicate func(R) bool, onFail func() L) Either[L, R] {
	if sum.right && !predicate(sum.r) {
		return Left[L, R](onFail())
	}
	return sum
}

func (sum eitherSum[L, R]) String() string {
	if sum.right {
		return fmt.Sprintf("Right(%v)", sum.r)
	}
	return fmt.Sprintf("Left(%v)", sum.l)
}

// --- Combinators -----------------------------------------------------------

// split extracts the alternative e holds through its matcher, so any
// implementation of Either will do. A nil Either counts as a Left holding
// the zero value of L.
func split[L, R any](e Either[L, R]) (l L, r R, right bool) {
	if e == nil {
		return l, r, false
	}
	switch m := e.Match(); m {
	case m.Right(&r):
		return l, r, true
	case m.Left(&l):
	}
	return l, r, false
}

// Match calls onRight or onLeft, depending on the alternative e holds.
// It is the only way to extract a plain value from an Either.
func Match[L, R, T any](e Either[L, R], onRight func(R) T, onLeft func(L) T) T {
	l, r, right := split(e)
	if right {
		return onRight(r)
	}
	return onLeft(l)
}

// Map applies f to a Right value. A Left value passes unchanged.
func Map[L, R, T any](f func(R) T, e Either[L, R]) Either[L, T] {
	l, r, right := split(e)
	if right {
		return Right[L](f(r))
	}
	return Left[L, T](l)
}

// FlatMap chains a computation which may itself fail.
func FlatMap[L, R, T any](f func(R) Either[L, T], e Either[L, R]) Either[L, T] {
	l, r, right := split(e)
	if right {
		return f(r)
	}
	return Left[L, T](l)
}

// LeftMap applies f to a Left value. A Right value passes unchanged.
func LeftMap[L, R, T any](f func(L) T, e Either[L, R]) Either[T, R] {
	l, r, right := split(e)
	if right {
		return Right[T](r)
	}
	return Left[T, R](f(l))
}

// Otherwise is the recovery path: a Left value is handed to f, which produces a
// fresh Either, possibly failing with a different Left type.
func Otherwise[L, R, A any](f func(L) Either[A, R], e Either[L, R]) Either[A, R] {
	l, r, right := split(e)
	if right {
		return Right[A](r)
	}
	return f(l)
}

// ToMaybe forgets a Left value.
func ToMaybe[L, R any](e Either[L, R]) maybe.Maybe[R] {
	return Match(e, maybe.Just[R], func(L) maybe.Maybe[R] {
		return maybe.Nothing[R]()
	})
}

// FromMaybe turns Nothing into a Left value produced by onNothing.
func FromMaybe[L, R any](m maybe.Maybe[R], onNothing func() L) Either[L, R] {
	return maybe.Match(m, Right[L, R], func() Either[L, R] {
		return Left[L, R](onNothing())
	})
}

// --- Matching --------------------------------------------------------------

type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e eitherSum[L, R]
}

func (mm *matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !mm.e.right {
		*l = mm.e.l
		return mm
	}
	return nil
}

func (mm *matcher[L, R]) Right(r *R) Matcher[L, R] {
	if mm.e.right {
		*r = mm.e.r
		return mm
	}
	return nil
}
