/*
Package result models the outcome of a computation that may fail.

A Result is an Either with the Left side fixed to error, following Elm:

	type Result error value = Ok value | Err error

Clients pattern-match with a switch statement:

	switch m := r.Match(); m {
	case m.Ok(&v):
		…
	case m.Err(&err):
		…
	}
*/
package result

import (
	"fmt"

	"github.com/npillmayer/immutable/either"
	"github.com/npillmayer/immutable/maybe"
)

type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	WithDefault(T) T
	ToEither() either.Either[error, T]
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a non-nil error. A nil err is treated as a bug.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err called with nil error")
	}
	return result[T]{err: err}
}

// Of lifts the customary Go pair (value, error) into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return result[T]{err: err}
	}
	return result[T]{value: x}
}

// FromEither converts an Either holding an error on its Left side.
func FromEither[T any](e either.Either[error, T]) Result[T] {
	return either.Match(e, Ok[T], Err[T])
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r result[T]) ToEither() either.Either[error, T] {
	if r.err != nil {
		return either.Left[error, T](r.err)
	}
	return either.Right[error](r.value)
}

func (r result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Get unpacks r into the customary Go pair.
func Get[T any](r Result[T]) (T, error) {
	rr := r.(result[T])
	return rr.value, rr.err
}

// Map applies f to an Ok value.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	rr := r.(result[T])
	if rr.err != nil {
		return result[S]{err: rr.err}
	}
	return Ok(f(rr.value))
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	rr := r.(result[T])
	if rr.err != nil {
		return result[S]{err: rr.err}
	}
	return f(rr.value)
}

// MapError transforms an error, e.g. to wrap it with context.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	rr := r.(result[T])
	if rr.err != nil {
		return Err[T](f(rr.err))
	}
	return rr
}

// ToMaybe forgets the error.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	rr := r.(result[T])
	if rr.err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(rr.value)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
