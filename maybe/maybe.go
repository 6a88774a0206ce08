/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or it does not (Nothing). Collections use
it as the result of every lookup which may fail, instead of returning a zero
value together with a flag, or panicking.

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

Clients pattern-match on a Maybe with a switch statement:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

or hand over both branches to function Match.
*/
package maybe

type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Filter(func(T) bool) Maybe[T]
	IsJust() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing represents the absence of a value of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Filter turns a Just into Nothing if its value does not satisfy predicate p.
func (m maybe[T]) Filter(p func(T) bool) Maybe[T] {
	if m.tag && !p(m.value) {
		return Nothing[T]()
	}
	return m
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) String() string {
	if m.tag {
		return "Just(" + stringify(m.value) + ")"
	}
	return "Nothing"
}

// Match calls onJust with the value of x, if present, otherwise onNothing.
func Match[T, R any](x Maybe[T], onJust func(T) R, onNothing func() R) R {
	if x.IsJust() {
		var zero T
		return onJust(x.WithDefault(zero))
	}
	return onNothing()
}

// AndThen chains a computation which may itself fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map transforms the value of x, if present.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// OrElse returns x if it holds a value, otherwise the result of f.
func OrElse[T any](f func() Maybe[T], x Maybe[T]) Maybe[T] {
	if x.IsJust() {
		return x
	}
	return f()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher is handed out as a pointer: switch statements compare matchers,
// and T need not be comparable.
type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
