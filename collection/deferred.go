package collection

import (
	"iter"
	"sync"

	"github.com/npillmayer/immutable"
	"github.com/npillmayer/immutable/maybe"
	"golang.org/x/exp/slices"
)

// deferred accumulates values pulled from a one-shot source. Every value is
// pulled at most once and memoized; derived sequences pull from the memo of their
// parent through a cursor.
type deferred[T any] struct {
	pulling sync.Mutex // serializes calls of pull
	mu      sync.Mutex // guards values and done, never held while pulling
	pull    func() (T, bool)
	values  []T
	done    bool
}

var _ implementation[int] = (*deferred[int])(nil)

func newDeferred[T any](pull func() (T, bool)) *deferred[T] {
	return &deferred[T]{pull: pull}
}

func doneDeferred[T any]() *deferred[T] {
	return &deferred[T]{done: true}
}

// peek returns value i if it has been pulled already. known is false if
// the source has to be pulled further to decide.
func (d *deferred[T]) peek(i int) (x T, ok bool, known bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < len(d.values) {
		return d.values[i], true, true
	}
	return x, false, d.done
}

// at pulls from the source until value i is available. pull may call back
// into client code (predicates, mapping functions), so it runs without
// holding d.mu; client code may inspect d, but must not pull from it.
func (d *deferred[T]) at(i int) (T, bool) {
	if x, ok, known := d.peek(i); known {
		return x, ok
	}
	d.pulling.Lock()
	defer d.pulling.Unlock()
	for {
		if x, ok, known := d.peek(i); known {
			return x, ok
		}
		x, ok := d.pull()
		d.mu.Lock()
		if ok {
			d.values = append(d.values, x)
		} else {
			d.done, d.pull = true, nil
			tracer().Debugf("deferred sequence realized with %d values", len(d.values))
		}
		d.mu.Unlock()
	}
}

// realize drains the source. The returned slice must not be modified.
func (d *deferred[T]) realize() []T {
	for i := 0; ; i++ {
		if _, ok := d.at(i); !ok {
			break
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values[:len(d.values):len(d.values)]
}

// cursor returns a pull function over the memo, starting at index 0.
func (d *deferred[T]) cursor() func() (T, bool) {
	i := 0
	return func() (T, bool) {
		x, ok := d.at(i)
		if ok {
			i++
		}
		return x, ok
	}
}

// derive creates a deferred sequence computed from the realized values of d.
// d is realized at the first pull of the result, not before.
func (d *deferred[T]) derive(f func([]T) []T) *deferred[T] {
	var buf []T
	started := false
	return newDeferred(func() (T, bool) {
		if !started {
			buf, started = f(d.realize()), true
		}
		if len(buf) == 0 {
			var zero T
			return zero, false
		}
		x := buf[0]
		buf = buf[1:]
		return x, true
	})
}

// pullFrom adapts any implementation to a pull function. Lazy sequences are
// traversed completely on the first pull.
func pullFrom[T any](impl implementation[T]) func() (T, bool) {
	switch x := impl.(type) {
	case *deferred[T]:
		return x.cursor()
	case eager[T]:
		i := 0
		return func() (T, bool) {
			if i >= x.size() {
				var zero T
				return zero, false
			}
			i++
			return x.vec.Get(i - 1), true
		}
	}
	var values []T
	started := false
	return func() (T, bool) {
		if !started {
			values, started = collect(impl.all()), true
		}
		if len(values) == 0 {
			var zero T
			return zero, false
		}
		x := values[0]
		values = values[1:]
		return x, true
	}
}

func (d *deferred[T]) add(values ...T) implementation[T] {
	return d.append(newEager(values))
}

func (d *deferred[T]) put(index int, value T) implementation[T] {
	next := d.cursor()
	i := -1
	return newDeferred(func() (T, bool) {
		x, ok := next()
		if i++; ok && i == index {
			return value, true
		}
		return x, ok
	})
}

func (d *deferred[T]) size() int {
	return len(d.realize())
}

func (d *deferred[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			x, ok := d.at(i)
			if !ok || !yield(x) {
				return
			}
		}
	}
}

func (d *deferred[T]) get(index int) maybe.Maybe[T] {
	if index < 0 {
		return maybe.Nothing[T]()
	}
	if x, ok := d.at(index); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

func (d *deferred[T]) first() maybe.Maybe[T] {
	return d.get(0)
}

func (d *deferred[T]) last() maybe.Maybe[T] {
	values := d.realize()
	if len(values) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(values[len(values)-1])
}

func (d *deferred[T]) contains(value T) bool {
	return d.indexOf(value).IsJust()
}

func (d *deferred[T]) indexOf(value T) maybe.Maybe[int] {
	return indexOfIn(d.all(), value)
}

func (d *deferred[T]) diff(other implementation[T]) implementation[T] {
	var in func(T) bool
	return d.filter(func(x T) bool {
		if in == nil {
			in = membership(other)
		}
		return !in(x)
	})
}

func (d *deferred[T]) intersect(other implementation[T]) implementation[T] {
	var in func(T) bool
	return d.filter(func(x T) bool {
		if in == nil {
			in = membership(other)
		}
		return in(x)
	})
}

func (d *deferred[T]) distinct() implementation[T] {
	var seen []T
	return d.filter(func(x T) bool {
		if indexIn(seen, x) >= 0 {
			return false
		}
		seen = append(seen, x)
		return true
	})
}

func (d *deferred[T]) drop(n int) implementation[T] {
	next := d.cursor()
	return newDeferred(func() (T, bool) {
		for ; n > 0; n-- {
			if _, ok := next(); !ok {
				break
			}
		}
		return next()
	})
}

func (d *deferred[T]) dropEnd(n int) implementation[T] {
	return d.derive(func(values []T) []T {
		return values[:len(values)-clamp(n, 0, len(values))]
	})
}

func (d *deferred[T]) take(n int) implementation[T] {
	next := d.cursor()
	return newDeferred(func() (T, bool) {
		if n <= 0 {
			var zero T
			return zero, false
		}
		n--
		return next()
	})
}

func (d *deferred[T]) takeEnd(n int) implementation[T] {
	return d.derive(func(values []T) []T {
		return values[len(values)-clamp(n, 0, len(values)):]
	})
}

func (d *deferred[T]) slice(from, until int) implementation[T] {
	from = max(from, 0)
	if until <= from {
		return d.take(0)
	}
	return d.drop(from).take(until - from)
}

func (d *deferred[T]) filter(predicate func(T) bool) implementation[T] {
	next := d.cursor()
	return newDeferred(func() (T, bool) {
		for {
			x, ok := next()
			if !ok || predicate(x) {
				return x, ok
			}
		}
	})
}

func (d *deferred[T]) foreach(f func(T)) immutable.SideEffect {
	for x := range d.all() {
		f(x)
	}
	return immutable.SideEffect{}
}

func (d *deferred[T]) pad(size int, value T) implementation[T] {
	next := d.cursor()
	count := 0
	return newDeferred(func() (T, bool) {
		x, ok := next()
		if !ok && count < size {
			x, ok = value, true
		}
		if ok {
			count++
		}
		return x, ok
	})
}

// sort is not stable.
func (d *deferred[T]) sort(cmp func(T, T) int) implementation[T] {
	return d.derive(func(values []T) []T {
		values = slices.Clone(values)
		slices.SortFunc(values, cmp)
		return values
	})
}

func (d *deferred[T]) append(other implementation[T]) implementation[T] {
	next := d.cursor()
	var rest func() (T, bool)
	return newDeferred(func() (T, bool) {
		if rest == nil {
			if x, ok := next(); ok {
				return x, true
			}
			rest = pullFrom(other)
		}
		return rest()
	})
}

func (d *deferred[T]) clear() implementation[T] {
	return doneDeferred[T]()
}

func (d *deferred[T]) reverse() implementation[T] {
	return d.derive(func(values []T) []T {
		values = slices.Clone(values)
		slices.Reverse(values)
		return values
	})
}

func (d *deferred[T]) empty() bool {
	_, ok := d.at(0)
	return !ok
}

func (d *deferred[T]) find(predicate func(T) bool) maybe.Maybe[T] {
	return findIn(d.all(), predicate)
}

func (d *deferred[T]) equals(other implementation[T]) bool {
	return equalSeqs(d.realize(), collect(other.all()))
}
