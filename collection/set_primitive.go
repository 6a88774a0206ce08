package collection

// setImplementation is the contract of the two set backings. Operations which
// keep values unique anyway (filter, diff, intersect, …) are performed on the
// underlying sequence and re-wrapped with with().
type setImplementation[T any] interface {
	elements() implementation[T]
	with(elems implementation[T]) setImplementation[T]
	add(values ...T) setImplementation[T]
	merge(other setImplementation[T]) setImplementation[T]
}

// setPrimitive keeps its values in an eager sequence and checks for
// containment before adding a value.
type setPrimitive[T any] struct {
	elems eager[T]
}

var _ setImplementation[int] = setPrimitive[int]{}

func (p setPrimitive[T]) elements() implementation[T] {
	return p.elems
}

func (p setPrimitive[T]) with(elems implementation[T]) setImplementation[T] {
	e, ok := elems.(eager[T])
	assertThat(ok, "primitive set cannot hold a %T", elems)
	return setPrimitive[T]{elems: e}
}

func (p setPrimitive[T]) add(values ...T) setImplementation[T] {
	elems := p.elems
	for _, x := range values {
		if !elems.contains(x) {
			elems = eager[T]{vec: elems.vec.Push(x)}
		}
	}
	return setPrimitive[T]{elems: elems}
}

func (p setPrimitive[T]) merge(other setImplementation[T]) setImplementation[T] {
	return p.add(collect(other.elements().all())...)
}
