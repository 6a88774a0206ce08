package collection

// setStream is a set over a deferred or lazy sequence. Uniqueness is enforced
// by a streaming distinct pass, so duplicates are suppressed as values are
// produced, without realizing the source first.
type setStream[T any] struct {
	elems implementation[T]
}

var _ setImplementation[int] = setStream[int]{}

func streamSet[T any](impl implementation[T]) setStream[T] {
	return setStream[T]{elems: impl.distinct()}
}

func (st setStream[T]) elements() implementation[T] {
	return st.elems
}

func (st setStream[T]) with(elems implementation[T]) setImplementation[T] {
	return setStream[T]{elems: elems}
}

func (st setStream[T]) add(values ...T) setImplementation[T] {
	return streamSet(st.elems.add(values...))
}

func (st setStream[T]) merge(other setImplementation[T]) setImplementation[T] {
	return streamSet(st.elems.append(other.elements()))
}
