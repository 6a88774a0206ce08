package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/immutable/maybe"
)

// Vector is an immutable persistent vector. The zero value is an empty vector
// with default degree, ready to use.
type Vector[T any] struct {
	props
	length int
	shift  uint
	root   *vnode[T]
	tail   []T
}

// Immutable creates an empty vector.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v.init()
}

// FromSlice creates a vector holding a copy of values.
func FromSlice[T any](values []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	return v.Append(values...)
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying trie for a vector.
// The degree of the trie will be 2^n. Accepted exponents are [1…5]; default is 5, i.e.
// a degree of 32.
//
// Use it like this:
//
//	vec := vector.Immutable[int](vector.BitsPerLevel(2))
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return makeProps(uint(n))
	}
	return Option{config: conf}
}

type props struct {
	bits   uint
	degree int
	mask   int
}

const defaultBits = 5

func makeProps(bits uint) props {
	degree := 1 << bits
	return props{bits: bits, degree: degree, mask: degree - 1}
}

// init makes the zero value usable: props get defaults and the root is always
// an inner node.
func (v Vector[T]) init() Vector[T] {
	if v.bits == 0 {
		v.props = makeProps(defaultBits)
	}
	if v.root == nil {
		v.root = emptyNode[T](v.degree)
		v.shift = v.bits
	}
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v Vector[T]) Len() int {
	return v.length
}

// BitsPerLevel returns the exponent of the degree of the underlying trie.
func (v Vector[T]) BitsPerLevel() int {
	if v.bits == 0 {
		return defaultBits
	}
	return int(v.bits)
}

// Last returns the last item, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns item i. Get will panic if i is out of range; clients are
// expected to check bounds beforehand.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	return v.leafFor(i)[i&v.mask]
}

// Set returns a copy of v with item i replaced by value.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	if i >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[i&v.mask] = value
		v.tail = newTail
		return v
	}
	v.root = v.doAssoc(v.shift, v.root, i, value)
	return v
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v = v.init()
	if v.length-v.tailOffset() < v.degree { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{props: v.props, length: v.length + 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into trie
	tracer().Debugf("vector: moving full tail of length %d into trie", len(v.tail))
	tailNode := newLeaf(v.tail)
	shift := v.shift
	var root *vnode[T]
	if (v.length >> v.bits) > (1 << v.shift) { // root overflow ⇒ increment shift
		root = emptyNode[T](v.degree)
		root.children[0] = v.root
		root.children[1] = v.newPath(v.shift, tailNode)
		shift += v.bits
		tracer().Debugf("vector: trie grows to shift %d", shift)
	} else {
		root = v.pushTail(v.shift, v.root, tailNode)
	}
	return Vector[T]{props: v.props, length: v.length + 1, shift: shift, root: root, tail: []T{value}}
}

// Append returns a copy of v with all values appended.
func (v Vector[T]) Append(values ...T) Vector[T] {
	for _, x := range values {
		v = v.Push(x)
	}
	return v
}

// Pop returns a copy of v with the last item removed.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	if v.length == 1 {
		return Vector[T]{props: v.props}.init()
	}
	if v.length-v.tailOffset() > 1 {
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Vector[T]{props: v.props, length: v.length - 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail vanishes ⇒ rightmost leaf of the trie becomes the new tail
	newTail := v.leafFor(v.length - 2)
	root := v.popTail(v.shift, v.root)
	shift := v.shift
	if root == nil {
		root = emptyNode[T](v.degree)
	}
	if shift > v.bits && root.children[1] == nil { // can lower the height
		root = root.children[0]
		shift -= v.bits
		tracer().Debugf("vector: trie shrinks to shift %d", shift)
	}
	return Vector[T]{props: v.props, length: v.length - 1, shift: shift, root: root, tail: newTail}
}

// Values is an iterator over the items of v.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// All is an iterator over index/item pairs of v.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.length == 0 {
			return
		}
		for base := 0; base < v.length; base += v.degree {
			for j, x := range v.leafFor(base) {
				if !yield(base+j, x) {
					return
				}
			}
		}
	}
}

// ToSlice returns a fresh slice holding the items of v.
func (v Vector[T]) ToSlice() []T {
	s := make([]T, 0, v.length)
	for x := range v.Values() {
		s = append(s, x)
	}
	return s
}

func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, x := range v.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte(']')
	return b.String()
}

// tailOffset is the index of the first item held in the tail.
func (v Vector[T]) tailOffset() int {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}
