package vector

import (
	"fmt"
	"strings"
)

// vnode represents a node in the trie a vector is made of. Leaf nodes carry
// a full bucket of items, inner nodes carry up to degree children.
type vnode[T any] struct {
	leaf     bool
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](degree int) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], degree),
	}
}

// newLeaf wraps a full bucket. The bucket is shared, never written to.
func newLeaf[T any](bucket []T) *vnode[T] {
	return &vnode[T]{
		leaf:  true,
		leafs: bucket,
	}
}

func (node *vnode[T]) clone() *vnode[T] {
	assertThat(node != nil, "attempt to clone an uninitialized node")
	if node.leaf {
		leafs := make([]T, len(node.leafs))
		copy(leafs, node.leafs)
		return newLeaf(leafs)
	}
	n := &vnode[T]{children: make([]*vnode[T], len(node.children))}
	copy(n.children, node.children)
	return n
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaf {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// cloneTail copies a tail into a fresh slice of length n. Tails are never
// appended to in place, as they may be shared between vectors.
func cloneTail[T any](tail []T, n int) []T {
	t := make([]T, n)
	copy(t, tail)
	return t
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
