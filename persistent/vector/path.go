package vector

// Path copying: every operation touching the trie clones the nodes on the
// path from the root to the affected leaf and shares everything else.

// leafFor returns the bucket holding item i, either the tail or a trie leaf.
func (v Vector[T]) leafFor(i int) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	assertThat(node.leaf, "inconsistency: path for index %d does not end in a leaf", i)
	return node.leafs
}

// doAssoc returns a copy of node with item i replaced by value.
func (v Vector[T]) doAssoc(level uint, node *vnode[T], i int, value T) *vnode[T] {
	n := node.clone()
	if level == 0 {
		n.leafs[i&v.mask] = value
		return n
	}
	sub := (i >> level) & v.mask
	n.children[sub] = v.doAssoc(level-v.bits, node.children[sub], i, value)
	return n
}

// pushTail inserts a full tail as the rightmost leaf below parent.
func (v Vector[T]) pushTail(level uint, parent *vnode[T], tailNode *vnode[T]) *vnode[T] {
	ret := parent.clone()
	sub := ((v.length - 1) >> level) & v.mask
	var insert *vnode[T]
	if level == v.bits {
		insert = tailNode
	} else if child := parent.children[sub]; child != nil {
		insert = v.pushTail(level-v.bits, child, tailNode)
	} else {
		insert = v.newPath(level-v.bits, tailNode)
	}
	ret.children[sub] = insert
	return ret
}

// newPath creates a chain of inner nodes from level down to node.
func (v Vector[T]) newPath(level uint, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	r := emptyNode[T](v.degree)
	r.children[0] = v.newPath(level-v.bits, node)
	return r
}

// popTail removes the rightmost leaf below node. It returns nil if node
// becomes empty.
func (v Vector[T]) popTail(level uint, node *vnode[T]) *vnode[T] {
	sub := ((v.length - 2) >> level) & v.mask
	if level > v.bits {
		child := v.popTail(level-v.bits, node.children[sub])
		if child == nil && sub == 0 {
			return nil
		}
		ret := node.clone()
		ret.children[sub] = child
		return ret
	} else if sub == 0 {
		return nil
	}
	ret := node.clone()
	ret.children[sub] = nil
	return ret
}
