package boxtree

// node is a single tree node. Leaf nodes (height 1) hold client items
// directly in items; internal nodes hold subtrees in children, all of
// height one less than their own. bbox is kept exactly equal to the union
// of the boxes of all entries, never a loose superset.
type node[T comparable] struct {
	bbox     BBox
	height   int
	leaf     bool
	items    []T        // leaf payload; nil for internal nodes
	children []*node[T] // subtrees; nil for leaf nodes
}

// newLeaf creates an empty leaf node of height 1.
func (t *Tree[T]) newLeaf() *node[T] {
	return &node[T]{
		bbox:   EmptyBox(t.cfg.Dimension),
		height: 1,
		leaf:   true,
	}
}

// size returns the direct entry count of the node.
func (n *node[T]) size() int {
	if n.leaf {
		return len(n.items)
	}
	return len(n.children)
}

// entryBBox returns the box of the i-th entry: the derived box of an item
// for leaves, the stored subtree box for internal nodes.
func (t *Tree[T]) entryBBox(n *node[T], i int) BBox {
	if n.leaf {
		return t.cfg.Geometry.BBox(n.items[i])
	}
	return n.children[i].bbox
}

// distBBox computes the union of the boxes of the entries [k,p) of n.
func (t *Tree[T]) distBBox(n *node[T], k, p int) BBox {
	box := EmptyBox(t.cfg.Dimension)
	for i := k; i < p; i++ {
		box.Extend(t.entryBBox(n, i))
	}
	return box
}

// recalcBBox recomputes the node's box from scratch.
func (t *Tree[T]) recalcBBox(n *node[T]) {
	n.bbox = t.distBBox(n, 0, n.size())
}
