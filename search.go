package boxtree

// Search returns all items whose boxes overlap bbox. The traversal is
// iterative over an explicit work stack, bounding call depth independently
// of tree size; subtrees fully contained in the query box are drained
// without further box tests.
func (t *Tree[T]) Search(bbox BBox) []T {
	var result []T
	n := t.root
	if !n.bbox.Intersects(bbox) {
		return result
	}
	var toSearch []*node[T]
	for n != nil {
		if n.leaf {
			for _, item := range n.items {
				if bbox.Intersects(t.cfg.Geometry.BBox(item)) {
					result = append(result, item)
				}
			}
		} else {
			for _, child := range n.children {
				if !bbox.Intersects(child.bbox) {
					continue
				}
				if bbox.Contains(child.bbox) {
					result = t.collect(child, result)
				} else {
					toSearch = append(toSearch, child)
				}
			}
		}
		n, toSearch = popNode(toSearch)
	}
	return result
}

// Collides reports whether any item overlaps bbox, stopping at the first
// hit without collecting results.
func (t *Tree[T]) Collides(bbox BBox) bool {
	n := t.root
	if !n.bbox.Intersects(bbox) {
		return false
	}
	var toSearch []*node[T]
	for n != nil {
		if n.leaf {
			for _, item := range n.items {
				if bbox.Intersects(t.cfg.Geometry.BBox(item)) {
					return true
				}
			}
		} else {
			for _, child := range n.children {
				if !bbox.Intersects(child.bbox) {
					continue
				}
				if bbox.Contains(child.bbox) {
					// a contained subtree holds at least one item
					return true
				}
				toSearch = append(toSearch, child)
			}
		}
		n, toSearch = popNode(toSearch)
	}
	return false
}

// All returns every item in the tree, in traversal order.
func (t *Tree[T]) All() []T {
	return t.collect(t.root, nil)
}

// collect appends every item under n to out, iteratively.
func (t *Tree[T]) collect(n *node[T], out []T) []T {
	var pending []*node[T]
	for n != nil {
		if n.leaf {
			out = append(out, n.items...)
		} else {
			pending = append(pending, n.children...)
		}
		n, pending = popNode(pending)
	}
	return out
}

func popNode[T comparable](stack []*node[T]) (*node[T], []*node[T]) {
	if len(stack) == 0 {
		return nil, stack
	}
	return stack[len(stack)-1], stack[:len(stack)-1]
}
