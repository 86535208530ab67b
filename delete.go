package boxtree

// Remove deletes an item from the tree, comparing candidates by identity
// (==). Removing the zero value of T or an item that is not present leaves
// the tree unchanged.
//
// The search is an iterative depth-first walk with an explicit path stack.
// A subtree is only entered when its box contains the item's derived box.
// This pruning heuristic matches the stored-box discipline of insertion
// and bulk loading; it is a known limitation that an item whose stored box
// has drifted out of strict containment relative to an ancestor (after
// heavy floating-point churn) can be missed.
func (t *Tree[T]) Remove(item T) {
	var zero T
	if item == zero {
		return
	}
	bbox := t.cfg.Geometry.BBox(item)

	path := t.reuse.path[:0]
	indexes := t.reuse.indexes[:0]
	defer func() {
		t.reuse.path = path
		t.reuse.indexes = indexes
	}()

	n := t.root
	var parent *node[T]
	var i int
	goingUp := false

	for n != nil || len(path) > 0 {
		if n == nil {
			// pop back up one level and continue with the next sibling
			n = path[len(path)-1]
			path = path[:len(path)-1]
			if len(path) == 0 {
				parent = nil
			} else {
				parent = path[len(path)-1]
			}
			i = indexes[len(indexes)-1]
			indexes = indexes[:len(indexes)-1]
			goingUp = true
		}

		if n.leaf {
			if index := findItem(n.items, item); index != -1 {
				n.items = append(n.items[:index], n.items[index+1:]...)
				path = append(path, n)
				t.condense(path)
				return
			}
		}

		if !goingUp && !n.leaf && n.bbox.Contains(bbox) {
			path = append(path, n)
			indexes = append(indexes, i)
			i = 0
			parent = n
			n = n.children[0]
		} else if parent != nil {
			i++
			if i == len(parent.children) {
				n = nil
			} else {
				n = parent.children[i]
			}
			goingUp = false
		} else {
			n = nil
		}
	}
}

// condense walks the path from leaf to root, pruning nodes that became
// empty and recomputing the boxes of the remaining ancestors exactly.
// An emptied root is replaced by a fresh empty leaf.
func (t *Tree[T]) condense(path []*node[T]) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if n.size() == 0 {
			if i > 0 {
				siblings := path[i-1].children
				index := -1
				for j, sibling := range siblings {
					if sibling == n {
						index = j
						break
					}
				}
				assert(index != -1, "condense path node missing from its parent")
				path[i-1].children = append(siblings[:index], siblings[index+1:]...)
			} else {
				t.Clear()
			}
		} else {
			t.recalcBBox(n)
		}
	}
}

// findItem scans a leaf's items for item by identity.
func findItem[T comparable](items []T, item T) int {
	for i := range items {
		if items[i] == item {
			return i
		}
	}
	return -1
}
