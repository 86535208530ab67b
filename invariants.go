package boxtree

import "fmt"

// Check validates the structural tree invariants: exact bounding boxes,
// fill bounds for non-root nodes, uniform leaf depth, and consistent
// heights. It is a diagnostic for tests and debugging; no tree operation
// calls it, and Import in particular stays validation-free.
func (t *Tree[T]) Check() error {
	return t.check(true)
}

// check validates the tree structure. Deletion condenses but does not
// rebalance, so after removals nodes may legitimately be underfull;
// callers probing such trees pass enforceMinFill=false.
func (t *Tree[T]) check(enforceMinFill bool) error {
	root := t.root
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidStructure)
	}
	if root.height < 1 {
		return fmt.Errorf("%w: root height %d < 1", ErrInvalidStructure, root.height)
	}
	return t.checkNode(root, true, enforceMinFill)
}

func (t *Tree[T]) checkNode(n *node[T], isRoot bool, enforceMinFill bool) error {
	if n.leaf != (n.height == 1) {
		return fmt.Errorf("%w: leaf flag %v inconsistent with height %d",
			ErrInvalidStructure, n.leaf, n.height)
	}
	if n.leaf && n.children != nil {
		return fmt.Errorf("%w: leaf node holds subtrees", ErrInvalidStructure)
	}
	if !n.leaf && n.items != nil {
		return fmt.Errorf("%w: internal node holds items", ErrInvalidStructure)
	}
	size := n.size()
	if !isRoot {
		if size == 0 {
			return fmt.Errorf("%w: empty non-root node", ErrInvalidStructure)
		}
		if enforceMinFill && size < t.minEntries {
			return fmt.Errorf("%w: node fill %d below minimum %d",
				ErrInvalidStructure, size, t.minEntries)
		}
	}
	if size > t.cfg.MaxEntries {
		return fmt.Errorf("%w: node fill %d exceeds %d",
			ErrInvalidStructure, size, t.cfg.MaxEntries)
	}
	exact := t.distBBox(n, 0, size)
	if len(exact) != len(n.bbox) {
		return fmt.Errorf("%w: box dimension %d, expected %d",
			ErrInvalidStructure, n.bbox.Dim(), exact.Dim())
	}
	for i := range exact {
		if exact[i] != n.bbox[i] {
			return fmt.Errorf("%w: stored box %v differs from union of entries %v",
				ErrInvalidStructure, n.bbox, exact)
		}
	}
	if n.leaf {
		return nil
	}
	for i, child := range n.children {
		if child == nil {
			return fmt.Errorf("%w: nil child at index %d", ErrInvalidStructure, i)
		}
		if child.height != n.height-1 {
			return fmt.Errorf("%w: child height %d under node of height %d",
				ErrInvalidStructure, child.height, n.height)
		}
		if err := t.checkNode(child, false, enforceMinFill); err != nil {
			return err
		}
	}
	return nil
}
