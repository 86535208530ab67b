package boxtree

// Tree is a balanced spatial index over axis-aligned bounding boxes.
//
// T is the client item type. Items are compared by identity (==) during
// removal; for struct payloads clients will usually index pointers. The
// zero value of T is reserved: inserting or removing it is a no-op.
//
// Trees must be created with New. All operations mutate the tree in place
// through its single root reference; there are no locks, transactions or
// snapshots.
type Tree[T comparable] struct {
	cfg        Config[T]
	minEntries int
	root       *node[T]
	// reusable scratch for the mutation paths, to keep common insert and
	// remove operations allocation-free.
	reuse struct {
		path    []*node[T]
		indexes []int
	}
}

// New creates an empty tree with validated configuration.
func New[T comparable](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{
		cfg:        cfg,
		minEntries: cfg.minFill(),
	}
	t.root = t.newLeaf()
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Clear resets the tree to a fresh empty leaf root.
func (t *Tree[T]) Clear() {
	t.root = t.newLeaf()
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree[T]) IsEmpty() bool {
	return t.root.size() == 0
}

// Height returns the tree height; a fresh empty tree has height 1.
func (t *Tree[T]) Height() int {
	return t.root.height
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	count := 0
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.leaf {
			count += len(n.items)
		} else {
			stack = append(stack, n.children...)
		}
	}
	return count
}

// Bounds returns a copy of the bounding box of the whole tree. For an
// empty tree this is the empty box.
func (t *Tree[T]) Bounds() BBox {
	return t.root.bbox.Clone()
}

// Traverse walks the entire tree, nodes and items alike. For nodes fn
// receives the node's box and height with the zero item; for items it
// receives the item's derived box, level 0 and the item itself. Returning
// false stops the walk.
func (t *Tree[T]) Traverse(fn func(bbox BBox, level int, item T, isItem bool) bool) bool {
	var zero T
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.bbox, n.height, zero, false) {
			return false
		}
		if n.leaf {
			for _, item := range n.items {
				if !fn(t.cfg.Geometry.BBox(item), 0, item, true) {
					return false
				}
			}
		} else {
			for i := len(n.children) - 1; i >= 0; i-- {
				stack = append(stack, n.children[i])
			}
		}
	}
	return true
}
