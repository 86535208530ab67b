package boxtree

// Snapshot is the plain-data form of a tree node, recursively describing
// a whole (sub-)tree. It mirrors the internal node layout one to one and
// is suitable for serialization.
type Snapshot[T comparable] struct {
	BBox     []float64      `json:"bbox"`
	Height   int            `json:"height"`
	Leaf     bool           `json:"leaf"`
	Items    []T            `json:"items,omitempty"`
	Children []*Snapshot[T] `json:"children,omitempty"`
}

// Export returns the raw node tree as plain data. Boxes and item slices
// are copied; the returned snapshot shares no mutable state with the tree.
func (t *Tree[T]) Export() *Snapshot[T] {
	return exportNode(t.root)
}

func exportNode[T comparable](n *node[T]) *Snapshot[T] {
	snap := &Snapshot[T]{
		BBox:   append([]float64(nil), n.bbox...),
		Height: n.height,
		Leaf:   n.leaf,
	}
	if n.leaf {
		if len(n.items) > 0 {
			snap.Items = append([]T(nil), n.items...)
		}
		return snap
	}
	snap.Children = make([]*Snapshot[T], len(n.children))
	for i, child := range n.children {
		snap.Children[i] = exportNode(child)
	}
	return snap
}

// Import replaces the tree's contents with the given raw node tree. The
// snapshot is adopted structurally as-is, without validation; callers must
// supply a well-formed tree or the behavior of subsequent operations is
// undefined. A nil snapshot is a no-op.
func (t *Tree[T]) Import(snap *Snapshot[T]) {
	if snap == nil {
		return
	}
	t.root = importNode(snap)
}

func importNode[T comparable](snap *Snapshot[T]) *node[T] {
	n := &node[T]{
		bbox:   append(BBox(nil), snap.BBox...),
		height: snap.Height,
		leaf:   snap.Leaf,
	}
	if snap.Leaf {
		n.items = append([]T(nil), snap.Items...)
		return n
	}
	n.children = make([]*node[T], len(snap.Children))
	for i, child := range snap.Children {
		n.children[i] = importNode(child)
	}
	return n
}
