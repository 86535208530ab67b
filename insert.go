package boxtree

import (
	"math"
	"sort"
)

// Insert adds an item to the tree. Inserting the zero value of T is a
// no-op.
func (t *Tree[T]) Insert(item T) {
	var zero T
	if item == zero {
		return
	}
	bbox := t.cfg.Geometry.BBox(item)
	t.insert(bbox, item, nil, t.root.height-1)
}

// insert descends to the given level, appends either a single item or a
// whole subtree of known height (graft != nil), and resolves overflow
// bottom-up. Splits propagate towards the root for as long as each newly
// produced parent is itself overfull; the boxes of all remaining ancestors
// on the descent path are extended afterwards.
func (t *Tree[T]) insert(bbox BBox, item T, graft *node[T], level int) {
	path := t.reuse.path[:0]
	target, path := t.chooseSubtree(bbox, t.root, level, path)
	if graft != nil {
		assert(!target.leaf, "subtree graft must land on an internal node")
		target.children = append(target.children, graft)
	} else {
		assert(target.leaf, "item insertion must land on a leaf")
		target.items = append(target.items, item)
	}
	target.bbox.Extend(bbox)

	for level >= 0 {
		if path[level].size() <= t.cfg.MaxEntries {
			break
		}
		t.split(path, level)
		level--
	}
	for i := level; i >= 0; i-- {
		path[i].bbox.Extend(bbox)
	}
	t.reuse.path = path
}

// chooseSubtree descends from n picking, at each step, the child whose box
// needs the least area enlargement to cover bbox, ties broken by smaller
// current area. The descent stops at a leaf or once the requested level is
// reached. It returns the chosen node together with the full descent path.
func (t *Tree[T]) chooseSubtree(bbox BBox, n *node[T], level int, path []*node[T]) (*node[T], []*node[T]) {
	for {
		path = append(path, n)
		if n.leaf || len(path)-1 == level {
			break
		}
		minEnlargement := math.Inf(+1)
		minArea := math.Inf(+1)
		var target *node[T]
		for _, child := range n.children {
			area := child.bbox.Area()
			enlargement := bbox.enlargedArea(child.bbox) - area
			if enlargement < minEnlargement {
				minEnlargement = enlargement
				if area < minArea {
					minArea = area
				}
				target = child
			} else if enlargement == minEnlargement && area < minArea {
				minArea = area
				target = child
			}
		}
		if target == nil {
			// NaN comparisons failed throughout; fall back deterministically
			target = n.children[0]
		}
		n = target
	}
	return n, path
}

// split resolves overflow of the node at the given path level by
// distributing its entries over two siblings, choosing first the axis with
// minimum total distribution margin and then the split index with minimum
// pairwise overlap. The new sibling is appended to the parent, or a new
// root is grown when the root itself split.
func (t *Tree[T]) split(path []*node[T], level int) {
	n := path[level]
	M := n.size()
	m := t.minEntries

	t.chooseSplitAxis(n, m, M)
	splitIndex := t.chooseSplitIndex(n, m, M)

	sibling := &node[T]{
		height: n.height,
		leaf:   n.leaf,
	}
	if n.leaf {
		sibling.items = append(sibling.items, n.items[splitIndex:]...)
		n.items = n.items[:splitIndex]
	} else {
		sibling.children = append(sibling.children, n.children[splitIndex:]...)
		n.children = n.children[:splitIndex]
	}
	t.recalcBBox(n)
	t.recalcBBox(sibling)

	if level > 0 {
		parent := path[level-1]
		parent.children = append(parent.children, sibling)
	} else {
		t.splitRoot(n, sibling)
	}
}

// splitRoot replaces the root by a fresh node one level up, holding the
// two halves of the old root.
func (t *Tree[T]) splitRoot(left, right *node[T]) {
	root := &node[T]{
		height:   left.height + 1,
		children: []*node[T]{left, right},
	}
	t.recalcBBox(root)
	t.root = root
}

// chooseSplitAxis picks the split axis with minimum total margin of all
// valid left/right distributions and leaves the node's entries sorted by
// that axis. Minimizing margin favors elongated, non-overlapping
// partitions, which reduces future query fan-out.
func (t *Tree[T]) chooseSplitAxis(n *node[T], m, M int) {
	minAxis := 0
	minMargin := t.allDistMargin(n, m, M, 0)
	for axis := 1; axis < t.cfg.Dimension; axis++ {
		margin := t.allDistMargin(n, m, M, axis)
		if margin < minMargin {
			minMargin = margin
			minAxis = axis
		}
	}
	if minAxis < t.cfg.Dimension-1 {
		// entries are currently sorted by the last probed axis
		t.sortEntries(n, minAxis)
	}
}

// allDistMargin sorts the node's entries by the given axis and sums the
// margins of all valid distributions where each side holds between m and
// M-m entries.
func (t *Tree[T]) allDistMargin(n *node[T], m, M, axis int) float64 {
	t.sortEntries(n, axis)

	left := t.distBBox(n, 0, m)
	right := t.distBBox(n, M-m, M)
	margin := left.Margin() + right.Margin()

	for i := m; i < M-m; i++ {
		left.Extend(t.entryBBox(n, i))
		margin += left.Margin()
	}
	for i := M - m - 1; i >= m; i-- {
		right.Extend(t.entryBBox(n, i))
		margin += right.Margin()
	}
	return margin
}

// chooseSplitIndex scans the valid split range for the index with minimum
// overlap area between the two resulting boxes, ties broken by minimum
// combined area. Entries must already be sorted by the winning axis.
func (t *Tree[T]) chooseSplitIndex(n *node[T], m, M int) int {
	index := m
	minOverlap := math.Inf(+1)
	minArea := math.Inf(+1)

	for i := m; i <= M-m; i++ {
		bbox1 := t.distBBox(n, 0, i)
		bbox2 := t.distBBox(n, i, M)

		overlap := bbox1.intersectionArea(bbox2)
		area := bbox1.Area() + bbox2.Area()

		if overlap < minOverlap {
			minOverlap = overlap
			index = i
			if area < minArea {
				minArea = area
			}
		} else if overlap == minOverlap && area < minArea {
			minArea = area
			index = i
		}
	}
	return index
}

// sortEntries orders the node's entries by their lower bound on the given
// axis: leaf items by the client comparator, subtrees by their box minima.
func (t *Tree[T]) sortEntries(n *node[T], axis int) {
	if n.leaf {
		geom := t.cfg.Geometry
		sort.Slice(n.items, func(i, j int) bool {
			return geom.CompareMin(axis, n.items[i], n.items[j]) < 0
		})
		return
	}
	sort.Slice(n.children, func(i, j int) bool {
		return n.children[i].bbox[axis] < n.children[j].bbox[axis]
	})
}
