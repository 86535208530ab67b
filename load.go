package boxtree

import (
	"math"

	"github.com/npillmayer/boxtree/selection"
)

// Load bulk-inserts a batch of items. An empty batch is a no-op; batches
// smaller than the minimum node fill are inserted one by one. Larger
// batches are built into a balanced subtree with the OMT
// (sort-tile-recursive) scheme and merged into the existing tree. The
// input slice is not modified.
func (t *Tree[T]) Load(items []T) {
	if len(items) == 0 {
		return
	}
	if len(items) < t.minEntries {
		for _, item := range items {
			t.Insert(item)
		}
		return
	}

	// bulk build operates in place on a private copy of the batch
	batch := append([]T(nil), items...)
	built := t.build(batch, 0, len(batch)-1, 0, 0)
	tracer().Debugf("bulk-built subtree of height %d for %d items", built.height, len(batch))

	switch {
	case t.root.size() == 0:
		// tree is empty, adopt the built tree outright
		t.root = built
	case t.root.height == built.height:
		t.splitRoot(t.root, built)
	default:
		if t.root.height < built.height {
			// insert the smaller tree into the larger one
			t.root, built = built, t.root
		}
		var zero T
		t.insert(built.bbox, zero, built, t.root.height-built.height-1)
	}
}

// build constructs a balanced subtree over items[left..right] (inclusive)
// by recursive tiling: the range is cut into vertical slices on one axis
// and each slice into tiles on the next, yielding roughly hyper-cubic
// tiles. Target height and an adjusted root fan-out maximize fill at the
// top. Tiles at or below the fanout become leaves.
func (t *Tree[T]) build(items []T, left, right, height, axis int) *node[T] {
	N := right - left + 1
	M := t.cfg.MaxEntries

	if N <= M {
		leaf := &node[T]{
			height: 1,
			leaf:   true,
			items:  append([]T(nil), items[left:right+1]...),
		}
		t.recalcBBox(leaf)
		return leaf
	}

	if height == 0 {
		// target height of the bulk-loaded tree
		height = int(math.Ceil(math.Log(float64(N)) / math.Log(float64(M))))
		// fan-out of the root node, adjusted to maximize its fill
		M = int(math.Ceil(float64(N) / math.Pow(float64(M), float64(height-1))))
	}

	n := &node[T]{height: height}

	// tile sizes: N1 entries per vertical slice, N2 per tile
	N2 := int(math.Ceil(float64(N) / float64(M)))
	N1 := N2 * int(math.Ceil(math.Sqrt(float64(M))))

	dim := t.cfg.Dimension
	geom := t.cfg.Geometry
	lessOn := func(axis int) func(a, b T) bool {
		return func(a, b T) bool {
			return geom.CompareMin(axis, a, b) < 0
		}
	}

	selection.MultiSelect(items, left, right, N1, lessOn(axis%dim))
	for i := left; i <= right; i += N1 {
		sliceRight := minInt(i+N1-1, right)
		selection.MultiSelect(items, i, sliceRight, N2, lessOn((axis+1)%dim))
		for j := i; j <= sliceRight; j += N2 {
			tileRight := minInt(j+N2-1, sliceRight)
			n.children = append(n.children, t.build(items, j, tileRight, height-1, axis+2))
		}
	}
	t.recalcBBox(n)
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
