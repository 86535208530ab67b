package boxtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- Test fixtures ---------------------------------------------------------

type rect struct {
	min, max []float64
}

func r2(minX, minY, maxX, maxY float64) *rect {
	return &rect{min: []float64{minX, minY}, max: []float64{maxX, maxY}}
}

func p2(x, y float64) *rect {
	return r2(x, y, x, y)
}

type rectGeom struct{}

func (rectGeom) BBox(r *rect) BBox {
	return NewBBox(r.min, r.max)
}

func (rectGeom) CompareMin(axis int, a, b *rect) float64 {
	return a.min[axis] - b.min[axis]
}

// countingGeom counts accessor invocations, to make traversal activity
// observable in tests.
type countingGeom struct {
	geom  rectGeom
	calls *int
}

func (g countingGeom) BBox(r *rect) BBox {
	*g.calls++
	return g.geom.BBox(r)
}

func (g countingGeom) CompareMin(axis int, a, b *rect) float64 {
	*g.calls++
	return g.geom.CompareMin(axis, a, b)
}

func newRectTree(t *testing.T, maxEntries int) *Tree[*rect] {
	t.Helper()
	tree, err := New(Config[*rect]{MaxEntries: maxEntries, Geometry: rectGeom{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func box2(minX, minY, maxX, maxY float64) BBox {
	return BBox{minX, minY, maxX, maxY}
}

// --- Construction ----------------------------------------------------------

func TestNewRequiresGeometry(t *testing.T) {
	_, err := New(Config[*rect]{})
	if err != ErrNoGeometry {
		t.Errorf("expected ErrNoGeometry for nil accessor, got %v", err)
	}
}

func TestNewAppliesDefaultsAndClamps(t *testing.T) {
	tree := newRectTree(t, 0)
	if tree.cfg.MaxEntries != DefaultMaxEntries {
		t.Errorf("default MaxEntries = %d, want %d", tree.cfg.MaxEntries, DefaultMaxEntries)
	}
	if tree.cfg.Dimension != DefaultDimension {
		t.Errorf("default Dimension = %d, want %d", tree.cfg.Dimension, DefaultDimension)
	}
	if tree.minEntries != 4 {
		t.Errorf("derived minEntries = %d, want 4", tree.minEntries)
	}
	tree = newRectTree(t, 2)
	if tree.cfg.MaxEntries != 4 {
		t.Errorf("clamped MaxEntries = %d, want 4", tree.cfg.MaxEntries)
	}
	if tree.minEntries != 2 {
		t.Errorf("derived minEntries = %d, want 2", tree.minEntries)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newRectTree(t, 9)
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("fresh tree is not empty")
	}
	if tree.Height() != 1 {
		t.Errorf("fresh tree height = %d, want 1", tree.Height())
	}
	if got := tree.Search(box2(-100, -100, 100, 100)); len(got) != 0 {
		t.Errorf("search on empty tree returned %d items", len(got))
	}
	if err := tree.Check(); err != nil {
		t.Errorf("fresh tree fails invariants: %v", err)
	}
}

// --- Insertion and search --------------------------------------------------

func TestInsertThenSearchFindsItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree")
	defer teardown()
	//
	tree := newRectTree(t, 9)
	item := r2(2, 3, 5, 7)
	tree.Insert(item)
	got := tree.Search(box2(2, 3, 5, 7))
	if len(got) != 1 || got[0] != item {
		t.Errorf("search after insert: got %v, want the inserted item", got)
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1", tree.Len())
	}
}

func TestInsertZeroValueIsNoop(t *testing.T) {
	tree := newRectTree(t, 9)
	tree.Insert(nil)
	if tree.Len() != 0 {
		t.Errorf("inserting the zero item changed the tree")
	}
}

func TestSequentialInsertGrowsBalancedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree")
	defer teardown()
	//
	// scenario: 25 distinct points into a tree with fanout 4
	tree := newRectTree(t, 4)
	items := make([]*rect, 0, 25)
	for i := 0; i < 25; i++ {
		item := p2(float64(i), float64(i*3%25))
		items = append(items, item)
		tree.Insert(item)
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after %d inserts: %v", i+1, err)
		}
	}
	if tree.Height() <= 1 {
		t.Errorf("tree of 25 points with fanout 4 has height %d, want > 1", tree.Height())
	}
	got := tree.Search(tree.Bounds())
	if len(got) != 25 {
		t.Errorf("search over full bounds returned %d items, want 25", len(got))
	}
	for _, item := range items {
		found := false
		for _, g := range got {
			if g == item {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("item %v missing from full search", item)
		}
	}
}

func TestSearchRestrictsEveryAxis(t *testing.T) {
	// dimension 3; points differ only in the third coordinate
	tree, err := New(Config[*rect]{MaxEntries: 4, Dimension: 3, Geometry: rectGeom{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		z := float64(i)
		tree.Insert(&rect{min: []float64{1, 1, z}, max: []float64{1, 1, z}})
	}
	// unrestricted in x and y, z limited to [5,9]
	query := BBox{-100, -100, 5, 100, 100, 9}
	got := tree.Search(query)
	if len(got) != 5 {
		t.Fatalf("search returned %d items, want 5", len(got))
	}
	for _, item := range got {
		if z := item.min[2]; z < 5 || z > 9 {
			t.Errorf("item with z=%g escaped the query box", z)
		}
	}
}

func TestCollides(t *testing.T) {
	tree := newRectTree(t, 4)
	for i := 0; i < 30; i++ {
		tree.Insert(p2(float64(i), float64(i)))
	}
	if !tree.Collides(box2(10, 10, 12, 12)) {
		t.Errorf("expected collision with populated region")
	}
	if tree.Collides(box2(100, 100, 110, 110)) {
		t.Errorf("unexpected collision with empty region")
	}
}

func TestCollidesDisjointRootShortCircuits(t *testing.T) {
	calls := 0
	tree, err := New(Config[*rect]{
		MaxEntries: 4,
		Geometry:   countingGeom{calls: &calls},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 30; i++ {
		tree.Insert(p2(float64(i), float64(i)))
	}
	calls = 0
	if tree.Collides(box2(1000, 1000, 1001, 1001)) {
		t.Errorf("collision reported for disjoint box")
	}
	if calls != 0 {
		t.Errorf("disjoint collides touched the accessor %d times, want 0", calls)
	}
}

func TestAllReturnsEveryItem(t *testing.T) {
	tree := newRectTree(t, 4)
	for i := 0; i < 40; i++ {
		tree.Insert(p2(float64(i%8), float64(i/8)))
	}
	if got := tree.All(); len(got) != 40 {
		t.Errorf("All returned %d items, want 40", len(got))
	}
}

func TestClear(t *testing.T) {
	tree := newRectTree(t, 4)
	for i := 0; i < 10; i++ {
		tree.Insert(p2(float64(i), 0))
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Height() != 1 {
		t.Errorf("tree not reset by Clear")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("cleared tree fails invariants: %v", err)
	}
}

func TestBoundsCoverAllItems(t *testing.T) {
	tree := newRectTree(t, 4)
	tree.Insert(r2(-3, 2, 4, 5))
	tree.Insert(r2(10, -7, 12, 0))
	b := tree.Bounds()
	want := box2(-3, -7, 12, 5)
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("bounds = %v, want %v", b, want)
		}
	}
}
