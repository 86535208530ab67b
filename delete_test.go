package boxtree

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestRemoveDeletesItem(t *testing.T) {
	tree := newRectTree(t, 4)
	items := make([]*rect, 0, 30)
	for i := 0; i < 30; i++ {
		item := p2(float64(i), float64(i*7%30))
		items = append(items, item)
		tree.Insert(item)
	}
	victim := items[13]
	tree.Remove(victim)
	if tree.Len() != 29 {
		t.Fatalf("Len = %d after remove, want 29", tree.Len())
	}
	for _, got := range tree.All() {
		if got == victim {
			t.Fatalf("removed item still present")
		}
	}
	if err := tree.check(false); err != nil {
		t.Errorf("invariants broken after remove: %v", err)
	}
}

func TestRemoveComparesByIdentity(t *testing.T) {
	tree := newRectTree(t, 4)
	a := p2(5, 5)
	twin := p2(5, 5) // same coordinates, different identity
	tree.Insert(a)
	tree.Remove(twin)
	if tree.Len() != 1 {
		t.Errorf("remove by value-equal twin deleted the item")
	}
	tree.Remove(a)
	if tree.Len() != 0 {
		t.Errorf("remove by identity failed")
	}
}

func TestRemoveAbsentItemLeavesTreeUntouched(t *testing.T) {
	// scenario: removing a never-inserted item must not modify the tree
	tree := newRectTree(t, 4)
	for i := 0; i < 25; i++ {
		tree.Insert(p2(float64(i), float64(i)))
	}
	before := tree.Export()
	tree.Remove(p2(12, 12))
	after := tree.Export()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("removing an absent item modified the tree structure")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	tree := newRectTree(t, 4)
	items := make([]*rect, 0, 20)
	for i := 0; i < 20; i++ {
		item := p2(float64(i), 0)
		items = append(items, item)
		tree.Insert(item)
	}
	tree.Remove(items[7])
	before := tree.Export()
	tree.Remove(items[7])
	after := tree.Export()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("second remove of the same item modified the tree")
	}
}

func TestRemoveZeroValueIsNoop(t *testing.T) {
	tree := newRectTree(t, 4)
	tree.Insert(p2(1, 1))
	tree.Remove(nil)
	if tree.Len() != 1 {
		t.Errorf("removing the zero item changed the tree")
	}
}

func TestRemoveAllItemsCondensesToEmptyLeaf(t *testing.T) {
	tree := newRectTree(t, 4)
	items := make([]*rect, 0, 50)
	for i := 0; i < 50; i++ {
		item := p2(float64(i%10), float64(i/10))
		items = append(items, item)
		tree.Insert(item)
	}
	for i, item := range items {
		tree.Remove(item)
		if err := tree.check(false); err != nil {
			t.Fatalf("invariants broken after removing %d items: %v", i+1, err)
		}
	}
	if !tree.IsEmpty() {
		t.Fatalf("tree not empty after removing all items, Len = %d", tree.Len())
	}
	if tree.Height() != 1 {
		t.Errorf("emptied tree has height %d, want 1", tree.Height())
	}
}

func TestRemoveFromBulkLoadedTree(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	tree := newRectTree(t, 0)
	items := randomRects(r, 400)
	tree.Load(items)
	perm := r.Perm(len(items))
	for _, idx := range perm[:200] {
		tree.Remove(items[idx])
	}
	if tree.Len() != 200 {
		t.Fatalf("Len = %d, want 200", tree.Len())
	}
	got := tree.Search(tree.Bounds())
	if len(got) != 200 {
		t.Errorf("full search returned %d items, want 200", len(got))
	}
}
