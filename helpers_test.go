package grid

import "testing"

// xy is a (horizontal, vertical) pair used to compare sizes and positions.
type xy [2]int

func sizeOf(w Widget) xy { return xy{w.Size(Horizontal), w.Size(Vertical)} }
func posOf(w Widget) xy  { return xy{w.Position(Horizontal), w.Position(Vertical)} }

func mustContainer(t *testing.T, tree *Tree, parent ID, selfSizing bool, opts ...ContainerOption) *Container {
	t.Helper()
	c, err := tree.NewContainer(parent, selfSizing, opts...)
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	return c
}

func mustLeaf(t *testing.T, tree *Tree, parent *Container, name string, width, height int, opts ...LeafOption) *Leaf {
	t.Helper()
	l, err := tree.NewLeaf(parent.ID(), width, height, append([]LeafOption{WithLeafName(name)}, opts...)...)
	if err != nil {
		t.Fatalf("NewLeaf(%s) error = %v", name, err)
	}
	return l
}

func mustPlace(t *testing.T, c *Container, w Widget, row, column int, opts ...PlaceOption) {
	t.Helper()
	if err := c.Place(w.ID(), row, column, opts...); err != nil {
		t.Fatalf("Place(%s, %d, %d) error = %v", c.tree.Name(w.ID()), row, column, err)
	}
}

// fourWidgets builds the reference layout: four leaves in a root that does
// not size itself.
//
//	-   -   w4
//	-   w1  w2
//	-   -   w3
func fourWidgets(t *testing.T) (*Container, []*Leaf) {
	t.Helper()
	tree := NewTree()
	root := mustContainer(t, tree, None, false, WithName("root"))
	w1 := mustLeaf(t, tree, root, "w1", 5, 10)
	w2 := mustLeaf(t, tree, root, "w2", 5, 20)
	w3 := mustLeaf(t, tree, root, "w3", 10, 10)
	w4 := mustLeaf(t, tree, root, "w4", 15, 10)
	mustPlace(t, root, w1, 1, 1)
	mustPlace(t, root, w2, 1, 2)
	mustPlace(t, root, w3, 2, 2)
	mustPlace(t, root, w4, 0, 2)
	return root, []*Leaf{w1, w2, w3, w4}
}

func checkGeometry(t *testing.T, leaves []*Leaf, sizes, positions []xy) {
	t.Helper()
	for i, l := range leaves {
		name := l.tree.Name(l.ID())
		if got := sizeOf(l); got != sizes[i] {
			t.Errorf("%s size = %v, want %v", name, got, sizes[i])
		}
		if got := posOf(l); got != positions[i] {
			t.Errorf("%s position = %v, want %v", name, got, positions[i])
		}
	}
}
