package grid

import (
	"errors"
	"slices"
	"testing"
)

// expansionFixture is a 101x50 root with leaves in columns 0, 1 and 3;
// column 2 is empty.
func expansionFixture(t *testing.T) (*Container, []*Leaf) {
	t.Helper()
	tree := NewTree()
	root := mustContainer(t, tree, None, false)
	if err := root.SetSize(101, 50); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	a := mustLeaf(t, tree, root, "a", 10, 5)
	b := mustLeaf(t, tree, root, "b", 20, 5)
	c := mustLeaf(t, tree, root, "c", 10, 5)
	mustPlace(t, root, a, 0, 0)
	mustPlace(t, root, b, 0, 1)
	mustPlace(t, root, c, 0, 3)
	return root, []*Leaf{a, b, c}
}

func widths(leaves []*Leaf) []int {
	out := make([]int, len(leaves))
	for i, l := range leaves {
		out[i] = l.Size(Horizontal)
	}
	return out
}

func TestConfigureExpansion_Distribution(t *testing.T) {
	type tc struct {
		columns []int
		widths  []int
		xs      []int
	}

	tests := map[string]tc{
		"no expansion": {
			columns: nil,
			widths:  []int{10, 20, 10},
			xs:      []int{0, 10, 30},
		},
		"single column takes everything": {
			columns: []int{1},
			widths:  []int{10, 81, 10},
			xs:      []int{0, 10, 91},
		},
		"empty column is skipped and remainder dropped": {
			// spare 61 over 3 occupied columns: 20 each, 1 left over.
			columns: []int{0, 1, 2, 3},
			widths:  []int{30, 40, 30},
			xs:      []int{0, 30, 70},
		},
		"duplicates count once": {
			columns: []int{0, 0, 3},
			widths:  []int{40, 20, 40},
			xs:      []int{0, 40, 60},
		},
		"index past the table is ignored": {
			columns: []int{3, 9},
			widths:  []int{10, 20, 71},
			xs:      []int{0, 10, 30},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, leaves := expansionFixture(t)
			if len(tt.columns) > 0 {
				if err := root.ColumnConfigure(1, tt.columns...); err != nil {
					t.Fatalf("ColumnConfigure() error = %v", err)
				}
			}
			if got := widths(leaves); !slices.Equal(got, tt.widths) {
				t.Errorf("widths = %v, want %v", got, tt.widths)
			}
			for i, l := range leaves {
				if got := l.Position(Horizontal); got != tt.xs[i] {
					t.Errorf("%s x = %d, want %d", root.tree.Name(l.ID()), got, tt.xs[i])
				}
			}
			if got := root.ExpandableLines(Horizontal); !slices.Equal(got, tt.columns) {
				t.Errorf("ExpandableLines() = %v, want %v", got, tt.columns)
			}
		})
	}
}

func TestConfigureExpansion_EqualShare(t *testing.T) {
	root, leaves := expansionFixture(t)
	if err := root.ColumnConfigure(1, 0, 1, 3); err != nil {
		t.Fatalf("ColumnConfigure() error = %v", err)
	}

	var extra []int
	for _, l := range leaves {
		extra = append(extra, l.Size(Horizontal)-l.RequestedSize(Horizontal))
	}
	for _, e := range extra[1:] {
		if e != extra[0] {
			t.Fatalf("extra space = %v, want equal shares", extra)
		}
	}
	used := 0
	for _, w := range widths(leaves) {
		used += w
	}
	if spare := 101 - root.RequestedSize(Horizontal); used != root.RequestedSize(Horizontal)+spare/3*3 {
		t.Errorf("used = %d, want requirement plus floor share of %d", used, spare)
	}
}

func TestConfigureExpansion_WeightZeroRemovesAll(t *testing.T) {
	root, leaves := expansionFixture(t)
	if err := root.ColumnConfigure(1, 1, 1, 3); err != nil {
		t.Fatalf("ColumnConfigure() error = %v", err)
	}
	if err := root.ColumnConfigure(0, 1, 7); err != nil {
		t.Fatalf("ColumnConfigure(0) error = %v", err)
	}

	if got := root.ExpandableLines(Horizontal); !slices.Equal(got, []int{3}) {
		t.Errorf("ExpandableLines() = %v, want [3]", got)
	}
	if got := widths(leaves); !slices.Equal(got, []int{10, 20, 71}) {
		t.Errorf("widths = %v, want [10 20 71]", got)
	}
}

func TestConfigureExpansion_Rows(t *testing.T) {
	tree := NewTree()
	root := mustContainer(t, tree, None, false)
	if err := root.SetSize(10, 30); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	top := mustLeaf(t, tree, root, "top", 5, 4)
	bottom := mustLeaf(t, tree, root, "bottom", 5, 6)
	mustPlace(t, root, top, 0, 0)
	mustPlace(t, root, bottom, 1, 0)

	if err := root.RowConfigure(1, 0); err != nil {
		t.Fatalf("RowConfigure() error = %v", err)
	}

	if got := sizeOf(top); got != (xy{5, 24}) {
		t.Errorf("top size = %v, want [5 24]", got)
	}
	if got := posOf(bottom); got != (xy{0, 24}) {
		t.Errorf("bottom position = %v, want [0 24]", got)
	}
	if got := root.ExpandableLines(Horizontal); len(got) != 0 {
		t.Errorf("horizontal expandable = %v, want none", got)
	}
}

func TestConfigureExpansion_Errors(t *testing.T) {
	type tc struct {
		weight  int
		indices []int
		want    error
	}

	tests := map[string]tc{
		"weight two":     {weight: 2, indices: []int{0}, want: ErrInvalidWeight},
		"negative":       {weight: -1, indices: []int{0}, want: ErrInvalidWeight},
		"no indices":     {weight: 1, indices: nil, want: ErrInvalidIndices},
		"negative index": {weight: 1, indices: []int{0, -3}, want: ErrInvalidIndices},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, leaves := expansionFixture(t)
			err := root.ColumnConfigure(tt.weight, tt.indices...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ColumnConfigure() error = %v, want %v", err, tt.want)
			}
			if got := root.ExpandableLines(Horizontal); len(got) != 0 {
				t.Errorf("ExpandableLines() = %v, want unchanged", got)
			}
			if got := widths(leaves); !slices.Equal(got, []int{10, 20, 10}) {
				t.Errorf("widths = %v, want unchanged", got)
			}
		})
	}
}

func TestLeaf_ConfigureIsAtomic(t *testing.T) {
	root, leaves := fourWidgets(t)
	w1 := leaves[0]

	err := w1.Configure(WithRequestedWidth(9), WithRequestedHeight(-1))
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Configure() error = %v, want ErrInvalidSize", err)
	}
	if got := w1.RequestedSize(Horizontal); got != 5 {
		t.Errorf("requested width = %d, want 5 (unchanged)", got)
	}
	if got := root.RequestedSize(Horizontal); got != 20 {
		t.Errorf("root requirement = %d, want 20 (unchanged)", got)
	}

	if err := w1.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if err := w1.Configure(WithRequestedWidth(1)); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Configure() on destroyed leaf error = %v, want ErrDestroyed", err)
	}
}

func TestLeaf_ResizeHooks(t *testing.T) {
	tree := NewTree()
	root := mustContainer(t, tree, None, true)
	var resizes []string
	redraws := 0
	l := mustLeaf(t, tree, root, "a", 3, 4, WithHooks(LeafHooks{
		OnResize: func(_ *Leaf, axis Axis, size int) {
			resizes = append(resizes, axis.String())
		},
		OnRedraw: func(*Leaf) { redraws++ },
	}))
	mustPlace(t, root, l, 0, 0)

	if !slices.Equal(resizes, []string{"horizontal", "vertical"}) {
		t.Errorf("resizes = %v, want one per axis", resizes)
	}
	if redraws != 1 {
		t.Errorf("redraws = %d, want 1", redraws)
	}

	resizes = nil
	if err := l.Configure(WithRequestedWidth(3)); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if len(resizes) != 0 {
		t.Errorf("unchanged request caused resizes %v", resizes)
	}
}

func TestConfigureExpansion_AllLinesAfterMove(t *testing.T) {
	root, leaves := fourWidgets(t)
	if err := root.SetSize(25, 49); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	root.MoveTo(1000, 3000)

	if err := root.ColumnConfigure(1, 0, 1, 2); err != nil {
		t.Fatalf("ColumnConfigure() error = %v", err)
	}
	if err := root.RowConfigure(1, 0, 1, 2); err != nil {
		t.Fatalf("RowConfigure() error = %v", err)
	}

	// Column 0 is empty, so 5 spare columns split over two lines (2 each,
	// 1 dropped); 9 spare rows split over three (3 each).
	checkGeometry(t, leaves,
		[]xy{{7, 23}, {17, 23}, {17, 13}, {17, 13}},
		[]xy{{1000, 3013}, {1007, 3013}, {1007, 3036}, {1007, 3000}},
	)
}

func TestContainer_ConfigureFixedFootprint(t *testing.T) {
	tree := NewTree()
	root := mustContainer(t, tree, None, true)
	panel := mustContainer(t, tree, root.ID(), false)
	a := mustLeaf(t, tree, panel, "a", 30, 30)
	mustPlace(t, root, panel, 0, 0)
	mustPlace(t, panel, a, 0, 0)
	if got := sizeOf(root); got != (xy{30, 30}) {
		t.Fatalf("root size = %v, want [30 30]", got)
	}

	panel.SetPropagate(false)
	if err := panel.Configure(WithRequestedWidth(10), WithRequestedHeight(5)); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	if got := (xy{panel.RequestedSize(Horizontal), panel.RequestedSize(Vertical)}); got != (xy{10, 5}) {
		t.Errorf("panel requested = %v, want [10 5]", got)
	}
	if got := panel.Requirement(Horizontal); got != 30 {
		t.Errorf("panel content requirement = %d, want 30", got)
	}
	if got := sizeOf(root); got != (xy{10, 5}) {
		t.Errorf("root size = %v, want [10 5]", got)
	}
	if got := sizeOf(panel); got != (xy{10, 5}) {
		t.Errorf("panel size = %v, want [10 5]", got)
	}
	if got := sizeOf(a); got != (xy{10, 5}) {
		t.Errorf("a size = %v, want clipped [10 5]", got)
	}
}

func TestContainer_Configure(t *testing.T) {
	t.Run("empty self-sizing root", func(t *testing.T) {
		tree := NewTree()
		redraws := 0
		root := mustContainer(t, tree, None, true, WithRedrawHook(func(*Container) { redraws++ }))
		if err := root.Configure(WithRequestedWidth(12), WithRequestedHeight(8)); err != nil {
			t.Fatalf("Configure() error = %v", err)
		}
		if got := sizeOf(root); got != (xy{12, 8}) {
			t.Errorf("root size = %v, want [12 8]", got)
		}
		if redraws != 1 {
			t.Errorf("redraws = %d, want 1", redraws)
		}
	})

	t.Run("propagating content wins", func(t *testing.T) {
		tree := NewTree()
		root := mustContainer(t, tree, None, true)
		a := mustLeaf(t, tree, root, "a", 4, 2)
		mustPlace(t, root, a, 0, 0)
		if err := root.Configure(WithRequestedWidth(20)); err != nil {
			t.Fatalf("Configure() error = %v", err)
		}
		if got := root.RequestedSize(Horizontal); got != 4 {
			t.Errorf("requested width = %d, want 4", got)
		}
		if got := sizeOf(root); got != (xy{4, 2}) {
			t.Errorf("root size = %v, want [4 2]", got)
		}
	})

	t.Run("invalid size is atomic", func(t *testing.T) {
		tree := NewTree()
		root := mustContainer(t, tree, None, false)
		err := root.Configure(WithRequestedWidth(7), WithRequestedHeight(-1))
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("Configure() error = %v, want ErrInvalidSize", err)
		}
		if got := root.RequestedSize(Horizontal); got != 0 {
			t.Errorf("requested width = %d, want 0 (unchanged)", got)
		}
	})

	t.Run("destroyed", func(t *testing.T) {
		tree := NewTree()
		root := mustContainer(t, tree, None, false)
		if err := root.Destroy(); err != nil {
			t.Fatalf("Destroy() error = %v", err)
		}
		if err := root.Configure(WithRequestedWidth(1)); !errors.Is(err, ErrDestroyed) {
			t.Errorf("Configure() error = %v, want ErrDestroyed", err)
		}
	})
}
