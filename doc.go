// Package grid is a grid geometry manager.
//
// Widgets are placed into the cells of a Container's sparse row/column table.
// Each column is as wide as its widest occupant and each row as tall as its
// tallest; the container's requirement is the sum. Spare space is split
// evenly between the rows and columns configured with weight 1, and anything
// that does not fit is clipped at the container's far edge.
//
// Sizes flow both ways. When a widget's requested size changes, its container
// re-negotiates and, if its own requirement changed, tells its parent, up to
// the root. When a container is resized, it re-assigns sizes and positions to
// its children, and nested containers do the same for theirs.
//
// All nodes live in a Tree and refer to each other by ID:
//
//	tree := grid.NewTree()
//	root, _ := tree.NewContainer(grid.None, true)
//	label, _ := tree.NewLeaf(root.ID(), 10, 1)
//	_ = root.Place(label.ID(), 0, 0)
//	_ = root.ColumnConfigure(1, 0)
//
// The package is single-threaded: a Tree must not be used from more than one
// goroutine at a time.
package grid
