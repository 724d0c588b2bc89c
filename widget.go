package grid

import "math"

// ID is a stable handle to a node in a Tree. IDs are never reused, so a
// stale ID always resolves to a destroyed node rather than a different one.
type ID int

// None is the zero ID. It names no node and is the parent of every root.
const None ID = 0

// Unbounded is the size reported on an axis of a root container that has not
// been given a size yet. An unbounded axis never clips its children.
const Unbounded = math.MaxInt

// Widget is the contract between a container and each of its occupants.
// Containers implement it too, which is how nesting works: from its parent's
// point of view a container is just another widget.
type Widget interface {
	// ID returns the node's handle in its tree.
	ID() ID

	// RequestedSize returns the size the widget wants on axis.
	RequestedSize(axis Axis) int

	// Size returns the size the widget was last assigned on axis.
	Size(axis Axis) int

	// Position returns the widget's absolute coordinate on axis.
	Position(axis Axis) int

	// Resize assigns a new size on axis. Resizing to the current size is a no-op.
	Resize(axis Axis, size int)

	// Move shifts the widget by delta on axis. It is always applied, even for a
	// zero delta, so nested containers keep absolute coordinates consistent.
	Move(axis Axis, delta int)

	// Redraw asks the widget to draw itself.
	Redraw()

	// Destroy removes the widget from its tree and detaches it from its parent.
	Destroy() error
}
