package grid

import "errors"

var (
	// ErrInvalidWeight is returned when an expansion weight is not 0 or 1.
	ErrInvalidWeight = errors.New("weight must be 0 or 1")

	// ErrInvalidIndices is returned for an empty or negative row/column index list.
	ErrInvalidIndices = errors.New("invalid row/column indices")

	// ErrAlreadyAttached is returned when placing a widget that already occupies a cell.
	ErrAlreadyAttached = errors.New("widget already attached")

	// ErrCellOccupied is returned when placing into a cell held by another widget.
	ErrCellOccupied = errors.New("cell already occupied")

	// ErrNotAttached is returned when removing a widget that is not placed in the container.
	ErrNotAttached = errors.New("widget not attached")

	// ErrNotChild is returned when placing a widget into a container other than its parent.
	ErrNotChild = errors.New("widget belongs to a different container")

	// ErrDoubleDestroy is returned when destroying a node twice.
	ErrDoubleDestroy = errors.New("already destroyed")

	// ErrDestroyed is returned by operations on a destroyed node.
	ErrDestroyed = errors.New("node destroyed")

	// ErrUnknownWidget is returned for an ID the tree never issued.
	ErrUnknownWidget = errors.New("unknown widget")

	// ErrInvalidSize is returned for negative requested or external sizes.
	ErrInvalidSize = errors.New("size must not be negative")
)
