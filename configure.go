package grid

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-grid/internal/debug"
)

// ConfigureExpansion sets the weight of one or more rows or columns.
// Weight 1 makes the lines share the container's spare space; weight 0 stops
// them. Any other weight fails with ErrInvalidWeight, and an empty or negative
// index list fails with ErrInvalidIndices. Nothing changes on error.
//
// Weight 1 appends the indices as given, so repeating an index is allowed and
// kept in ExpandableLines; weight 0 removes every occurrence. The axis is
// re-negotiated either way.
func (c *Container) ConfigureExpansion(axis Axis, weight int, indices ...int) error {
	if c.destroyed {
		return fmt.Errorf("configure %s: %w", c.tree.Name(c.id), ErrDestroyed)
	}
	if weight != 0 && weight != 1 {
		return fmt.Errorf("configure %s weight %d: %w", axis, weight, ErrInvalidWeight)
	}
	if len(indices) == 0 {
		return fmt.Errorf("configure %s: no indices: %w", axis, ErrInvalidIndices)
	}
	for _, i := range indices {
		if i < 0 {
			return fmt.Errorf("configure %s index %d: %w", axis, i, ErrInvalidIndices)
		}
	}

	if weight == 1 {
		c.expandable[axis] = append(c.expandable[axis], indices...)
	} else {
		c.expandable[axis] = slices.DeleteFunc(c.expandable[axis], func(i int) bool {
			return slices.Contains(indices, i)
		})
	}
	debug.Log("grid: %s %s expandable = %v", c.tree.Name(c.id), axis, c.expandable[axis])
	c.negotiate(axis)
	c.Redraw()
	return nil
}

// ColumnConfigure is ConfigureExpansion on the horizontal axis.
func (c *Container) ColumnConfigure(weight int, columns ...int) error {
	return c.ConfigureExpansion(Horizontal, weight, columns...)
}

// RowConfigure is ConfigureExpansion on the vertical axis.
func (c *Container) RowConfigure(weight int, rows ...int) error {
	return c.ConfigureExpansion(Vertical, weight, rows...)
}

// ExpandableLines returns the persisted weight-1 indices on axis, in the
// order they were configured.
func (c *Container) ExpandableLines(axis Axis) []int {
	return slices.Clone(c.expandable[axis])
}

// SetPropagate switches propagation. With propagation off the container keeps
// its footprint and clips children that do not fit. Both axes are re-negotiated.
func (c *Container) SetPropagate(propagate bool) {
	if c.destroyed {
		return
	}
	c.propagate = propagate
	c.update()
}

// Configure sets the container's own requested size, validated and applied
// like Leaf.Configure. The new requirement is reported upward at once: a
// self-sizing root resizes to it and a nested container asks its parent for
// a new cell. A container that propagates replaces the value with its
// content's requirement on the next negotiation, so a fixed footprint needs
// SetPropagate(false) or an empty container.
func (c *Container) Configure(opts ...ConfigOption) error {
	if c.destroyed {
		return fmt.Errorf("configure %s: %w", c.tree.Name(c.id), ErrDestroyed)
	}
	req, err := newSizeRequest(c.tree.Name(c.id), opts)
	if err != nil {
		return err
	}

	changed := false
	for _, axis := range Axes {
		if !req.set[axis] || req.size[axis] == c.required[axis] {
			continue
		}
		c.required[axis] = req.size[axis]
		debug.Log("grid: %s %s requirement set to %d", c.tree.Name(c.id), axis, req.size[axis])
		c.notifyUp(axis)
		c.negotiate(axis)
		changed = true
	}
	// A placed nested container was already redrawn by its parent.
	if changed && c.IsRoot() {
		c.Redraw()
	}
	return nil
}
