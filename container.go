package grid

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-grid/internal/debug"
)

// Container lays out its children in a sparse grid of rows and columns.
// It is also a Widget, so containers nest.
type Container struct {
	tree   *Tree
	id     ID
	parent ID

	size     [2]int  // actual size per axis
	bounded  [2]bool // false while a root has never been sized
	required [2]int
	pos      [2]int

	propagate  bool
	selfSizing bool
	expandable [2][]int // persisted weight-1 indices; may hold duplicates

	cells     cellTable
	children  []ID
	destroyed bool

	onRedraw func(*Container)
}

// ContainerOption configures a Container at creation.
type ContainerOption func(*Container)

// WithName sets the display name used by Dump and layout files.
func WithName(name string) ContainerOption {
	return func(c *Container) {
		c.tree.nodes[c.id].name = name
	}
}

// WithPropagate sets the initial propagation switch. The default is true.
func WithPropagate(propagate bool) ContainerOption {
	return func(c *Container) {
		c.propagate = propagate
	}
}

// WithRedrawHook registers fn to run each time the container is redrawn,
// after its children.
func WithRedrawHook(fn func(*Container)) ContainerOption {
	return func(c *Container) {
		c.onRedraw = fn
	}
}

func newContainer(t *Tree, id, parent ID, selfSizing bool) *Container {
	c := &Container{
		tree:       t,
		id:         id,
		parent:     parent,
		propagate:  true,
		selfSizing: selfSizing,
	}
	if parent != None {
		// Nested containers are sized by their parent, starting from nothing.
		c.bounded = [2]bool{true, true}
	}
	return c
}

// ID returns the container's handle.
func (c *Container) ID() ID { return c.id }

// Parent returns the container this one was created under, or None.
func (c *Container) Parent() ID { return c.parent }

// IsRoot reports whether the container has no parent.
func (c *Container) IsRoot() bool { return c.parent == None }

// RequestedSize returns the container's requirement on axis: the sum of its
// line requirements as of the last propagating negotiation.
func (c *Container) RequestedSize(axis Axis) int { return c.required[axis] }

// Size returns the actual size on axis, or Unbounded for a root that has not
// been sized on that axis.
func (c *Container) Size(axis Axis) int {
	if !c.bounded[axis] {
		return Unbounded
	}
	return c.size[axis]
}

// Position returns the absolute coordinate of the container's origin on axis.
func (c *Container) Position(axis Axis) int { return c.pos[axis] }

// Propagate reports whether content size changes resize the container.
func (c *Container) Propagate() bool { return c.propagate }

// SelfSizing reports whether the container was created self-sizing.
func (c *Container) SelfSizing() bool { return c.selfSizing }

// Rows returns the number of rows in the cell table.
func (c *Container) Rows() int { return c.cells.rows() }

// Columns returns the number of columns in the cell table.
func (c *Container) Columns() int { return c.cells.columns() }

// Row returns a snapshot of row i. Empty cells are None.
func (c *Container) Row(i int) []ID { return c.cells.row(i) }

// Column returns a snapshot of column j. Empty cells are None.
func (c *Container) Column(j int) []ID { return c.cells.column(j) }

// At returns the occupant of (row, column), or None.
func (c *Container) At(row, column int) ID { return c.cells.at(row, column) }

// Children returns the placed widgets in placement order.
func (c *Container) Children() []ID { return slices.Clone(c.children) }

// Resize assigns a new actual size on axis and re-lays out that axis.
// Resizing to the current size does nothing.
func (c *Container) Resize(axis Axis, size int) {
	if c.bounded[axis] && c.size[axis] == size {
		return
	}
	c.setSize(axis, size)
	c.Redraw()
}

// setSize changes the actual size and runs the downward pass without redrawing.
func (c *Container) setSize(axis Axis, size int) {
	c.size[axis] = size
	c.bounded[axis] = true
	debug.Log("grid: %s %s size -> %d", c.tree.Name(c.id), axis, size)
	c.negotiate(axis)
}

// SetSize gives the container an external size on both axes, as a window
// resize would for a root. It redraws once.
func (c *Container) SetSize(width, height int) error {
	if c.destroyed {
		return fmt.Errorf("%s: %w", c.tree.Name(c.id), ErrDestroyed)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%s size %dx%d: %w", c.tree.Name(c.id), width, height, ErrInvalidSize)
	}
	changed := false
	for axis, size := range [2]int{width, height} {
		if c.bounded[axis] && c.size[axis] == size {
			continue
		}
		c.setSize(Axis(axis), size)
		changed = true
	}
	if changed {
		c.Redraw()
	}
	return nil
}

// Move shifts the container and everything inside it by delta on axis.
func (c *Container) Move(axis Axis, delta int) {
	c.pos[axis] += delta
	for _, id := range c.children {
		if w := c.tree.Widget(id); w != nil {
			w.Move(axis, delta)
		}
	}
}

// MoveTo places a root's origin at (x, y) and redraws.
func (c *Container) MoveTo(x, y int) {
	c.Move(Horizontal, x-c.pos[Horizontal])
	c.Move(Vertical, y-c.pos[Vertical])
	c.Redraw()
}

// Redraw redraws every child, then runs the redraw hook.
func (c *Container) Redraw() {
	for _, id := range c.children {
		if w := c.tree.Widget(id); w != nil {
			w.Redraw()
		}
	}
	if c.onRedraw != nil {
		c.onRedraw(c)
	}
}

// Place puts a widget into (row, column), growing the table as needed, and
// re-negotiates both axes. The widget must have been created under c.
// Placing into a cell held by a different widget fails with ErrCellOccupied.
func (c *Container) Place(id ID, row, column int, opts ...PlaceOption) error {
	if c.destroyed {
		return fmt.Errorf("place into %s: %w", c.tree.Name(c.id), ErrDestroyed)
	}
	if row < 0 || column < 0 {
		return fmt.Errorf("place at (%d, %d): %w", row, column, ErrInvalidIndices)
	}
	n, err := c.tree.lookup(id)
	if err != nil {
		return fmt.Errorf("place: %w", err)
	}
	if slices.Contains(c.children, id) {
		return fmt.Errorf("place %s: %w", n.name, ErrAlreadyAttached)
	}
	if n.parent != c.id {
		return fmt.Errorf("place %s into %s: %w", n.name, c.tree.Name(c.id), ErrNotChild)
	}
	if occupant := c.cells.at(row, column); occupant != None {
		return fmt.Errorf("place %s at (%d, %d) held by %s: %w",
			n.name, row, column, c.tree.Name(occupant), ErrCellOccupied)
	}

	p := placement{sticky: n.sticky}
	for _, opt := range opts {
		opt(&p)
	}

	c.cells.set(row, column, id)
	c.children = append(c.children, id)
	n.placed, n.row, n.column, n.sticky = true, row, column, p.sticky
	debug.Log("grid: placed %s in %s at (%d, %d)", n.name, c.tree.Name(c.id), row, column)
	c.update()
	return nil
}

// Remove takes a placed widget out of its cell and re-negotiates both axes.
// The table keeps its dimensions. The widget stays alive and can be placed again.
func (c *Container) Remove(id ID) error {
	if c.destroyed {
		return fmt.Errorf("remove from %s: %w", c.tree.Name(c.id), ErrDestroyed)
	}
	return c.detach(id)
}

func (c *Container) detach(id ID) error {
	i := slices.Index(c.children, id)
	if i < 0 {
		return fmt.Errorf("remove %s from %s: %w", c.tree.Name(id), c.tree.Name(c.id), ErrNotAttached)
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.cells.clear(id)
	c.tree.nodes[id].placed = false
	debug.Log("grid: removed %s from %s", c.tree.Name(id), c.tree.Name(c.id))
	c.update()
	return nil
}

// RequestSizeChanged is called on behalf of a placed widget whose requested
// size on axis changed. Widgets that are not placed here are ignored.
func (c *Container) RequestSizeChanged(id ID, axis Axis) {
	if c.destroyed || !c.cells.contains(id) {
		return
	}
	c.negotiate(axis)
	c.Redraw()
}

// Destroy destroys every child, depth first, then removes the container from
// its parent and the tree.
func (c *Container) Destroy() error {
	if c.destroyed {
		return fmt.Errorf("destroy %s: %w", c.tree.Name(c.id), ErrDoubleDestroy)
	}
	for _, id := range slices.Clone(c.children) {
		if w := c.tree.Widget(id); w != nil {
			if err := w.Destroy(); err != nil {
				return err
			}
		}
	}
	c.destroyed = true
	return c.tree.release(c.id)
}

// update re-negotiates both axes and redraws once.
func (c *Container) update() {
	for _, axis := range Axes {
		c.negotiate(axis)
	}
	if debug.Enabled() {
		debug.Log("grid: %s sizes\n%s", c.tree.Name(c.id), c.Dump(DumpSizes))
	}
	c.Redraw()
}

// notifyUp reports a requirement change on axis to whoever decides this
// container's size.
func (c *Container) notifyUp(axis Axis) {
	if c.parent == None {
		if c.selfSizing && (!c.bounded[axis] || c.size[axis] != c.required[axis]) {
			c.setSize(axis, c.required[axis])
		}
		return
	}
	if p := c.tree.Container(c.parent); p != nil {
		p.RequestSizeChanged(c.id, axis)
	}
}

// PlaceOption configures a single placement.
type PlaceOption func(*placement)

type placement struct {
	sticky Sticky
}

// WithSticky records which cell edges the widget clings to.
func WithSticky(s Sticky) PlaceOption {
	return func(p *placement) {
		p.sticky = s
	}
}
