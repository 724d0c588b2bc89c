package grid

import "github.com/grindlemire/go-grid/internal/debug"

// lineInfo is the per-line result of the measuring half of a pass.
type lineInfo struct {
	occupants   []ID
	requirement int
	expandable  bool
}

// measure computes every line's requirement on axis and marks the lines that
// take part in spare-space distribution. Empty lines and indices outside the
// table never expand, and an index listed twice still counts once.
func (c *Container) measure(axis Axis) []lineInfo {
	lines := make([]lineInfo, c.cells.lines(axis))
	for i := range lines {
		for _, id := range c.cells.line(axis, i) {
			w := c.tree.Widget(id)
			if w == nil {
				continue
			}
			lines[i].occupants = append(lines[i].occupants, id)
			lines[i].requirement = max(lines[i].requirement, w.RequestedSize(axis))
		}
	}
	for _, i := range c.expandable[axis] {
		if i < len(lines) && len(lines[i].occupants) > 0 {
			lines[i].expandable = true
		}
	}
	return lines
}

// Requirement returns the sum of the current line requirements on axis,
// whether or not the container propagates it.
func (c *Container) Requirement(axis Axis) int {
	total := 0
	for _, l := range c.measure(axis) {
		total += l.requirement
	}
	return total
}

// negotiate runs one pass on axis: measure the lines, push a changed
// requirement upward, then hand out the container's actual size line by line.
func (c *Container) negotiate(axis Axis) {
	lines := c.measure(axis)
	total := 0
	expandable := 0
	for _, l := range lines {
		total += l.requirement
		if l.expandable {
			expandable++
		}
	}

	if total != c.required[axis] && c.propagate && len(c.children) > 0 {
		debug.Log("grid: %s %s requirement %d -> %d", c.tree.Name(c.id), axis, c.required[axis], total)
		c.required[axis] = total
		// May resize c as a side effect, so the actual size is read afterwards.
		c.notifyUp(axis)
	}

	bounded := c.bounded[axis]
	size := c.size[axis]
	base := c.pos[axis]
	far := base + size

	// Floor division; the remainder is left unassigned.
	perLine := 0
	if bounded && expandable > 0 {
		perLine = max(0, size-total) / expandable
	}

	for _, l := range lines {
		if len(l.occupants) == 0 {
			continue
		}
		assigned := l.requirement
		if l.expandable {
			assigned += perLine
		}
		if bounded {
			assigned = min(assigned, max(0, far-base))
		}
		for _, id := range l.occupants {
			w := c.tree.Widget(id)
			if w == nil {
				continue
			}
			w.Move(axis, base-w.Position(axis))
			if w.Size(axis) != assigned {
				w.Resize(axis, assigned)
			}
		}
		base += assigned
	}
}

