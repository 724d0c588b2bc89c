package grid

// WidgetAt returns the deepest widget whose assigned rectangle contains the
// point (x, y), descending into nested containers. It returns the container
// itself when no child is hit. Zero-sized widgets are never hit.
func (c *Container) WidgetAt(x, y int) ID {
	for _, id := range c.children {
		if !c.tree.Rect(id).Contains(x, y) {
			continue
		}
		if inner := c.tree.Container(id); inner != nil {
			return inner.WidgetAt(x, y)
		}
		return id
	}
	return c.id
}
