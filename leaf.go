package grid

import "fmt"

// Leaf is a plain widget with a requested size. It draws nothing itself;
// a rendering layer observes it through LeafHooks.
type Leaf struct {
	tree      *Tree
	id        ID
	requested [2]int
	size      [2]int
	pos       [2]int
	hooks     LeafHooks
	destroyed bool
}

// LeafHooks are optional callbacks fired after the engine changes a leaf.
type LeafHooks struct {
	OnResize  func(l *Leaf, axis Axis, size int)
	OnMove    func(l *Leaf, axis Axis, delta int)
	OnRedraw  func(l *Leaf)
	OnDestroy func(l *Leaf)
}

// LeafOption configures a Leaf at creation.
type LeafOption func(*Leaf)

// WithLeafName sets the display name.
func WithLeafName(name string) LeafOption {
	return func(l *Leaf) {
		l.tree.nodes[l.id].name = name
	}
}

// WithHooks installs the rendering callbacks.
func WithHooks(h LeafHooks) LeafOption {
	return func(l *Leaf) {
		l.hooks = h
	}
}

// ID returns the leaf's handle.
func (l *Leaf) ID() ID { return l.id }

// RequestedSize returns the size the leaf asks for on axis.
func (l *Leaf) RequestedSize(axis Axis) int { return l.requested[axis] }

// Size returns the size the leaf was assigned on axis.
func (l *Leaf) Size(axis Axis) int { return l.size[axis] }

// Position returns the leaf's absolute coordinate on axis.
func (l *Leaf) Position(axis Axis) int { return l.pos[axis] }

// Resize is called by the container that lays the leaf out.
func (l *Leaf) Resize(axis Axis, size int) {
	if l.size[axis] == size {
		return
	}
	l.size[axis] = size
	if l.hooks.OnResize != nil {
		l.hooks.OnResize(l, axis, size)
	}
}

// Move is called by the container that lays the leaf out.
func (l *Leaf) Move(axis Axis, delta int) {
	l.pos[axis] += delta
	if l.hooks.OnMove != nil {
		l.hooks.OnMove(l, axis, delta)
	}
}

// Redraw fires the redraw hook.
func (l *Leaf) Redraw() {
	if l.hooks.OnRedraw != nil {
		l.hooks.OnRedraw(l)
	}
}

// Destroy removes the leaf from the tree and from its container's cell.
func (l *Leaf) Destroy() error {
	if l.destroyed {
		return fmt.Errorf("destroy %s: %w", l.tree.Name(l.id), ErrDoubleDestroy)
	}
	l.destroyed = true
	if l.hooks.OnDestroy != nil {
		l.hooks.OnDestroy(l)
	}
	return l.tree.release(l.id)
}

// ConfigOption changes one field of a leaf's requested size.
type ConfigOption func(*sizeRequest)

type sizeRequest struct {
	set  [2]bool
	size [2]int
}

// WithRequestedWidth requests a new width.
func WithRequestedWidth(width int) ConfigOption {
	return func(r *sizeRequest) {
		r.set[Horizontal], r.size[Horizontal] = true, width
	}
}

// WithRequestedHeight requests a new height.
func WithRequestedHeight(height int) ConfigOption {
	return func(r *sizeRequest) {
		r.set[Vertical], r.size[Vertical] = true, height
	}
}

// newSizeRequest collects opts and rejects negative sizes before anything is
// applied.
func newSizeRequest(name string, opts []ConfigOption) (sizeRequest, error) {
	var req sizeRequest
	for _, opt := range opts {
		opt(&req)
	}
	for _, axis := range Axes {
		if req.set[axis] && req.size[axis] < 0 {
			return req, fmt.Errorf("configure %s %s %d: %w", name, axis, req.size[axis], ErrInvalidSize)
		}
	}
	return req, nil
}

// Configure changes the leaf's requested size. All options are validated
// before any is applied, so an invalid height leaves a valid width unapplied
// too. Each axis whose request actually changes is re-negotiated by the
// leaf's container, width first.
func (l *Leaf) Configure(opts ...ConfigOption) error {
	if l.destroyed {
		return fmt.Errorf("configure %s: %w", l.tree.Name(l.id), ErrDestroyed)
	}
	req, err := newSizeRequest(l.tree.Name(l.id), opts)
	if err != nil {
		return err
	}

	var changed []Axis
	for _, axis := range Axes {
		if req.set[axis] && req.size[axis] != l.requested[axis] {
			l.requested[axis] = req.size[axis]
			changed = append(changed, axis)
		}
	}
	p := l.tree.Container(l.tree.Parent(l.id))
	if p == nil {
		return nil
	}
	for _, axis := range changed {
		p.RequestSizeChanged(l.id, axis)
	}
	return nil
}
