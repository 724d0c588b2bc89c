package grid

import (
	"fmt"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/layout"
)

// Tree is the arena that owns every container and leaf of a layout. Nodes
// refer to each other by ID: a node's parent and a container's cells hold
// IDs, never pointers, and destruction is an explicit step that marks the
// arena slot dead.
//
// A Tree is not safe for concurrent use. Every operation completes
// synchronously on the caller's stack.
type Tree struct {
	nodes []node
}

type node struct {
	widget Widget
	name   string
	parent ID // container this node may be placed into
	placed bool
	row    int
	column int
	sticky Sticky
	alive  bool
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	// Slot 0 backs None and is never alive.
	return &Tree{nodes: make([]node, 1)}
}

func (t *Tree) register(w func(ID) Widget, parent ID, kind string) ID {
	id := ID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		widget: w(id),
		name:   fmt.Sprintf("%s%d", kind, id),
		parent: parent,
		alive:  true,
	})
	return id
}

// lookup returns the live node for id.
func (t *Tree) lookup(id ID) (*node, error) {
	if id <= None || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("id %d: %w", id, ErrUnknownWidget)
	}
	n := &t.nodes[id]
	if !n.alive {
		return nil, fmt.Errorf("%s: %w", n.name, ErrDestroyed)
	}
	return n, nil
}

// parentContainer resolves the container a new node is created under.
func (t *Tree) parentContainer(parent ID) (*Container, error) {
	if parent == None {
		return nil, nil
	}
	n, err := t.lookup(parent)
	if err != nil {
		return nil, fmt.Errorf("parent: %w", err)
	}
	c, ok := n.widget.(*Container)
	if !ok {
		return nil, fmt.Errorf("parent %s is not a container: %w", n.name, ErrUnknownWidget)
	}
	return c, nil
}

// NewContainer creates a container. A container without a parent is a root:
// it starts unbounded on both axes and, when selfSizing is set, resizes
// itself to its requirement whenever that changes. A container with a parent
// starts at zero size and is sized by the parent once placed.
func (t *Tree) NewContainer(parent ID, selfSizing bool, opts ...ContainerOption) (*Container, error) {
	if _, err := t.parentContainer(parent); err != nil {
		return nil, err
	}
	var c *Container
	t.register(func(id ID) Widget {
		c = newContainer(t, id, parent, selfSizing)
		return c
	}, parent, "container")
	for _, opt := range opts {
		opt(c)
	}
	debug.Log("grid: new %s parent=%d selfSizing=%t", t.Name(c.id), parent, selfSizing)
	return c, nil
}

// NewLeaf creates a leaf widget under parent with the given requested size.
// The leaf takes no space until it is placed with parent.Place.
func (t *Tree) NewLeaf(parent ID, width, height int, opts ...LeafOption) (*Leaf, error) {
	p, err := t.parentContainer(parent)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("leaf needs a parent container: %w", ErrUnknownWidget)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("leaf %dx%d: %w", width, height, ErrInvalidSize)
	}
	var l *Leaf
	t.register(func(id ID) Widget {
		l = &Leaf{tree: t, id: id, requested: [2]int{width, height}}
		return l
	}, parent, "leaf")
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Widget returns the widget for id, or nil if id is unknown or destroyed.
func (t *Tree) Widget(id ID) Widget {
	n, err := t.lookup(id)
	if err != nil {
		return nil
	}
	return n.widget
}

// Container returns the container for id, or nil if id is not a live container.
func (t *Tree) Container(id ID) *Container {
	c, _ := t.Widget(id).(*Container)
	return c
}

// Alive reports whether id names a node that has not been destroyed.
func (t *Tree) Alive(id ID) bool {
	_, err := t.lookup(id)
	return err == nil
}

// Name returns the display name of id. Destroyed nodes keep their name.
func (t *Tree) Name(id ID) string {
	if id <= None || int(id) >= len(t.nodes) {
		return ""
	}
	return t.nodes[id].name
}

// SetName changes the display name of id.
func (t *Tree) SetName(id ID, name string) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	n.name = name
	return nil
}

// Parent returns the container id was created under, or None for a root.
func (t *Tree) Parent(id ID) ID {
	if id <= None || int(id) >= len(t.nodes) {
		return None
	}
	return t.nodes[id].parent
}

// Cell returns the cell id occupies. ok is false when id is not placed.
func (t *Tree) Cell(id ID) (row, column int, ok bool) {
	n, err := t.lookup(id)
	if err != nil || !n.placed {
		return 0, 0, false
	}
	return n.row, n.column, true
}

// Sticky returns the sticky edges id was placed with.
func (t *Tree) Sticky(id ID) Sticky {
	n, err := t.lookup(id)
	if err != nil {
		return 0
	}
	return n.sticky
}

// Rect returns the assigned geometry of id. An unbounded axis reports the
// node's requirement instead so the rectangle stays finite.
func (t *Tree) Rect(id ID) layout.Rect {
	w := t.Widget(id)
	if w == nil {
		return layout.Rect{}
	}
	width, height := w.Size(Horizontal), w.Size(Vertical)
	if width == Unbounded {
		width = w.RequestedSize(Horizontal)
	}
	if height == Unbounded {
		height = w.RequestedSize(Vertical)
	}
	return layout.NewRect(w.Position(Horizontal), w.Position(Vertical), width, height)
}

// release marks id dead and detaches it from the container it is placed in.
func (t *Tree) release(id ID) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	n.alive = false
	debug.Log("grid: destroyed %s", n.name)
	if !n.placed {
		return nil
	}
	p := t.Container(n.parent)
	if p == nil {
		return nil
	}
	return p.detach(id)
}
