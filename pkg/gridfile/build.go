package gridfile

import (
	"fmt"
	"slices"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/debug"
)

// Layout is a built tree plus a name index.
type Layout struct {
	Tree  *grid.Tree
	Root  *grid.Container
	names map[string]grid.ID
}

func newLayout() *Layout {
	return &Layout{Tree: grid.NewTree(), names: make(map[string]grid.ID)}
}

// Lookup returns the node registered under name.
func (l *Layout) Lookup(name string) (grid.ID, bool) {
	id, ok := l.names[name]
	return id, ok
}

// Names returns every registered name in sorted order.
func (l *Layout) Names() []string {
	out := make([]string, 0, len(l.names))
	for name := range l.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func (l *Layout) register(name string, id grid.ID) error {
	if name == "" {
		return nil
	}
	if _, dup := l.names[name]; dup {
		return fmt.Errorf("duplicate widget name %q", name)
	}
	l.names[name] = id
	return nil
}

// Build creates a tree from d. Children are placed before expansion weights
// are applied, and the root's external size, if any, is applied last.
func Build(d *Desc) (*Layout, error) {
	l := newLayout()

	var opts []grid.ContainerOption
	if d.Name != "" {
		opts = append(opts, grid.WithName(d.Name))
	}
	root, err := l.Tree.NewContainer(grid.None, d.SelfSizing, opts...)
	if err != nil {
		return nil, err
	}
	l.Root = root
	if err := l.register(d.Name, root.ID()); err != nil {
		return nil, err
	}

	path := d.Name
	if path == "" {
		path = "root"
	}
	if err := l.populate(root, d, path); err != nil {
		return nil, err
	}

	if d.Width != nil || d.Height != nil {
		width, height := deref(d.Width, grid.Unbounded), deref(d.Height, grid.Unbounded)
		if width < 0 || height < 0 {
			return nil, fmt.Errorf("%s: size %dx%d: %w", path, width, height, grid.ErrInvalidSize)
		}
		if width != grid.Unbounded {
			root.Resize(grid.Horizontal, width)
		}
		if height != grid.Unbounded {
			root.Resize(grid.Vertical, height)
		}
	}
	debug.Log("gridfile: built %s with %d named nodes", path, len(l.names))
	return l, nil
}

// populate creates and places d's widgets inside c, then applies c's settings:
// expansion weights, propagation, and for a nested container its own
// requested size.
func (l *Layout) populate(c *grid.Container, d *Desc, path string) error {
	for i := range d.Widgets {
		w := &d.Widgets[i]
		wpath := fmt.Sprintf("%s/%s", path, w.Name)
		if w.Name == "" {
			wpath = fmt.Sprintf("%s[%d]", path, i)
		}

		sticky, err := grid.ParseSticky(w.Sticky)
		if err != nil {
			return fmt.Errorf("%s: %w", wpath, err)
		}

		var id grid.ID
		if w.IsContainer() {
			var opts []grid.ContainerOption
			if w.Name != "" {
				opts = append(opts, grid.WithName(w.Name))
			}
			inner, err := l.Tree.NewContainer(c.ID(), false, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", wpath, err)
			}
			if err := l.populate(inner, w, wpath); err != nil {
				return err
			}
			id = inner.ID()
		} else {
			var opts []grid.LeafOption
			if w.Name != "" {
				opts = append(opts, grid.WithLeafName(w.Name))
			}
			leaf, err := l.Tree.NewLeaf(c.ID(), deref(w.Width, 0), deref(w.Height, 0), opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", wpath, err)
			}
			id = leaf.ID()
		}

		if err := l.register(w.Name, id); err != nil {
			return fmt.Errorf("%s: %w", wpath, err)
		}
		if err := c.Place(id, w.Row, w.Column, grid.WithSticky(sticky)); err != nil {
			return fmt.Errorf("%s: %w", wpath, err)
		}
	}

	if len(d.ExpandColumns) > 0 {
		if err := c.ColumnConfigure(1, d.ExpandColumns...); err != nil {
			return fmt.Errorf("%s: expand_columns: %w", path, err)
		}
	}
	if len(d.ExpandRows) > 0 {
		if err := c.RowConfigure(1, d.ExpandRows...); err != nil {
			return fmt.Errorf("%s: expand_rows: %w", path, err)
		}
	}
	if d.Propagate != nil {
		c.SetPropagate(*d.Propagate)
	}
	if c.IsRoot() {
		return nil
	}

	var opts []grid.ConfigOption
	if d.Width != nil {
		opts = append(opts, grid.WithRequestedWidth(*d.Width))
	}
	if d.Height != nil {
		opts = append(opts, grid.WithRequestedHeight(*d.Height))
	}
	if len(opts) > 0 {
		if err := c.Configure(opts...); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func deref(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
