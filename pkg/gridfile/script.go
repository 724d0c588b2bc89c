package gridfile

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/debug"
)

// RunScript builds a layout by running a JavaScript program. The program sees
// these functions; node arguments and results are numeric IDs, and any failing
// call throws:
//
//	root(name, selfSizing)                 -> id
//	container(parent, name)                -> id
//	leaf(parent, name, width, height)      -> id
//	place(parent, child, row, column, sticky)
//	configure(container, axis, weight, [indices])
//	propagate(container, on)
//	resize(container, width, height)
//	request(widget, width, height)
//	log(message)
//
// Exactly one root must be created.
func RunScript(src string) (*Layout, error) {
	env := &scriptEnv{layout: newLayout()}
	vm := goja.New()

	funcs := map[string]any{
		"root":      env.root,
		"container": env.container,
		"leaf":      env.leaf,
		"place":     env.place,
		"configure": env.configure,
		"propagate": env.propagate,
		"resize":    env.resize,
		"request":   env.request,
		"log":       func(msg string) { debug.Log("gridfile script: %s", msg) },
	}
	for name, fn := range funcs {
		if err := vm.Set(name, fn); err != nil {
			return nil, fmt.Errorf("script: bind %s: %w", name, err)
		}
	}

	if _, err := vm.RunString(src); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if env.layout.Root == nil {
		return nil, errors.New("script: no root container created")
	}
	return env.layout, nil
}

type scriptEnv struct {
	layout *Layout
}

func (e *scriptEnv) containerByID(id int) (*grid.Container, error) {
	c := e.layout.Tree.Container(grid.ID(id))
	if c == nil {
		return nil, fmt.Errorf("%d is not a container: %w", id, grid.ErrUnknownWidget)
	}
	return c, nil
}

func (e *scriptEnv) root(name string, selfSizing bool) (int, error) {
	if e.layout.Root != nil {
		return 0, errors.New("root already created")
	}
	c, err := e.layout.Tree.NewContainer(grid.None, selfSizing)
	if err != nil {
		return 0, err
	}
	if err := e.name(c.ID(), name); err != nil {
		return 0, err
	}
	e.layout.Root = c
	return int(c.ID()), nil
}

func (e *scriptEnv) container(parent int, name string) (int, error) {
	c, err := e.layout.Tree.NewContainer(grid.ID(parent), false)
	if err != nil {
		return 0, err
	}
	if err := e.name(c.ID(), name); err != nil {
		return 0, err
	}
	return int(c.ID()), nil
}

func (e *scriptEnv) leaf(parent int, name string, width, height int) (int, error) {
	l, err := e.layout.Tree.NewLeaf(grid.ID(parent), width, height)
	if err != nil {
		return 0, err
	}
	if err := e.name(l.ID(), name); err != nil {
		return 0, err
	}
	return int(l.ID()), nil
}

func (e *scriptEnv) name(id grid.ID, name string) error {
	if name == "" {
		return nil
	}
	if err := e.layout.register(name, id); err != nil {
		return err
	}
	return e.layout.Tree.SetName(id, name)
}

func (e *scriptEnv) place(parent, child, row, column int, sticky string) error {
	c, err := e.containerByID(parent)
	if err != nil {
		return err
	}
	st, err := grid.ParseSticky(sticky)
	if err != nil {
		return err
	}
	return c.Place(grid.ID(child), row, column, grid.WithSticky(st))
}

func (e *scriptEnv) configure(container int, axis string, weight int, indices []int) error {
	c, err := e.containerByID(container)
	if err != nil {
		return err
	}
	a, err := grid.ParseAxis(axis)
	if err != nil {
		return err
	}
	return c.ConfigureExpansion(a, weight, indices...)
}

func (e *scriptEnv) propagate(container int, on bool) error {
	c, err := e.containerByID(container)
	if err != nil {
		return err
	}
	c.SetPropagate(on)
	return nil
}

func (e *scriptEnv) resize(container, width, height int) error {
	c, err := e.containerByID(container)
	if err != nil {
		return err
	}
	return c.SetSize(width, height)
}

func (e *scriptEnv) request(id, width, height int) error {
	opts := []grid.ConfigOption{grid.WithRequestedWidth(width), grid.WithRequestedHeight(height)}
	switch w := e.layout.Tree.Widget(grid.ID(id)).(type) {
	case *grid.Leaf:
		return w.Configure(opts...)
	case *grid.Container:
		return w.Configure(opts...)
	}
	return fmt.Errorf("%d: %w", id, grid.ErrUnknownWidget)
}
