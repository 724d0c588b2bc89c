package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/pkg/gridfile"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// runLayout implements the layout subcommand.
func runLayout(args []string, out io.Writer) error {
	fs, logPath := newFlagSet("layout", out)
	what := fs.String("what", "names", "cell contents: names, sizes or positions")
	fit := fs.Bool("fit", false, "size the root to the terminal before printing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := startDebug(*logPath); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("layout takes exactly one file")
	}

	kind, err := grid.ParseDumpKind(*what)
	if err != nil {
		return err
	}
	l, err := gridfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *fit {
		width, height := terminalSize()
		if err := l.Root.SetSize(width, height); err != nil {
			return err
		}
	}

	fmt.Fprint(out, renderTables(l.Tree, l.Root, kind))
	return nil
}

// renderTables prints c's table followed by the table of every nested
// container, depth first.
func renderTables(tree *grid.Tree, c *grid.Container, kind grid.DumpKind) string {
	var b strings.Builder
	var walk func(c *grid.Container)
	walk = func(c *grid.Container) {
		r := tree.Rect(c.ID())
		fmt.Fprintf(&b, "%s %dx%d at (%d, %d)%s\n",
			headingStyle.Render(tree.Name(c.ID())), r.Width, r.Height, r.X, r.Y, containerFlags(c))
		if c.Rows() == 0 {
			b.WriteString("(empty)\n\n")
		} else {
			t := table.New().Border(lipgloss.NormalBorder()).Rows(c.Cells(kind)...)
			b.WriteString(t.String())
			b.WriteString("\n\n")
		}
		for _, id := range c.Children() {
			if inner := tree.Container(id); inner != nil {
				walk(inner)
			}
		}
	}
	walk(c)
	return b.String()
}

// containerFlags describes the settings that change how c is sized.
func containerFlags(c *grid.Container) string {
	var flags []string
	if c.IsRoot() && c.SelfSizing() {
		flags = append(flags, "self-sizing")
	}
	if !c.Propagate() {
		flags = append(flags, "fixed")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}
