package grid

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// DumpKind selects what each cell of a Dump shows.
type DumpKind int

const (
	DumpNames DumpKind = iota
	DumpSizes
	DumpPositions
)

// ParseDumpKind accepts "names", "sizes" or "positions".
func ParseDumpKind(s string) (DumpKind, error) {
	switch s {
	case "names", "widgets":
		return DumpNames, nil
	case "sizes":
		return DumpSizes, nil
	case "positions":
		return DumpPositions, nil
	}
	return 0, fmt.Errorf("unknown dump kind %q", s)
}

// Cells returns the table as strings, one per cell. Empty cells are "-".
// Sizes print as "[w, h]" and positions as "[x, y]".
func (c *Container) Cells(kind DumpKind) [][]string {
	out := make([][]string, c.cells.rows())
	for r := range out {
		out[r] = make([]string, c.cells.columns())
		for col := range out[r] {
			out[r][col] = c.cellString(c.cells.at(r, col), kind)
		}
	}
	return out
}

func (c *Container) cellString(id ID, kind DumpKind) string {
	w := c.tree.Widget(id)
	if w == nil {
		return "-"
	}
	switch kind {
	case DumpSizes:
		return fmt.Sprintf("[%d, %d]", w.Size(Horizontal), w.Size(Vertical))
	case DumpPositions:
		return fmt.Sprintf("[%d, %d]", w.Position(Horizontal), w.Position(Vertical))
	default:
		return c.tree.Name(id)
	}
}

// Dump renders Cells as aligned text, one table row per line.
func (c *Container) Dump(kind DumpKind) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, row := range c.Cells(kind) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}
