package grid

import "fmt"

// Axis selects the dimension a negotiation pass works on. Horizontal passes
// walk columns and assign widths and x coordinates; vertical passes walk rows
// and assign heights and y coordinates.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Axes lists both axes in the order a full negotiation runs them.
var Axes = [...]Axis{Horizontal, Vertical}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseAxis accepts the names used by layout files: "x", "column", "columns"
// and "horizontal" for Horizontal; "y", "row", "rows" and "vertical" for Vertical.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "column", "columns", "horizontal":
		return Horizontal, nil
	case "y", "row", "rows", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}
