package layout

// Edges holds one value per side of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns Edges with n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
