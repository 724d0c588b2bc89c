package grid

import "slices"

// cellTable is the sparse row/column grid of a container. It is always
// rectangular and only ever grows: clearing a cell leaves the slot in place so
// surviving widgets keep their indices.
type cellTable struct {
	cells [][]ID // cells[row][column]
	width int    // number of columns in every row
}

func (t *cellTable) rows() int    { return len(t.cells) }
func (t *cellTable) columns() int { return t.width }

// lines returns the number of columns (Horizontal) or rows (Vertical).
func (t *cellTable) lines(axis Axis) int {
	if axis == Horizontal {
		return t.columns()
	}
	return t.rows()
}

// grow extends the table with empty slots until (row, column) is in range.
func (t *cellTable) grow(row, column int) {
	if column >= t.width {
		for i := range t.cells {
			t.cells[i] = append(t.cells[i], make([]ID, column+1-t.width)...)
		}
		t.width = column + 1
	}
	for len(t.cells) <= row {
		t.cells = append(t.cells, make([]ID, t.width))
	}
}

// at returns the occupant of (row, column), or None when empty or out of range.
func (t *cellTable) at(row, column int) ID {
	if row < 0 || row >= len(t.cells) || column < 0 || column >= t.width {
		return None
	}
	return t.cells[row][column]
}

func (t *cellTable) set(row, column int, id ID) {
	t.grow(row, column)
	t.cells[row][column] = id
}

// find returns the cell holding id.
func (t *cellTable) find(id ID) (row, column int, ok bool) {
	for r, cells := range t.cells {
		if c := slices.Index(cells, id); c >= 0 {
			return r, c, true
		}
	}
	return 0, 0, false
}

func (t *cellTable) contains(id ID) bool {
	_, _, ok := t.find(id)
	return ok
}

// clear empties the slot holding id and reports whether one was found.
func (t *cellTable) clear(id ID) bool {
	r, c, ok := t.find(id)
	if ok {
		t.cells[r][c] = None
	}
	return ok
}

// row returns a copy of row i, empty slots included.
func (t *cellTable) row(i int) []ID {
	if i < 0 || i >= len(t.cells) {
		return nil
	}
	return slices.Clone(t.cells[i])
}

// column returns a copy of column j, empty slots included.
func (t *cellTable) column(j int) []ID {
	if j < 0 || j >= t.width {
		return nil
	}
	out := make([]ID, len(t.cells))
	for i, cells := range t.cells {
		out[i] = cells[j]
	}
	return out
}

// line returns column i for Horizontal and row i for Vertical.
func (t *cellTable) line(axis Axis, i int) []ID {
	if axis == Horizontal {
		return t.column(i)
	}
	return t.row(i)
}
