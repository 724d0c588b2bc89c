package grid

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-grid/pkg/layout"
)

// Sticky records which edges of its cell a widget clings to. The engine always
// assigns a widget its whole cell; Sticky is carried for the rendering side,
// which uses Align to decide where the widget's content sits inside that cell.
type Sticky uint8

const (
	North Sticky = 1 << iota
	South
	East
	West
)

// ParseSticky parses a combination of the letters n, s, e and w in any order
// and case. The empty string means no sticky edges.
func ParseSticky(s string) (Sticky, error) {
	var st Sticky
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'n':
			st |= North
		case 's':
			st |= South
		case 'e':
			st |= East
		case 'w':
			st |= West
		case ' ', ',':
		default:
			return 0, fmt.Errorf("invalid sticky %q: unexpected %q", s, r)
		}
	}
	return st, nil
}

// String returns the flags in "nsew" order.
func (s Sticky) String() string {
	var b strings.Builder
	if s&North != 0 {
		b.WriteByte('n')
	}
	if s&South != 0 {
		b.WriteByte('s')
	}
	if s&East != 0 {
		b.WriteByte('e')
	}
	if s&West != 0 {
		b.WriteByte('w')
	}
	return b.String()
}

// Align places a box of the requested size inside cell. Sticking to both
// opposite edges stretches the box across the cell on that axis, sticking to
// only the east or south edge pins it there, and otherwise it sits at the
// west or north edge. The result never exceeds cell.
func (s Sticky) Align(cell layout.Rect, width, height int) layout.Rect {
	x, w := alignSpan(cell.X, cell.Width, width, s&West != 0, s&East != 0)
	y, h := alignSpan(cell.Y, cell.Height, height, s&North != 0, s&South != 0)
	return layout.NewRect(x, y, w, h)
}

func alignSpan(start, avail, want int, low, high bool) (int, int) {
	if low && high {
		return start, avail
	}
	want = min(want, avail)
	if high && !low {
		return start + avail - want, want
	}
	return start, want
}
