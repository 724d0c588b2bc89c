// Package snapshot draws a laid-out grid tree to a PNG image.
//
// It stands in for the rendering layer the engine leaves out: every
// container is outlined, every leaf's cell is shaded, and the leaf's
// content box, aligned inside the cell by its sticky edges, is drawn on top
// with its name.
package snapshot

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/pkg/layout"
)

// DefaultScale is the number of pixels per layout unit.
const DefaultScale = 8

// Renderer paints one tree onto a gg context.
type Renderer struct {
	context *gg.Context
	tree    *grid.Tree
	scale   int
	origin  layout.Rect
}

// NewRenderer sizes a canvas to root's assigned rectangle. Unbounded axes use
// the root's requirement. scale <= 0 selects DefaultScale.
func NewRenderer(tree *grid.Tree, root *grid.Container, scale int) (*Renderer, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	origin := tree.Rect(root.ID())
	if origin.IsEmpty() {
		return nil, fmt.Errorf("snapshot: %s has no area", tree.Name(root.ID()))
	}
	px := origin.Scale(scale)
	return &Renderer{
		context: gg.NewContext(px.Width+1, px.Height+1),
		tree:    tree,
		scale:   scale,
		origin:  origin,
	}, nil
}

// Render paints root and everything below it.
func (r *Renderer) Render(root *grid.Container) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	r.drawContainer(root, r.origin, 0)
}

// EncodePNG writes the canvas as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

// SavePNG writes the canvas to path.
func (r *Renderer) SavePNG(path string) error {
	if err := r.context.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	debug.Log("snapshot: wrote %s", path)
	return nil
}

// toCanvas maps a layout rectangle to canvas pixels relative to the root.
func (r *Renderer) toCanvas(rect layout.Rect) layout.Rect {
	return rect.Translate(-r.origin.X, -r.origin.Y).Scale(r.scale)
}

// drawContainer paints c and its children. Everything is clipped to clip, the
// visible part of c's ancestors.
func (r *Renderer) drawContainer(c *grid.Container, clip layout.Rect, depth int) {
	clip = r.tree.Rect(c.ID()).Intersect(clip)
	if clip.IsEmpty() {
		return
	}
	box := r.toCanvas(clip)
	r.context.SetRGB(0.2, 0.2, 0.2)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(float64(box.X)+0.5, float64(box.Y)+0.5, float64(box.Width), float64(box.Height))
	r.context.Stroke()

	for _, id := range c.Children() {
		if inner := r.tree.Container(id); inner != nil {
			r.drawContainer(inner, clip, depth+1)
			continue
		}
		r.drawLeaf(id, clip, depth)
	}
}

func (r *Renderer) drawLeaf(id grid.ID, clip layout.Rect, depth int) {
	w := r.tree.Widget(id)
	cellRect := r.tree.Rect(id).Intersect(clip)
	if cellRect.IsEmpty() {
		return
	}

	cell := r.toCanvas(cellRect)
	shade := 0.92 - 0.06*float64(depth%4)
	r.context.SetRGB(shade, shade, 1)
	r.context.DrawRectangle(float64(cell.X), float64(cell.Y), float64(cell.Width), float64(cell.Height))
	r.context.Fill()

	content := r.tree.Sticky(id).Align(cellRect, w.RequestedSize(grid.Horizontal), w.RequestedSize(grid.Vertical))
	box := r.toCanvas(content).Inset(layout.EdgeAll(1))
	r.context.SetRGB(0.35, 0.55, 0.85)
	r.context.DrawRectangle(float64(box.X), float64(box.Y), float64(box.Width), float64(box.Height))
	r.context.Fill()

	r.context.SetRGB(0, 0, 0)
	cx := float64(cell.X) + float64(cell.Width)/2
	cy := float64(cell.Y) + float64(cell.Height)/2
	r.context.DrawStringAnchored(r.tree.Name(id), cx, cy, 0.5, 0.5)
}
