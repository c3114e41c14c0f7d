package tripaint

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Renderer draws mesh state over a base image on a gg canvas. It owns no
// window; the shell decides where the composed image ends up.
type Renderer struct {
	ctx  *gg.Context
	base image.Image

	// LineWidth and LineColor style triangle edges.
	LineWidth float64
	LineColor color.RGBA

	// MarkerRadius and MarkerColor style interior point markers.
	MarkerRadius float64
	MarkerColor  color.RGBA
}

// NewRenderer creates a renderer the size of the base image and paints
// the base onto it.
func NewRenderer(base image.Image) *Renderer {
	b := base.Bounds()
	r := &Renderer{
		ctx:          gg.NewContext(b.Dx(), b.Dy()),
		base:         base,
		LineWidth:    1,
		LineColor:    color.RGBA{A: 255},
		MarkerRadius: 2,
		MarkerColor:  color.RGBA{R: 255, A: 255},
	}
	r.DrawBase()
	return r
}

// DrawBase repaints the source image, discarding every overlay.
func (r *Renderer) DrawBase() {
	r.ctx.DrawImage(r.base, 0, 0)
}

// StrokeSegment draws a single line segment.
func (r *Renderer) StrokeSegment(p1, p2 Point, c color.RGBA, width float64) {
	r.ctx.SetColor(c)
	r.ctx.SetLineWidth(width)
	r.ctx.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	r.ctx.Stroke()
}

func (r *Renderer) trianglePath(t Triangle) {
	r.ctx.MoveTo(t.P0.X, t.P0.Y)
	r.ctx.LineTo(t.P1.X, t.P1.Y)
	r.ctx.LineTo(t.P2.X, t.P2.Y)
	r.ctx.ClosePath()
}

// StrokeTriangle draws the three edges of t.
func (r *Renderer) StrokeTriangle(t Triangle) {
	r.ctx.SetColor(r.LineColor)
	r.ctx.SetLineWidth(r.LineWidth)
	r.trianglePath(t)
	r.ctx.Stroke()
}

// DrawWireframe strokes every triangle.
func (r *Renderer) DrawWireframe(triangles []Triangle) {
	for _, t := range triangles {
		r.StrokeTriangle(t)
	}
}

// FillTriangle fills the triangle interior and then restrokes its three
// edges so the outline stays visible through the fill.
func (r *Renderer) FillTriangle(t Triangle, c color.RGBA) {
	r.ctx.SetColor(c)
	r.trianglePath(t)
	r.ctx.Fill()
	r.StrokeTriangle(t)
}

// DrawMesh redraws the full mesh state: a wireframe for unpainted
// triangles and a fill-plus-outline for painted ones.
func (r *Renderer) DrawMesh(m *PaintableMesh) {
	for i, t := range m.Triangles() {
		if c, ok := m.Color(i); ok {
			r.FillTriangle(t, c)
		} else {
			r.StrokeTriangle(t)
		}
	}
}

// DrawPoints marks sample points with filled circles, one pass per
// point.
func (r *Renderer) DrawPoints(points []Point) {
	r.ctx.SetColor(r.MarkerColor)
	for _, p := range points {
		r.ctx.DrawCircle(p.X, p.Y, r.MarkerRadius)
		r.ctx.Fill()
	}
}

// Image returns the composed canvas.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

// SavePNG writes the composed canvas to a file.
func (r *Renderer) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}
