package tripaint

import "image/color"

// PaintableMesh holds the triangle list for one image together with a
// sparse color assignment: absence of an index means "unpainted".
// Methods are not safe for concurrent use; the interactive shell drives
// the mesh from a single input stream.
type PaintableMesh struct {
	width, height int
	triangles     []Triangle
	colors        map[int]color.RGBA
}

// NewPaintableMesh creates an empty mesh for a width x height raster.
func NewPaintableMesh(width, height int) *PaintableMesh {
	return &PaintableMesh{
		width:  width,
		height: height,
		colors: make(map[int]color.RGBA),
	}
}

// Rebuild runs the full pipeline for every contour — boundary
// resampling, interior generation, triangulation, containment filtering —
// and replaces the mesh wholesale. Contours are processed independently
// and their triangles concatenated in input order with contiguous
// indices. Indices restart at zero and the previous color assignment is
// discarded unconditionally, even when the parameters did not change.
func (m *PaintableMesh) Rebuild(params Parameters, contours []Contour) {
	params = params.Clamp()

	var triangles []Triangle
	for i, c := range contours {
		boundary := c.Resample(params.ContourPoints)
		if len(boundary) < 3 {
			logger().Debug("contour skipped", "contour", i, "points", len(boundary))
			continue
		}
		interior := InteriorPoints(boundary, m.width, m.height, params.InteriorDensity)
		triangles = append(triangles, BuildMesh(boundary, interior, m.width, m.height)...)
	}

	m.triangles = triangles
	m.colors = make(map[int]color.RGBA)
}

// HitTest scans triangles in index order and returns the index of the
// first one containing p. Overlapping triangles resolve to the lowest
// index; points exactly on an edge count as inside.
func (m *PaintableMesh) HitTest(p Point) (int, bool) {
	for i, t := range m.triangles {
		if t.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Paint assigns a color to triangle i, overwriting any previous color.
// Out-of-range indices are ignored.
func (m *PaintableMesh) Paint(i int, c color.RGBA) {
	if i < 0 || i >= len(m.triangles) {
		return
	}
	m.colors[i] = c
}

// Reset clears every color assignment and leaves the mesh untouched.
func (m *PaintableMesh) Reset() {
	m.colors = make(map[int]color.RGBA)
}

// Color returns the assigned color of triangle i, if painted.
func (m *PaintableMesh) Color(i int) (color.RGBA, bool) {
	c, ok := m.colors[i]
	return c, ok
}

// Painted returns the number of painted triangles.
func (m *PaintableMesh) Painted() int {
	return len(m.colors)
}

// Len returns the triangle count.
func (m *PaintableMesh) Len() int {
	return len(m.triangles)
}

// Triangle returns the triangle at index i.
func (m *PaintableMesh) Triangle(i int) Triangle {
	return m.triangles[i]
}

// Triangles returns the mesh in build order. The slice is shared with
// the mesh; treat it as read-only.
func (m *PaintableMesh) Triangles() []Triangle {
	return m.triangles
}
