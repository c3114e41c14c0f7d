package tripaint

import (
	"errors"
	"math"
)

var errDegenerate = errors.New("tripaint: degenerate triangulation input")

type circumcircle struct {
	x, y, rr float64 // center and squared radius
}

type delaunayTriangle struct {
	p0, p1, p2 Point
	circle     circumcircle
}

type delaunayEdge struct {
	a, b Point
}

func (e delaunayEdge) eq(o delaunayEdge) bool {
	return e.a.approxEq(o.a) && e.b.approxEq(o.b) ||
		e.a.approxEq(o.b) && e.b.approxEq(o.a)
}

func newDelaunayTriangle(p0, p1, p2 Point) (delaunayTriangle, error) {
	ax, ay := p1.X-p0.X, p1.Y-p0.Y
	bx, by := p2.X-p0.X, p2.Y-p0.Y
	det := 2 * (ax*by - ay*bx)
	if math.Abs(det) < 1e-12 {
		return delaunayTriangle{}, errDegenerate
	}
	m := p1.X*p1.X - p0.X*p0.X + p1.Y*p1.Y - p0.Y*p0.Y
	u := p2.X*p2.X - p0.X*p0.X + p2.Y*p2.Y - p0.Y*p0.Y
	cx := ((p2.Y-p0.Y)*m + (p0.Y-p1.Y)*u) / det
	cy := ((p0.X-p2.X)*m + (p1.X-p0.X)*u) / det
	dx, dy := p0.X-cx, p0.Y-cy
	return delaunayTriangle{
		p0: p0, p1: p1, p2: p2,
		circle: circumcircle{x: cx, y: cy, rr: dx*dx + dy*dy},
	}, nil
}

func (t delaunayTriangle) circumcircleContains(p Point) bool {
	dx, dy := t.circle.x-p.X, t.circle.y-p.Y
	return dx*dx+dy*dy < t.circle.rr
}

func (t delaunayTriangle) edges() [3]delaunayEdge {
	return [3]delaunayEdge{{t.p0, t.p1}, {t.p1, t.p2}, {t.p2, t.p0}}
}

func (t delaunayTriangle) hasVertex(p Point) bool {
	return t.p0.approxEq(p) || t.p1.approxEq(p) || t.p2.approxEq(p)
}

// Delaunay builds a triangulation incrementally over a raster of the
// given size. Two seed triangles span a rectangle expanded past the
// raster; Triangles strips everything attached to the seed corners, so
// the result is a Delaunay triangulation of the inserted points alone:
// no inserted point lies strictly inside the circumcircle of any
// returned triangle.
type Delaunay struct {
	seeds     [4]Point
	triangles []delaunayTriangle
}

// NewDelaunay prepares a triangulation covering a width x height raster.
func NewDelaunay(width, height float64) *Delaunay {
	m := math.Max(width, height) + 1
	p0 := Pt(-m, -m)
	p1 := Pt(width+m, -m)
	p2 := Pt(width+m, height+m)
	p3 := Pt(-m, height+m)

	t0, _ := newDelaunayTriangle(p0, p1, p2)
	t1, _ := newDelaunayTriangle(p0, p2, p3)
	return &Delaunay{
		seeds:     [4]Point{p0, p1, p2, p3},
		triangles: []delaunayTriangle{t0, t1},
	}
}

// Insert adds the points one at a time. Points coinciding with an
// existing vertex are skipped. Numerically degenerate cavities surface
// as an error and leave the triangulation unusable; callers treat that
// as an empty contribution.
func (d *Delaunay) Insert(points []Point) error {
	for _, p := range points {
		if err := d.insert(p); err != nil {
			return err
		}
	}
	return nil
}

func (d *Delaunay) insert(p Point) error {
	for _, t := range d.triangles {
		if t.hasVertex(p) {
			return nil
		}
	}

	// Carve out the cavity of triangles whose circumcircle contains p.
	// Edges shared by two removed triangles are interior to the cavity
	// and cancel; the survivors form the cavity boundary.
	var cavity []delaunayEdge
	kept := make([]delaunayTriangle, 0, len(d.triangles))
	for _, t := range d.triangles {
		if t.circumcircleContains(p) {
			for _, e := range t.edges() {
				cavity = toggleEdge(cavity, e)
			}
		} else {
			kept = append(kept, t)
		}
	}

	for _, e := range cavity {
		nt, err := newDelaunayTriangle(e.a, e.b, p)
		if err != nil {
			return err
		}
		kept = append(kept, nt)
	}
	d.triangles = kept
	return nil
}

func toggleEdge(edges []delaunayEdge, e delaunayEdge) []delaunayEdge {
	for i, o := range edges {
		if e.eq(o) {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return append(edges, e)
}

// Triangles returns the triangulation with seed-attached triangles
// removed, in insertion-driven construction order.
func (d *Delaunay) Triangles() []Triangle {
	out := make([]Triangle, 0, len(d.triangles))
	for _, t := range d.triangles {
		if d.touchesSeed(t) {
			continue
		}
		out = append(out, Triangle{P0: t.p0, P1: t.p1, P2: t.p2})
	}
	return out
}

func (d *Delaunay) touchesSeed(t delaunayTriangle) bool {
	for _, s := range d.seeds {
		if t.hasVertex(s) {
			return true
		}
	}
	return false
}
