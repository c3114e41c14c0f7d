package tripaint

import (
	"math/rand"
	"testing"
)

func TestDelaunayQuad(t *testing.T) {
	d := NewDelaunay(100, 100)
	pts := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
	if err := d.Insert(pts); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	tris := d.Triangles()
	if len(tris) != 2 {
		t.Fatalf("got %d triangles for a quad, want 2", len(tris))
	}
	for _, tri := range tris {
		for _, v := range []Point{tri.P0, tri.P1, tri.P2} {
			if !containsPoint(pts, v) {
				t.Errorf("triangle vertex %v is not an inserted point", v)
			}
		}
	}
}

func TestDelaunayEmptyCircumcircle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pts := make([]Point, 40)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*500, rng.Float64()*500)
	}

	d := NewDelaunay(500, 500)
	if err := d.Insert(pts); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	tris := d.Triangles()
	if len(tris) == 0 {
		t.Fatal("no triangles produced")
	}
	for i, tri := range tris {
		dt, err := newDelaunayTriangle(tri.P0, tri.P1, tri.P2)
		if err != nil {
			t.Fatalf("triangle %d degenerate: %v", i, err)
		}
		for _, p := range pts {
			if dt.hasVertex(p) {
				continue
			}
			dx, dy := dt.circle.x-p.X, dt.circle.y-p.Y
			if dx*dx+dy*dy < dt.circle.rr-1e-6 {
				t.Errorf("point %v strictly inside circumcircle of triangle %d", p, i)
			}
		}
	}
}

func TestDelaunayDuplicatePoints(t *testing.T) {
	d := NewDelaunay(100, 100)
	pts := []Point{Pt(10, 10), Pt(90, 10), Pt(50, 90), Pt(10, 10), Pt(50, 90)}
	if err := d.Insert(pts); err != nil {
		t.Fatalf("Insert with duplicates: %v", err)
	}
	if got := len(d.Triangles()); got != 1 {
		t.Errorf("got %d triangles, want 1", got)
	}
}

func TestDelaunayCollinear(t *testing.T) {
	d := NewDelaunay(100, 100)
	pts := []Point{Pt(10, 50), Pt(30, 50), Pt(50, 50), Pt(70, 50), Pt(90, 50)}
	if err := d.Insert(pts); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	// Every triangle over collinear points touches a seed corner, so the
	// stripped output is empty.
	if got := len(d.Triangles()); got != 0 {
		t.Errorf("got %d triangles for collinear input, want 0", got)
	}
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q.approxEq(p) {
			return true
		}
	}
	return false
}
