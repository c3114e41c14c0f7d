package tripaint

import "testing"

func TestInteriorPointsSquare(t *testing.T) {
	boundary := []Point(square(100).Vertices())
	pts := InteriorPoints(boundary, 200, 200, 2)
	if len(pts) == 0 {
		t.Fatal("no interior points generated")
	}

	poly := Contour(boundary)
	for _, p := range pts {
		if !poly.Contains(p) {
			t.Errorf("point %v outside polygon", p)
		}
		if p.X <= 0 || p.X >= 100 || p.Y <= 0 || p.Y >= 100 {
			t.Errorf("point %v not strictly inside bounding box", p)
		}
	}

	// Density 2 over a 100px square gives a 50px step: a single lattice
	// point plus the bounding-box centroid, both at the center.
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	for _, p := range pts {
		if !p.approxEq(Pt(50, 50)) {
			t.Errorf("point %v, want (50,50)", p)
		}
	}
}

func TestInteriorPointsDensity(t *testing.T) {
	boundary := []Point(square(100).Vertices())
	low := InteriorPoints(boundary, 200, 200, 2)
	high := InteriorPoints(boundary, 200, 200, 10)
	if len(high) <= len(low) {
		t.Errorf("density 10 generated %d points, density 2 generated %d", len(high), len(low))
	}
}

func TestInteriorPointsRasterClipping(t *testing.T) {
	boundary := []Point(square(100).Vertices())
	pts := InteriorPoints(boundary, 40, 200, 8)
	for _, p := range pts {
		if p.X >= 40 {
			t.Errorf("point %v beyond raster width 40", p)
		}
	}
}

func TestInteriorPointsDegenerate(t *testing.T) {
	if pts := InteriorPoints([]Point{Pt(0, 0), Pt(10, 10)}, 100, 100, 8); pts != nil {
		t.Errorf("got %d points for a 2-point boundary, want none", len(pts))
	}
}

func TestInteriorPointsDensityClamp(t *testing.T) {
	boundary := []Point(square(100).Vertices())
	a := InteriorPoints(boundary, 200, 200, 0)
	b := InteriorPoints(boundary, 200, 200, MinInteriorDensity)
	if len(a) != len(b) {
		t.Errorf("density 0 generated %d points, clamped density %d", len(a), len(b))
	}
}

func TestInteriorPointsMinStep(t *testing.T) {
	// A tiny 8px shape at max density still uses the 5px floor, so at
	// most one lattice row and column fit.
	boundary := []Point{Pt(0, 0), Pt(8, 0), Pt(8, 8), Pt(0, 8)}
	pts := InteriorPoints(boundary, 100, 100, MaxInteriorDensity)
	if len(pts) > 2 {
		t.Errorf("got %d points, want at most lattice point plus centroid", len(pts))
	}
}
