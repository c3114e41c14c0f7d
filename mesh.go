package tripaint

// Triangle is one mesh cell. Vertex order follows triangulation output
// and carries no winding guarantee.
type Triangle struct {
	P0, P1, P2 Point
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Point {
	return Pt((t.P0.X+t.P1.X+t.P2.X)/3, (t.P0.Y+t.P1.Y+t.P2.Y)/3)
}

// Contains reports whether p lies inside the triangle by comparing the
// signs of the three edge cross products. A zero sign (p exactly on an
// edge) counts as inside.
func (t Triangle) Contains(p Point) bool {
	d1 := triSign(p, t.P0, t.P1)
	d2 := triSign(p, t.P1, t.P2)
	d3 := triSign(p, t.P2, t.P0)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func triSign(p1, p2, p3 Point) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// inBounds reports whether p lies inside [0,width] x [0,height], both
// ends inclusive.
func inBounds(p Point, width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= float64(width) && p.Y <= float64(height)
}

// BuildMesh triangulates boundary ∪ interior and keeps the triangles
// that belong to the source shape: every vertex inside the raster and
// the centroid inside the boundary polygon. Only the centroid is tested,
// not the full triangle extent, so a triangle straddling a concave
// stretch of boundary may be kept; this mirrors the reference behavior
// and is intentional.
//
// Degenerate input — fewer than three distinct points, or a collinear
// point set the triangulation cannot handle — contributes an empty
// triangle list, never an error: one bad contour must not take down the
// rest of the image.
func BuildMesh(boundary, interior []Point, width, height int) []Triangle {
	if len(boundary) < 3 {
		return nil
	}
	points := dedupePoints(boundary, interior)
	if len(points) < 3 {
		return nil
	}

	d := NewDelaunay(float64(width), float64(height))
	if err := d.Insert(points); err != nil {
		logger().Warn("triangulation failed", "points", len(points), "err", err)
		return nil
	}

	poly := Contour(boundary)
	var kept []Triangle
	for _, t := range d.Triangles() {
		if !inBounds(t.P0, width, height) ||
			!inBounds(t.P1, width, height) ||
			!inBounds(t.P2, width, height) {
			continue
		}
		if poly.Contains(t.Centroid()) {
			kept = append(kept, t)
		}
	}
	return kept
}

// dedupePoints concatenates the point sets and drops exact duplicates;
// the interior generator can emit the bounding-box centroid on top of a
// lattice point.
func dedupePoints(boundary, interior []Point) []Point {
	out := make([]Point, 0, len(boundary)+len(interior))
	seen := make(map[Point]struct{}, len(boundary)+len(interior))
	for _, set := range [2][]Point{boundary, interior} {
		for _, p := range set {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
