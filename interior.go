package tripaint

import "math"

// interiorMinStep is the smallest lattice spacing in pixels. It caps the
// candidate count for small shapes regardless of density.
const interiorMinStep = 5.0

// InteriorPoints generates a roughly uniform set of points strictly
// inside the polygon described by boundary. Candidates come from a
// lattice over the polygon's bounding box with a per-axis step of
// max(extent/density, interiorMinStep); a candidate survives only if it
// falls inside the raster and inside the polygon. The bounding-box
// centroid is tested and appended separately, so it may duplicate a
// lattice point. density is clamped to the documented range.
func InteriorPoints(boundary []Point, width, height, density int) []Point {
	if len(boundary) < 3 {
		return nil
	}
	density = clamp(density, MinInteriorDensity, MaxInteriorDensity)

	poly := Contour(boundary)
	min, max := poly.BoundingBox()
	stepX := math.Max((max.X-min.X)/float64(density), interiorMinStep)
	stepY := math.Max((max.Y-min.Y)/float64(density), interiorMinStep)

	var pts []Point
	for y := min.Y + stepY; y < max.Y; y += stepY {
		for x := min.X + stepX; x < max.X; x += stepX {
			p := Pt(x, y)
			if inRaster(p, width, height) && poly.Contains(p) {
				pts = append(pts, p)
			}
		}
	}

	center := Pt((min.X+max.X)/2, (min.Y+max.Y)/2)
	if inRaster(center, width, height) && poly.Contains(center) {
		pts = append(pts, center)
	}
	return pts
}

// inRaster reports whether p lies inside the raster's pixel grid.
func inRaster(p Point, width, height int) bool {
	return p.X >= 0 && p.X < float64(width) && p.Y >= 0 && p.Y < float64(height)
}
