package tripaint

import (
	"math"
	"sort"
)

// Contour is an ordered closed boundary polyline in raster coordinates.
// Extractors deliver contours explicitly closed (first point equal to the
// last); Close normalizes contours that arrive open.
type Contour []Point

// Bounds on the resampled point count. Requests outside the range are
// clamped, not rejected.
const (
	MinResamplePoints = 3
	MaxResamplePoints = 200
)

// Closed reports whether the first and last points coincide.
func (c Contour) Closed() bool {
	return len(c) > 1 && c[0].approxEq(c[len(c)-1])
}

// Close returns the contour with the closing vertex appended if missing.
func (c Contour) Close() Contour {
	if len(c) == 0 || c.Closed() {
		return c
	}
	out := make(Contour, 0, len(c)+1)
	out = append(out, c...)
	return append(out, c[0])
}

// Vertices returns the polygon vertices without the closing duplicate.
func (c Contour) Vertices() []Point {
	if c.Closed() {
		return c[:len(c)-1]
	}
	return c
}

// Perimeter returns the total arc length, including the closing edge.
func (c Contour) Perimeter() float64 {
	cl := c.Close()
	var total float64
	for i := 1; i < len(cl); i++ {
		total += cl[i-1].Distance(cl[i])
	}
	return total
}

// Area returns the absolute shoelace area of the contour.
func (c Contour) Area() float64 {
	v := c.Vertices()
	if len(v) < 3 {
		return 0
	}
	var sum float64
	for i := range v {
		sum += v[i].Cross(v[(i+1)%len(v)])
	}
	return math.Abs(sum) / 2
}

// BoundingBox returns the axis-aligned extent of the contour.
func (c Contour) BoundingBox() (min, max Point) {
	if len(c) == 0 {
		return Point{}, Point{}
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Contains reports whether p lies inside the contour using even-odd ray
// casting: a horizontal ray cast to the right of p toggles the inside
// flag on every edge crossing. Horizontal edges never satisfy the
// y-extent check and are skipped, so no division by zero occurs.
func (c Contour) Contains(p Point) bool {
	v := c.Vertices()
	n := len(v)
	if n < 3 {
		return false
	}
	inside := false
	p1 := v[0]
	for i := 1; i <= n; i++ {
		p2 := v[i%n]
		if p.Y > math.Min(p1.Y, p2.Y) && p.Y <= math.Max(p1.Y, p2.Y) && p.X <= math.Max(p1.X, p2.X) {
			xcross := p1.X
			if p1.Y != p2.Y {
				xcross = (p.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			}
			if p1.X == p2.X || p.X <= xcross {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// Resample places k points along the contour at equal arc-length
// intervals. The first output point is the contour's first vertex; the
// rest interpolate linearly inside the segment containing each target
// distance. A zero-perimeter contour yields its first k raw vertices
// verbatim. The function is pure: same input, same output.
func (c Contour) Resample(k int) []Point {
	k = clamp(k, MinResamplePoints, MaxResamplePoints)
	cl := c.Close()
	if len(cl) < 2 {
		return append([]Point{}, cl...)
	}

	segs := len(cl) - 1
	dist := make([]float64, segs)
	cum := make([]float64, segs)
	var total float64
	for i := 0; i < segs; i++ {
		dist[i] = cl[i].Distance(cl[i+1])
		total += dist[i]
		cum[i] = total
	}
	if total == 0 {
		out := make([]Point, 0, k)
		for i := 0; i < k && i < len(cl); i++ {
			out = append(out, cl[i])
		}
		return out
	}

	spacing := total / float64(k)
	out := make([]Point, 0, k)
	out = append(out, cl[0])
	for i := 1; i < k; i++ {
		target := float64(i) * spacing
		j := sort.SearchFloat64s(cum, target)
		if j >= segs {
			j = segs - 1
		}
		var start float64
		if j > 0 {
			start = cum[j-1]
		}
		var ratio float64
		if dist[j] != 0 {
			ratio = (target - start) / dist[j]
		}
		out = append(out, cl[j].Lerp(cl[j+1], ratio))
	}
	return out
}
