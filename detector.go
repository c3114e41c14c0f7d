package tripaint

import (
	"fmt"
	"image"

	stackblur "github.com/esimov/stackblur-go"
)

// ContourExtractor turns a raster into closed boundary polylines in the
// raster's coordinate space. The pipeline treats extraction as opaque:
// any backend returning closed contours can drive the mesh.
type ContourExtractor interface {
	Extract(img image.Image) ([]Contour, error)
}

// DefaultMinContourArea filters out specks too small to be worth
// coloring.
const DefaultMinContourArea = 1000.0

// EdgeExtractor finds object boundaries with a blur → grayscale → Sobel
// chain and follows the resulting edge pixels into closed contours.
type EdgeExtractor struct {
	// BlurRadius smooths noise ahead of edge detection. Zero disables
	// the blur.
	BlurRadius int

	// SobelThreshold is the minimum gradient magnitude for a pixel to
	// count as an edge.
	SobelThreshold float64

	// MinArea drops contours whose enclosed area is at or below the
	// limit.
	MinArea float64
}

// NewEdgeExtractor returns an extractor with the defaults the
// interactive session uses.
func NewEdgeExtractor() *EdgeExtractor {
	return &EdgeExtractor{
		BlurRadius:     4,
		SobelThreshold: 48,
		MinArea:        DefaultMinContourArea,
	}
}

// Extract implements ContourExtractor.
func (e *EdgeExtractor) Extract(img image.Image) ([]Contour, error) {
	src := ImgToNRGBA(img)
	if e.BlurRadius > 0 {
		blurred, err := stackblur.Process(src, uint32(e.BlurRadius))
		if err != nil {
			return nil, fmt.Errorf("tripaint: blur: %w", err)
		}
		src = blurred
	}
	edges := SobelFilter(Grayscale(src), e.SobelThreshold)
	contours := followBorders(maskFromGray(edges, 1))
	return filterContours(contours, e.MinArea), nil
}

// filterContours keeps contours whose shoelace area exceeds minArea.
func filterContours(contours []Contour, minArea float64) []Contour {
	var out []Contour
	for _, c := range contours {
		if c.Area() > minArea {
			out = append(out, c)
		}
	}
	return out
}

// bitmask is a binary image used by border following.
type bitmask struct {
	w, h int
	bits []bool
}

func newBitmask(w, h int) *bitmask {
	return &bitmask{w: w, h: h, bits: make([]bool, w*h)}
}

func (m *bitmask) get(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h && m.bits[y*m.w+x]
}

func (m *bitmask) set(x, y int) {
	m.bits[y*m.w+x] = true
}

// maskFromGray marks every pixel at or above the threshold.
func maskFromGray(src *image.Gray, threshold uint8) *bitmask {
	b := src.Bounds()
	m := newBitmask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)] >= threshold {
				m.set(x, y)
			}
		}
	}
	return m
}

// moore8 lists the 8-neighbourhood clockwise starting east.
var moore8 = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func mooreDir(dx, dy int) int {
	for i, v := range moore8 {
		if v[0] == dx && v[1] == dy {
			return i
		}
	}
	return 0
}

// followBorders traces the outer boundary of every 8-connected region of
// set pixels, in scan order, each region exactly once.
func followBorders(m *bitmask) []Contour {
	visited := newBitmask(m.w, m.h)
	var out []Contour
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.get(x, y) || visited.get(x, y) {
				continue
			}
			out = append(out, traceBoundary(m, x, y))
			markRegion(m, visited, x, y)
		}
	}
	return out
}

// traceBoundary walks the outer border of one region using
// Moore-neighbour tracing. The start pixel must be the first set pixel
// of its region in scan order, which guarantees its west neighbour is
// clear.
func traceBoundary(m *bitmask, sx, sy int) Contour {
	contour := Contour{Pt(float64(sx), float64(sy))}

	cur := image.Point{X: sx, Y: sy}
	back := image.Point{X: sx - 1, Y: sy}
	maxSteps := 4 * m.w * m.h

	for step := 0; step < maxSteps; step++ {
		dir := mooreDir(back.X-cur.X, back.Y-cur.Y)
		prev := back
		found := false
		for i := 1; i <= 8; i++ {
			d := (dir + i) % 8
			n := image.Point{X: cur.X + moore8[d][0], Y: cur.Y + moore8[d][1]}
			if m.get(n.X, n.Y) {
				back = prev
				cur = n
				found = true
				break
			}
			prev = n
		}
		if !found || (cur.X == sx && cur.Y == sy) {
			break
		}
		contour = append(contour, Pt(float64(cur.X), float64(cur.Y)))
	}
	return contour.Close()
}

// markRegion flood-fills the 8-connected region containing (x, y) into
// visited.
func markRegion(m, visited *bitmask, x, y int) {
	stack := [][2]int{{x, y}}
	visited.set(x, y)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range moore8 {
			nx, ny := p[0]+v[0], p[1]+v[1]
			if m.get(nx, ny) && !visited.get(nx, ny) {
				visited.set(nx, ny)
				stack = append(stack, [2]int{nx, ny})
			}
		}
	}
}
