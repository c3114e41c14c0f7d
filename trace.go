package tripaint

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gotranspile/gotrace"
)

// TraceExtractor vectorizes a thresholded bitmap with potrace and
// flattens the traced curves into closed contours. Compared to
// EdgeExtractor it follows region outlines rather than detected edges,
// which suits flat-colored inputs such as line art.
type TraceExtractor struct {
	// Threshold separates dark foreground (traced) from light
	// background on the luminance channel.
	Threshold uint8

	// CurveSteps is the number of line segments each traced Bézier
	// flattens into.
	CurveSteps int

	// MinArea drops contours whose enclosed area is at or below the
	// limit.
	MinArea float64
}

// NewTraceExtractor returns an extractor with workable defaults.
func NewTraceExtractor() *TraceExtractor {
	return &TraceExtractor{
		Threshold:  128,
		CurveSteps: 8,
		MinArea:    DefaultMinContourArea,
	}
}

// Extract implements ContourExtractor.
func (t *TraceExtractor) Extract(img image.Image) ([]Contour, error) {
	gray := Grayscale(img)
	dark := t.Threshold
	bm := gotrace.BitmapFromGray(gray, func(c color.Gray) bool {
		return c.Y < dark
	})

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return nil, fmt.Errorf("tripaint: trace: %w", err)
	}

	steps := t.CurveSteps
	if steps < 1 {
		steps = 1
	}
	// The bitmap hands potrace a bottom-up Y axis; flattening flips the
	// traced coordinates back into raster space.
	height := float64(gray.Bounds().Dy())
	var out []Contour
	for p := paths; p != nil; p = p.Next {
		c := flattenCurve(p.Curve, height, steps)
		if len(c) >= 4 && c.Area() > t.MinArea {
			out = append(out, c)
		}
	}
	return out, nil
}

// flattenCurve converts one traced loop into a closed polyline. Segment
// i ends at C[i][2]; a corner passes through its apex C[i][1], a curveto
// is a cubic Bézier with controls C[i][0] and C[i][1]. The loop starts
// where its final segment ends.
func flattenCurve(cv gotrace.Curve, height float64, steps int) Contour {
	if cv.N == 0 {
		return nil
	}

	start := tracePoint(cv.C[cv.N-1][2], height)
	c := Contour{start}
	cur := start
	for i := 0; i < cv.N; i++ {
		end := tracePoint(cv.C[i][2], height)
		if cv.Tag[i] == gotrace.POTRACE_CORNER {
			c = append(c, tracePoint(cv.C[i][1], height), end)
		} else {
			c0, c1 := tracePoint(cv.C[i][0], height), tracePoint(cv.C[i][1], height)
			for s := 1; s <= steps; s++ {
				c = append(c, cubicAt(cur, c0, c1, end, float64(s)/float64(steps)))
			}
		}
		cur = end
	}
	return c
}

func tracePoint(p gotrace.DPoint, height float64) Point {
	return Pt(p.X, height-p.Y)
}

// cubicAt evaluates a cubic Bézier at t.
func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}
