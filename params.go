package tripaint

import "golang.org/x/exp/constraints"

// Parameter bounds mirror the interactive density sliders: coarse enough
// to stay responsive, fine enough to follow a boundary.
const (
	MinContourPoints   = 10
	MaxContourPoints   = 100
	MinInteriorDensity = 2
	MaxInteriorDensity = 20

	DefaultContourPoints   = 30
	DefaultInteriorDensity = 8
)

// Parameters control mesh density. Any change invalidates the current
// mesh and its color assignment; triangle indices are not comparable
// across rebuilds.
type Parameters struct {
	// ContourPoints is the number of equally spaced points placed on
	// each boundary contour.
	ContourPoints int

	// InteriorDensity controls the interior lattice resolution per axis.
	InteriorDensity int
}

// DefaultParameters returns the densities a fresh session starts with.
func DefaultParameters() Parameters {
	return Parameters{
		ContourPoints:   DefaultContourPoints,
		InteriorDensity: DefaultInteriorDensity,
	}
}

// Clamp snaps out-of-range values to the nearest documented bound.
func (p Parameters) Clamp() Parameters {
	p.ContourPoints = clamp(p.ContourPoints, MinContourPoints, MaxContourPoints)
	p.InteriorDensity = clamp(p.InteriorDensity, MinInteriorDensity, MaxInteriorDensity)
	return p
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
