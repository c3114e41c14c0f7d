/*
Package tripaint turns a raster image into an interactively paintable
triangle mesh. Contours are extracted from the image, resampled to
evenly spaced boundary points, filled with an interior point lattice and
triangulated with a Delaunay pass; the resulting mesh can be hit-tested
and painted triangle by triangle.

The package provides a command line utility for batch rendering.
Check the supported commands by typing:

	$ tripaint --help

Example of an interactive session driving clicks against the mesh:

	package main

	import (
		"fmt"
		"image"
		"os"

		"github.com/mzelazko/tripaint"
	)

	func main() {
		f, err := os.Open("input.png")
		if err != nil {
			fmt.Println(err)
			return
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			fmt.Println(err)
			return
		}

		s, err := tripaint.NewSession(img, nil, tripaint.DefaultParameters())
		if err != nil {
			fmt.Println(err)
			return
		}
		defer s.Close()

		s.SelectColor(2)
		if i, ok := s.Click(120, 80); ok {
			fmt.Println("painted triangle", i)
		}
		s.SavePNG("output.png")
	}

The mesh can also be used standalone, without a session:

	mesh := tripaint.NewPaintableMesh(800, 600)
	mesh.Rebuild(tripaint.DefaultParameters(), contours)
*/
package tripaint
