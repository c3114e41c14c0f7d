package tripaint

import "image/color"

// DefaultPalette is the built-in set of paint colors, grouped the way
// the color picker lays them out.
var DefaultPalette = []color.RGBA{
	// Primaries
	{B: 255, A: 255},
	{G: 255, A: 255},
	{R: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{R: 255, G: 255, A: 255},

	// Warm tones
	{R: 255, G: 165, A: 255},
	{R: 255, G: 69, A: 255},
	{R: 255, G: 140, A: 255},
	{R: 178, G: 34, B: 34, A: 255},
	{R: 47, G: 107, B: 85, A: 255},

	// Cool tones
	{R: 128, B: 128, A: 255},
	{R: 92, G: 92, B: 205, A: 255},
	{R: 19, G: 69, B: 139, A: 255},
	{R: 45, G: 82, B: 160, A: 255},
	{R: 130, B: 75, A: 255},

	// Pastels
	{R: 193, G: 182, B: 255, A: 255},
	{R: 221, G: 160, B: 221, A: 255},
	{R: 230, G: 216, B: 173, A: 255},
	{R: 144, G: 238, B: 144, A: 255},
	{R: 224, G: 255, B: 255, A: 255},

	// Earth tones
	{R: 165, G: 42, B: 42, A: 255},
	{R: 139, G: 69, B: 19, A: 255},
	{R: 107, G: 142, B: 35, A: 255},
	{R: 46, G: 139, B: 87, A: 255},
	{R: 160, G: 82, B: 45, A: 255},

	// Metallics and neutrals
	{R: 192, G: 192, B: 192, A: 255},
	{R: 255, G: 215, A: 255},
	{R: 130, G: 130, B: 130, A: 255},
	{R: 105, G: 105, B: 105, A: 255},
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},

	// Brights
	{R: 127, G: 255, A: 255},
	{R: 147, G: 20, B: 255, A: 255},
	{R: 255, G: 191, A: 255},
	{R: 50, G: 205, B: 50, A: 255},
	{R: 255, G: 105, B: 180, A: 255},

	// Violet shades
	{R: 238, G: 130, B: 238, A: 255},
	{R: 214, G: 112, B: 218, A: 255},
	{R: 211, G: 85, B: 186, A: 255},
	{R: 219, G: 112, B: 147, A: 255},
	{R: 238, G: 104, B: 123, A: 255},
	{R: 205, G: 90, B: 106, A: 255},
	{R: 139, G: 61, B: 72, A: 255},
	{R: 112, G: 25, B: 25, A: 255},
}
