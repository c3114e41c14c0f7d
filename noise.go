package tripaint

import (
	"image"
	"image/color"
)

// grainRNG is a Park-Miller generator seeded per image so grain output
// stays reproducible.
type grainRNG struct {
	state int64
}

func (g *grainRNG) next() float64 {
	const a, m = 16807, 0x7fffffff
	g.state = (a * g.state) % m
	return float64(g.state) / float64(m)
}

// Noise overlays a uniform grain of the given amount on the image,
// clamping each channel to the valid range. Amounts of zero or less
// return the input converted to NRGBA.
func Noise(amount int, src image.Image) *image.NRGBA {
	if amount <= 0 {
		return ImgToNRGBA(src)
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rng := &grainRNG{state: 1}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := (rng.next() - 0.5) * float64(amount)
			r, g, bl, a := src.At(x, y).RGBA()
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{
				R: clampChannel(float64(r>>8) + n),
				G: clampChannel(float64(g>>8) + n),
				B: clampChannel(float64(bl>>8) + n),
				A: uint8(a >> 8),
			})
		}
	}
	return dst
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
