package tripaint

import (
	"image"
	"math"
)

var (
	sobelKernelX = [3][3]int32{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelKernelY = [3][3]int32{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelFilter computes the gradient magnitude of a grayscale image.
// Pixels whose magnitude does not exceed the threshold come out black;
// the rest keep their magnitude, capped at white. The one-pixel frame
// where the kernel does not fit stays black.
func SobelFilter(src *image.Gray, threshold float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var sumX, sumY int32
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					v := int32(src.Pix[src.PixOffset(b.Min.X+x+kx-1, b.Min.Y+y+ky-1)])
					sumX += v * sobelKernelX[ky][kx]
					sumY += v * sobelKernelY[ky][kx]
				}
			}
			mag := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if mag > threshold {
				dst.Pix[dst.PixOffset(x, y)] = uint8(math.Min(mag, 255))
			}
		}
	}
	return dst
}
