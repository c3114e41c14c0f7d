package tripaint

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ImgToNRGBA converts any image type to *image.NRGBA anchored at (0, 0).
func ImgToNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Grayscale converts the image to 8-bit grayscale using the Rec. 601
// luminance weights.
func Grayscale(img image.Image) *image.Gray {
	src := ImgToNRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		si := src.PixOffset(0, y)
		di := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			r, g, b := src.Pix[si], src.Pix[si+1], src.Pix[si+2]
			lum := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)
			dst.Pix[di] = uint8(lum)
			si += 4
			di++
		}
	}
	return dst
}

// Resize scales the image to width x height with bilinear filtering.
func Resize(img image.Image, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return ImgToNRGBA(img)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
