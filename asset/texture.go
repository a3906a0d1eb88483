package asset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Texture is a decoded 2D image.
type Texture struct {
	Image image.Image
}

// DecodePNG reads a PNG image.
func DecodePNG(r io.Reader) (*Texture, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("asset: decode png: %w", err)
	}
	return &Texture{Image: img}, nil
}

// Solid returns a 1x1 texture of a single colour.
func Solid(c color.Color) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return &Texture{Image: img}
}

// Size returns the image dimensions, or zero for an empty texture.
func (t *Texture) Size() (width, height int) {
	if t == nil || t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Average returns the mean colour of the image, which the wireframe renderer
// uses as a tint.
func (t *Texture) Average() color.RGBA {
	if t == nil || t.Image == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	b := t.Image.Bounds()
	n := uint64(b.Dx() * b.Dy())
	if n == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	var r, g, bl, a uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := t.Image.At(x, y).RGBA()
			r += uint64(cr)
			g += uint64(cg)
			bl += uint64(cb)
			a += uint64(ca)
		}
	}
	return color.RGBA{
		R: uint8(r / n >> 8),
		G: uint8(g / n >> 8),
		B: uint8(bl / n >> 8),
		A: uint8(a / n >> 8),
	}
}
