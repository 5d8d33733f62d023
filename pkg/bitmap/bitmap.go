package bitmap

import (
	"fmt"
	"image"
	"image/draw"
)

// Bitmap is a decoded RGBA pixel buffer: width*height pixels stored row-major,
// four bytes per pixel (R, G, B, A), non-premultiplied. It is the common input
// format produced by the imaging layer and consumed by the analyzer.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// Validate checks that the pixel buffer is at least as long as the dimensions
// imply. The analyzer itself does not validate; callers that accept untrusted
// buffers should call this first.
func (b *Bitmap) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("invalid bitmap: negative dimensions %dx%d", b.Width, b.Height)
	}
	if need := b.Width * b.Height * 4; len(b.Pix) < need {
		return fmt.Errorf("invalid bitmap: buffer length %d, need at least %d for %dx%d", len(b.Pix), need, b.Width, b.Height)
	}
	return nil
}

// At returns the RGBA channels of the pixel at (x, y). Bounds are not checked.
func (b *Bitmap) At(x, y int) (r, g, bl, a uint8) {
	i := (y*b.Width + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// FromImage converts any decoded image into a Bitmap. Alpha is kept
// non-premultiplied so transparent fringes survive the conversion.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) || nrgba.Stride != bounds.Dx()*4 {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return &Bitmap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    nrgba.Pix,
	}
}

// New allocates a zeroed (fully transparent) bitmap.
func New(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// SetRGBA writes one pixel. Bounds are not checked.
func (b *Bitmap) SetRGBA(x, y int, r, g, bl, a uint8) {
	i := (y*b.Width + x) * 4
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}
