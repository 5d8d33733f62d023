package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
)

// Decoder turns encoded image bytes into a Bitmap. Any implementation with
// this contract is interchangeable as far as the analyzer is concerned.
type Decoder interface {
	Decode(data []byte) (*bitmap.Bitmap, error)
}

// StdDecoder decodes via the registered image formats (PNG, JPEG, GIF, WebP,
// BMP, TIFF) and optionally downscales oversized images before conversion.
type StdDecoder struct {
	// MaxSampleDim, when > 0, caps both dimensions; larger images are
	// downscaled with Lanczos resampling so analysis cost stays bounded.
	MaxSampleDim int
}

// NewStdDecoder creates a decoder. maxSampleDim <= 0 disables downscaling.
func NewStdDecoder(maxSampleDim int) *StdDecoder {
	return &StdDecoder{MaxSampleDim: maxSampleDim}
}

// Decode parses the bytes and returns a non-premultiplied RGBA bitmap.
// Failures are reported as decode errors, distinct from fetch failures.
func (d *StdDecoder) Decode(data []byte) (*bitmap.Bitmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewDecodeError("failed to decode image", err)
	}

	if d.MaxSampleDim > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > d.MaxSampleDim || bounds.Dy() > d.MaxSampleDim {
			img = resize.Thumbnail(uint(d.MaxSampleDim), uint(d.MaxSampleDim), img, resize.Lanczos3)
		}
	}

	return bitmap.FromImage(img), nil
}
