package repository

import (
	"context"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
)

// LogoRepository composes the fetcher and decoder collaborators: it resolves
// a symbol or URL to a decoded bitmap ready for analysis.
type LogoRepository interface {
	// BitmapForSymbol fetches and decodes the logo for a symbol.
	BitmapForSymbol(ctx context.Context, symbol string) (*bitmap.Bitmap, error)

	// BitmapForURL fetches and decodes an arbitrary image URL.
	BitmapForURL(ctx context.Context, imageURL string) (*bitmap.Bitmap, error)
}
