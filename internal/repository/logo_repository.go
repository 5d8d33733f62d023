package repository

import (
	"context"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/imaging"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/storage"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
)

// logoRepository implements LogoRepository over a fetcher and a decoder.
// Fetch and decode failures keep their distinct error kinds; nothing is
// swallowed into a default bitmap.
type logoRepository struct {
	fetcher storage.LogoFetcher
	decoder imaging.Decoder
}

// NewLogoRepository creates a repository from a fetcher and a decoder.
func NewLogoRepository(fetcher storage.LogoFetcher, decoder imaging.Decoder) LogoRepository {
	return &logoRepository{
		fetcher: fetcher,
		decoder: decoder,
	}
}

func (r *logoRepository) BitmapForSymbol(ctx context.Context, symbol string) (*bitmap.Bitmap, error) {
	data, err := r.fetcher.FetchSymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return r.decoder.Decode(data)
}

func (r *logoRepository) BitmapForURL(ctx context.Context, imageURL string) (*bitmap.Bitmap, error) {
	data, err := r.fetcher.FetchURL(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return r.decoder.Decode(data)
}
