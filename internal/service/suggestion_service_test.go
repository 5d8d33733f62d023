package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/analyzer"
	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/observer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/colormap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// stubRepository serves canned bitmaps keyed by symbol and records calls.
type stubRepository struct {
	bitmaps map[string]*bitmap.Bitmap
	err     error
}

func (r *stubRepository) BitmapForSymbol(ctx context.Context, symbol string) (*bitmap.Bitmap, error) {
	if r.err != nil {
		return nil, r.err
	}
	bm, ok := r.bitmaps[symbol]
	if !ok {
		return nil, apperrors.NewFetchError(symbol, 404, nil)
	}
	return bm, nil
}

func (r *stubRepository) BitmapForURL(ctx context.Context, imageURL string) (*bitmap.Bitmap, error) {
	if r.err != nil {
		return nil, r.err
	}
	bm, ok := r.bitmaps[imageURL]
	if !ok {
		return nil, apperrors.NewFetchError("", 404, nil)
	}
	return bm, nil
}

func uniformBitmap(w, h int, gray uint8) *bitmap.Bitmap {
	bm := bitmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bm.SetRGBA(x, y, gray, gray, gray, 255)
		}
	}
	return bm
}

func newTestService(repo *stubRepository) (SuggestionService, *analyzer.WorkerPool) {
	pool := analyzer.NewWorkerPool(2)
	pool.Start()
	svc := NewSuggestionService(repo, analyzer.NewToneAnalyzer(), observer.NewEventPublisher(), pool)
	return svc, pool
}

func TestSuggestForSymbol_Success(t *testing.T) {
	repo := &stubRepository{bitmaps: map[string]*bitmap.Bitmap{
		"AMZN": uniformBitmap(4, 4, 240), // bright logo, dark background
	}}
	svc, pool := newTestService(repo)
	defer pool.Close()

	resp, err := svc.SuggestForSymbol(context.Background(), "AMZN", analyzer.DefaultOptions(), colormap.DefaultMapper())
	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}

	if resp.Symbol != "AMZN" {
		t.Errorf("Expected symbol AMZN, got %q", resp.Symbol)
	}
	if resp.Suggestion.Tone != models.ToneDark {
		t.Errorf("Expected dark tone for bright logo, got %s", resp.Suggestion.Tone)
	}
	if resp.BackgroundColor != colormap.DefaultMapper().DarkColor {
		t.Errorf("Expected dark background color, got %s", resp.BackgroundColor)
	}
	if resp.ProcessingTimeSec < 0 {
		t.Errorf("Expected non-negative processing time, got %f", resp.ProcessingTimeSec)
	}
}

func TestSuggestForSymbol_InvalidSymbol(t *testing.T) {
	svc, pool := newTestService(&stubRepository{})
	defer pool.Close()

	_, err := svc.SuggestForSymbol(context.Background(), "../etc/passwd", analyzer.DefaultOptions(), colormap.DefaultMapper())
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got: %v", err)
	}
}

func TestSuggestForSymbol_FetchFailurePropagates(t *testing.T) {
	fetchErr := apperrors.NewFetchError("MISSING", 404, nil)
	svc, pool := newTestService(&stubRepository{err: fetchErr})
	defer pool.Close()

	resp, err := svc.SuggestForSymbol(context.Background(), "MISSING", analyzer.DefaultOptions(), colormap.DefaultMapper())
	if resp != nil {
		t.Error("Expected no response on failure, a failed fetch must not yield a suggestion")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("Expected fetch error to propagate unchanged, got: %v", err)
	}
}

func TestSuggestForURL_Success(t *testing.T) {
	imageURL := "https://cdn.example.com/logo.png"
	repo := &stubRepository{bitmaps: map[string]*bitmap.Bitmap{
		imageURL: uniformBitmap(4, 4, 10), // dark logo, light background
	}}
	svc, pool := newTestService(repo)
	defer pool.Close()

	resp, err := svc.SuggestForURL(context.Background(), imageURL, analyzer.DefaultOptions(), colormap.DefaultMapper())
	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if resp.ImageURL != imageURL {
		t.Errorf("Expected image URL echoed, got %q", resp.ImageURL)
	}
	if resp.Suggestion.Tone != models.ToneLight {
		t.Errorf("Expected light tone for dark logo, got %s", resp.Suggestion.Tone)
	}
}

func TestSuggestForURL_InvalidURL(t *testing.T) {
	svc, pool := newTestService(&stubRepository{})
	defer pool.Close()

	_, err := svc.SuggestForURL(context.Background(), "ftp://example.com/logo.png", analyzer.DefaultOptions(), colormap.DefaultMapper())
	if err == nil {
		t.Fatal("Expected validation error for disallowed scheme")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got: %v", err)
	}
}

func TestSuggestDetailed_IncludesStats(t *testing.T) {
	repo := &stubRepository{bitmaps: map[string]*bitmap.Bitmap{
		"AMZN": uniformBitmap(4, 4, 240),
	}}
	svc, pool := newTestService(repo)
	defer pool.Close()

	resp, err := svc.SuggestDetailed(context.Background(), "AMZN", analyzer.DefaultOptions(), colormap.DefaultMapper())
	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if resp.Stats.Sampled != 16 {
		t.Errorf("Expected 16 sampled in stats, got %d", resp.Stats.Sampled)
	}
	if resp.Stats.Min != resp.Stats.Max {
		t.Errorf("Expected uniform min/max, got %f/%f", resp.Stats.Min, resp.Stats.Max)
	}
}

func TestSuggestBatch_MixedResults(t *testing.T) {
	repo := &stubRepository{bitmaps: map[string]*bitmap.Bitmap{
		"AMZN": uniformBitmap(4, 4, 240),
		"MSFT": uniformBitmap(4, 4, 10),
	}}
	svc, pool := newTestService(repo)
	defer pool.Close()

	resp, err := svc.SuggestBatch(context.Background(), []string{"AMZN", "GONE", "MSFT"}, analyzer.DefaultOptions())
	if err != nil {
		t.Fatalf("Expected batch to succeed overall, got: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(resp.Results))
	}

	// Results stay in request order even though work is fanned out.
	if resp.Results[0].Symbol != "AMZN" || resp.Results[1].Symbol != "GONE" || resp.Results[2].Symbol != "MSFT" {
		t.Errorf("Expected request order preserved, got %+v", resp.Results)
	}

	if resp.Results[0].Suggestion == nil || resp.Results[0].Suggestion.Tone != models.ToneDark {
		t.Errorf("Expected dark suggestion for AMZN, got %+v", resp.Results[0])
	}
	if resp.Results[1].Error == "" || resp.Results[1].Suggestion != nil {
		t.Errorf("Expected error-only result for GONE, got %+v", resp.Results[1])
	}
	if resp.Results[2].Suggestion == nil || resp.Results[2].Suggestion.Tone != models.ToneLight {
		t.Errorf("Expected light suggestion for MSFT, got %+v", resp.Results[2])
	}
}
