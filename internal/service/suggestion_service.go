package service

import (
	"context"
	"sync"
	"time"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/analyzer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/observer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/repository"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/colormap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/validation"
)

// SuggestionService resolves symbols or URLs to background tone suggestions.
// Fetch and decode failures propagate as their distinct error kinds; the
// service never substitutes a default suggestion for a failed pipeline.
type SuggestionService interface {
	SuggestForSymbol(ctx context.Context, symbol string, opts analyzer.Options, mapper colormap.Mapper) (*models.SuggestionResponse, error)
	SuggestForURL(ctx context.Context, imageURL string, opts analyzer.Options, mapper colormap.Mapper) (*models.SuggestionResponse, error)
	SuggestDetailed(ctx context.Context, symbol string, opts analyzer.Options, mapper colormap.Mapper) (*models.DetailedSuggestionResponse, error)
	SuggestBatch(ctx context.Context, symbols []string, opts analyzer.Options) (*models.BatchResponse, error)
}

type suggestionService struct {
	repo      repository.LogoRepository
	analyzer  analyzer.ToneAnalyzer
	validator *validation.URLValidator
	publisher observer.Subject
	pool      *analyzer.WorkerPool
}

// NewSuggestionService creates a suggestion service.
func NewSuggestionService(
	repo repository.LogoRepository,
	toneAnalyzer analyzer.ToneAnalyzer,
	publisher observer.Subject,
	pool *analyzer.WorkerPool,
) SuggestionService {
	return &suggestionService{
		repo:      repo,
		analyzer:  toneAnalyzer,
		validator: validation.NewURLValidator(),
		publisher: publisher,
		pool:      pool,
	}
}

func (s *suggestionService) SuggestForSymbol(ctx context.Context, symbol string, opts analyzer.Options, mapper colormap.Mapper) (*models.SuggestionResponse, error) {
	start := time.Now()
	s.publishStart(ctx, symbol, "")

	if err := s.validator.ValidateSymbol(symbol); err != nil {
		s.publishFailure(ctx, symbol, "", start, err)
		return nil, err
	}

	bm, err := s.repo.BitmapForSymbol(ctx, symbol)
	if err != nil {
		s.publishFailure(ctx, symbol, "", start, err)
		return nil, err
	}

	suggestion := s.analyzer.Analyze(bm, opts)
	s.publishSuccess(ctx, symbol, "", start, suggestion)

	return &models.SuggestionResponse{
		Symbol:            symbol,
		Suggestion:        suggestion,
		BackgroundColor:   mapper.Map(suggestion),
		ProcessingTimeSec: time.Since(start).Seconds(),
	}, nil
}

func (s *suggestionService) SuggestForURL(ctx context.Context, imageURL string, opts analyzer.Options, mapper colormap.Mapper) (*models.SuggestionResponse, error) {
	start := time.Now()
	s.publishStart(ctx, "", imageURL)

	if err := s.validator.ValidateImageURL(imageURL); err != nil {
		s.publishFailure(ctx, "", imageURL, start, err)
		return nil, err
	}

	bm, err := s.repo.BitmapForURL(ctx, imageURL)
	if err != nil {
		s.publishFailure(ctx, "", imageURL, start, err)
		return nil, err
	}

	suggestion := s.analyzer.Analyze(bm, opts)
	s.publishSuccess(ctx, "", imageURL, start, suggestion)

	return &models.SuggestionResponse{
		ImageURL:          imageURL,
		Suggestion:        suggestion,
		BackgroundColor:   mapper.Map(suggestion),
		ProcessingTimeSec: time.Since(start).Seconds(),
	}, nil
}

func (s *suggestionService) SuggestDetailed(ctx context.Context, symbol string, opts analyzer.Options, mapper colormap.Mapper) (*models.DetailedSuggestionResponse, error) {
	start := time.Now()
	s.publishStart(ctx, symbol, "")

	if err := s.validator.ValidateSymbol(symbol); err != nil {
		s.publishFailure(ctx, symbol, "", start, err)
		return nil, err
	}

	bm, err := s.repo.BitmapForSymbol(ctx, symbol)
	if err != nil {
		s.publishFailure(ctx, symbol, "", start, err)
		return nil, err
	}

	suggestion := s.analyzer.Analyze(bm, opts)
	stats := s.analyzer.LightnessStats(bm, opts)
	s.publishSuccess(ctx, symbol, "", start, suggestion)

	return &models.DetailedSuggestionResponse{
		SuggestionResponse: models.SuggestionResponse{
			Symbol:            symbol,
			Suggestion:        suggestion,
			BackgroundColor:   mapper.Map(suggestion),
			ProcessingTimeSec: time.Since(start).Seconds(),
		},
		Stats: stats,
	}, nil
}

// SuggestBatch fans the symbols out over the worker pool. Per-symbol
// failures are reported in place; one bad symbol does not fail the batch.
func (s *suggestionService) SuggestBatch(ctx context.Context, symbols []string, opts analyzer.Options) (*models.BatchResponse, error) {
	results := make([]models.BatchResult, len(symbols))
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		i, symbol := i, symbol
		s.pool.Submit(func() {
			defer wg.Done()
			results[i] = s.suggestOne(ctx, symbol, opts)
		})
	}
	wg.Wait()

	return &models.BatchResponse{Results: results}, nil
}

func (s *suggestionService) suggestOne(ctx context.Context, symbol string, opts analyzer.Options) models.BatchResult {
	start := time.Now()
	s.publishStart(ctx, symbol, "")

	if err := s.validator.ValidateSymbol(symbol); err != nil {
		s.publishFailure(ctx, symbol, "", start, err)
		return models.BatchResult{Symbol: symbol, Error: err.Error()}
	}

	bm, err := s.repo.BitmapForSymbol(ctx, symbol)
	if err != nil {
		s.publishFailure(ctx, symbol, "", start, err)
		return models.BatchResult{Symbol: symbol, Error: err.Error()}
	}

	suggestion := s.analyzer.Analyze(bm, opts)
	s.publishSuccess(ctx, symbol, "", start, suggestion)
	return models.BatchResult{Symbol: symbol, Suggestion: &suggestion}
}

func (s *suggestionService) publishStart(ctx context.Context, symbol, imageURL string) {
	s.publisher.NotifyObservers(ctx, observer.SuggestionEvent{
		EventType: observer.SuggestionStarted,
		Timestamp: time.Now(),
		Symbol:    symbol,
		ImageURL:  imageURL,
	})
}

func (s *suggestionService) publishSuccess(ctx context.Context, symbol, imageURL string, start time.Time, suggestion models.Suggestion) {
	s.publisher.NotifyObservers(ctx, observer.SuggestionEvent{
		EventType:      observer.SuggestionCompleted,
		Timestamp:      time.Now(),
		Symbol:         symbol,
		ImageURL:       imageURL,
		Tone:           suggestion.Tone,
		Confidence:     suggestion.Confidence,
		ProcessingTime: time.Since(start),
		Success:        true,
	})
}

func (s *suggestionService) publishFailure(ctx context.Context, symbol, imageURL string, start time.Time, err error) {
	s.publisher.NotifyObservers(ctx, observer.SuggestionEvent{
		EventType:      observer.SuggestionFailed,
		Timestamp:      time.Now(),
		Symbol:         symbol,
		ImageURL:       imageURL,
		ProcessingTime: time.Since(start),
		Success:        false,
		ErrorMessage:   err.Error(),
	})
}
