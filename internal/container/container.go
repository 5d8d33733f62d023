package container

import (
	"fmt"
	"net/http"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/analyzer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/config"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/factory"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/imaging"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/logger"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/observer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/repository"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/service"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/transport"
)

// Container holds all application dependencies.
type Container struct {
	config   *config.Config
	analyzer analyzer.ToneAnalyzer
	repo     repository.LogoRepository
	service  service.SuggestionService
	metrics  *observer.MetricsObserver
	pool     *analyzer.WorkerPool
	handler  http.Handler
}

// NewContainer builds the dependency graph from configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	fetcher, err := factory.NewFetcherFactory().CreateFetcher(factory.FetcherType(cfg.FetcherBackend), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetcher: %w", err)
	}

	decoder := imaging.NewStdDecoder(cfg.MaxSampleDim)
	repo := repository.NewLogoRepository(fetcher, decoder)
	toneAnalyzer := analyzer.NewToneAnalyzer()

	metrics := observer.NewMetricsObserver()
	publisher := observer.NewEventPublisher()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(metrics)

	pool := analyzer.NewWorkerPool(0)
	pool.Start()

	svc := service.NewSuggestionService(repo, toneAnalyzer, publisher, pool)
	handler := transport.NewHandler(svc, metrics, cfg)

	return &Container{
		config:   cfg,
		analyzer: toneAnalyzer,
		repo:     repo,
		service:  svc,
		metrics:  metrics,
		pool:     pool,
		handler:  handler,
	}, nil
}

// Handler returns the HTTP handler.
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases container resources.
func (c *Container) Close() {
	c.pool.Close()
}
