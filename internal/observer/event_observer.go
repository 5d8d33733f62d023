package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// SuggestionEvent describes one step of a suggestion request's lifecycle.
type SuggestionEvent struct {
	EventType      EventType              `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	Symbol         string                 `json:"symbol,omitempty"`
	ImageURL       string                 `json:"image_url,omitempty"`
	Tone           models.Tone            `json:"tone,omitempty"`
	Confidence     float64                `json:"confidence,omitempty"`
	ProcessingTime time.Duration          `json:"processing_time"`
	Success        bool                   `json:"success"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of suggestion event.
type EventType string

const (
	// SuggestionStarted when a suggestion request begins.
	SuggestionStarted EventType = "suggestion_started"
	// SuggestionCompleted when a suggestion is produced.
	SuggestionCompleted EventType = "suggestion_completed"
	// SuggestionFailed when fetch, decode or validation fails.
	SuggestionFailed EventType = "suggestion_failed"
	// LogoFetched when the logo bytes arrive.
	LogoFetched EventType = "logo_fetched"
	// LogoFetchFailed when the logo fetch fails.
	LogoFetchFailed EventType = "logo_fetch_failed"
)

// Observer defines the interface for event observers.
type Observer interface {
	OnEvent(ctx context.Context, event SuggestionEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers.
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event SuggestionEvent)
}

// LoggingObserver logs suggestion events.
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer.
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{logger: logger}
}

// OnEvent handles suggestion events by logging them.
func (o *LoggingObserver) OnEvent(ctx context.Context, event SuggestionEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"processing_time": event.ProcessingTime,
		"success":         event.Success,
	}
	if event.Symbol != "" {
		fields["symbol"] = event.Symbol
	}
	if event.ImageURL != "" {
		fields["image_url"] = event.ImageURL
	}
	if event.Tone != "" {
		fields["tone"] = event.Tone
		fields["confidence"] = event.Confidence
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	switch event.EventType {
	case SuggestionStarted:
		o.logger.WithFields(fields).Debug("Tone suggestion started")
	case SuggestionCompleted:
		o.logger.WithFields(fields).Info("Tone suggestion completed")
	case SuggestionFailed:
		o.logger.WithFields(fields).Error("Tone suggestion failed")
	case LogoFetched:
		o.logger.WithFields(fields).Debug("Logo fetched")
	case LogoFetchFailed:
		o.logger.WithFields(fields).Error("Logo fetch failed")
	default:
		o.logger.WithFields(fields).Info("Suggestion event occurred")
	}
}

// GetObserverName returns the observer name.
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver aggregates counters from suggestion events, including the
// split between light and dark recommendations.
type MetricsObserver struct {
	mu                    sync.RWMutex
	totalSuggestions      int64
	successfulSuggestions int64
	failedSuggestions     int64
	lightRecommendations  int64
	darkRecommendations   int64
	totalProcessingTime   time.Duration
}

// NewMetricsObserver creates a new metrics observer.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// OnEvent handles suggestion events by collecting metrics.
func (o *MetricsObserver) OnEvent(ctx context.Context, event SuggestionEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case SuggestionStarted:
		o.totalSuggestions++
	case SuggestionCompleted:
		o.successfulSuggestions++
		o.totalProcessingTime += event.ProcessingTime
		switch event.Tone {
		case models.ToneLight:
			o.lightRecommendations++
		case models.ToneDark:
			o.darkRecommendations++
		}
	case SuggestionFailed:
		o.failedSuggestions++
	}
}

// GetObserverName returns the observer name.
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns current counters.
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avgProcessingTime := time.Duration(0)
	if o.successfulSuggestions > 0 {
		avgProcessingTime = o.totalProcessingTime / time.Duration(o.successfulSuggestions)
	}

	return map[string]interface{}{
		"total_suggestions":      o.totalSuggestions,
		"successful_suggestions": o.successfulSuggestions,
		"failed_suggestions":     o.failedSuggestions,
		"light_recommendations":  o.lightRecommendations,
		"dark_recommendations":   o.darkRecommendations,
		"avg_processing_time":    avgProcessingTime.String(),
	}
}

// EventPublisher implements the Subject interface.
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher.
func NewEventPublisher() Subject {
	return &EventPublisher{observers: make([]Observer, 0)}
}

// Subscribe adds an observer.
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer by name.
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers notifies all observers of an event. Observers run
// concurrently; a panicking observer must not take the request down.
func (p *EventPublisher) NotifyObservers(ctx context.Context, event SuggestionEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, observer := range observers {
		go func(obs Observer) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
				}
			}()
			obs.OnEvent(ctx, event)
		}(observer)
	}
}
