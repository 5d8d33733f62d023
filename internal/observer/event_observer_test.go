package observer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// recordingObserver collects events and signals each arrival.
type recordingObserver struct {
	mu     sync.Mutex
	events []SuggestionEvent
	wg     *sync.WaitGroup
}

func (o *recordingObserver) OnEvent(ctx context.Context, event SuggestionEvent) {
	o.mu.Lock()
	o.events = append(o.events, event)
	o.mu.Unlock()
	o.wg.Done()
}

func (o *recordingObserver) GetObserverName() string {
	return "recording_observer"
}

func TestEventPublisher_NotifiesSubscribers(t *testing.T) {
	publisher := NewEventPublisher()

	var wg sync.WaitGroup
	obs := &recordingObserver{wg: &wg}
	publisher.Subscribe(obs)

	wg.Add(1)
	publisher.NotifyObservers(context.Background(), SuggestionEvent{
		EventType: SuggestionCompleted,
		Symbol:    "AMZN",
		Tone:      models.ToneDark,
	})
	wg.Wait()

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Symbol != "AMZN" || obs.events[0].Tone != models.ToneDark {
		t.Errorf("Unexpected event: %+v", obs.events[0])
	}
}

func TestEventPublisher_Unsubscribe(t *testing.T) {
	publisher := NewEventPublisher()

	var wg sync.WaitGroup
	obs := &recordingObserver{wg: &wg}
	publisher.Subscribe(obs)
	publisher.Unsubscribe(obs)

	publisher.NotifyObservers(context.Background(), SuggestionEvent{EventType: SuggestionStarted})
	time.Sleep(50 * time.Millisecond)

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if len(obs.events) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %d", len(obs.events))
	}
}

type panickingObserver struct{}

func (panickingObserver) OnEvent(ctx context.Context, event SuggestionEvent) {
	panic("observer bug")
}

func (panickingObserver) GetObserverName() string { return "panicking_observer" }

func TestEventPublisher_SurvivesPanickingObserver(t *testing.T) {
	publisher := NewEventPublisher()

	var wg sync.WaitGroup
	obs := &recordingObserver{wg: &wg}
	publisher.Subscribe(panickingObserver{})
	publisher.Subscribe(obs)

	wg.Add(1)
	publisher.NotifyObservers(context.Background(), SuggestionEvent{EventType: SuggestionCompleted})
	wg.Wait()

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if len(obs.events) != 1 {
		t.Errorf("Expected healthy observer to still receive the event, got %d", len(obs.events))
	}
}

func TestMetricsObserver_Counters(t *testing.T) {
	metrics := NewMetricsObserver()
	ctx := context.Background()

	metrics.OnEvent(ctx, SuggestionEvent{EventType: SuggestionStarted})
	metrics.OnEvent(ctx, SuggestionEvent{EventType: SuggestionStarted})
	metrics.OnEvent(ctx, SuggestionEvent{
		EventType:      SuggestionCompleted,
		Tone:           models.ToneDark,
		ProcessingTime: 10 * time.Millisecond,
	})
	metrics.OnEvent(ctx, SuggestionEvent{EventType: SuggestionFailed})

	got := metrics.GetMetrics()
	if got["total_suggestions"] != int64(2) {
		t.Errorf("Expected 2 total, got %v", got["total_suggestions"])
	}
	if got["successful_suggestions"] != int64(1) {
		t.Errorf("Expected 1 successful, got %v", got["successful_suggestions"])
	}
	if got["failed_suggestions"] != int64(1) {
		t.Errorf("Expected 1 failed, got %v", got["failed_suggestions"])
	}
	if got["dark_recommendations"] != int64(1) {
		t.Errorf("Expected 1 dark recommendation, got %v", got["dark_recommendations"])
	}
	if got["light_recommendations"] != int64(0) {
		t.Errorf("Expected 0 light recommendations, got %v", got["light_recommendations"])
	}
}

func TestMetricsObserver_ToneSplit(t *testing.T) {
	metrics := NewMetricsObserver()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		metrics.OnEvent(ctx, SuggestionEvent{EventType: SuggestionCompleted, Tone: models.ToneLight})
	}
	metrics.OnEvent(ctx, SuggestionEvent{EventType: SuggestionCompleted, Tone: models.ToneDark})

	got := metrics.GetMetrics()
	if got["light_recommendations"] != int64(3) || got["dark_recommendations"] != int64(1) {
		t.Errorf("Expected 3 light / 1 dark, got %v / %v",
			got["light_recommendations"], got["dark_recommendations"])
	}
}
