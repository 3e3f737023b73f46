package engine

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/leengari/space-missions/internal/testutil"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	eng := New(testutil.CreateMissionTable())
	observer := &MockObserver{}

	eng.AddObserver(observer)

	if len(eng.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(eng.observers))
	}
}

func TestAddNilObserver(t *testing.T) {
	eng := New(testutil.CreateMissionTable())

	eng.AddObserver(nil)

	if len(eng.observers) != 0 {
		t.Errorf("Expected nil observer to be ignored, got %d", len(eng.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	eng := New(testutil.CreateMissionTable())
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	if len(eng.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(eng.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(testutil.CreateMissionTable())

	// Should not panic
	eng.notify(Event{Type: EventQueryStart, QueryID: "test-query"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}
	eng := New(testutil.CreateMissionTable(), WithObserver(observer1), WithObserver(observer2))

	eng.notify(Event{Type: EventQueryStart, QueryID: "test-query", Data: "summary"})

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
	if observer1.Events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestQueryLifecycleEvents(t *testing.T) {
	observer := &MockObserver{}
	eng := New(testutil.CreateMissionTable(), WithObserver(observer))

	if _, err := eng.MostUsedRocket(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(observer.Events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(observer.Events))
	}
	start, end := observer.Events[0], observer.Events[1]
	if start.Type != EventQueryStart || end.Type != EventQueryEnd {
		t.Errorf("Unexpected event types: %s, %s", start.Type, end.Type)
	}
	if start.QueryID == "" || start.QueryID != end.QueryID {
		t.Errorf("Expected matching query ids, got %q and %q", start.QueryID, end.QueryID)
	}
	if start.Operation != "most_used_rocket" {
		t.Errorf("Expected operation most_used_rocket, got %q", start.Operation)
	}
}

func TestQueryErrorEvent(t *testing.T) {
	observer := &MockObserver{}
	eng := New(testutil.CreateMissionTable(), WithObserver(observer))

	_, err := eng.MissionsByDateRange(context.Background(), "not-a-date", "2020-01-01")
	if err == nil {
		t.Fatal("Expected error for malformed start date")
	}

	last := observer.Events[len(observer.Events)-1]
	if last.Type != EventQueryError {
		t.Errorf("Expected query_error event, got %s", last.Type)
	}
}

func TestUniqueQueryIDs(t *testing.T) {
	observer := &MockObserver{}
	eng := New(testutil.CreateMissionTable(), WithObserver(observer))

	_, _ = eng.Summary(context.Background())
	_, _ = eng.Summary(context.Background())

	if observer.Events[0].QueryID == observer.Events[2].QueryID {
		t.Error("Expected distinct query ids for separate calls")
	}
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := New(testutil.CreateMissionTable(), WithObserver(NewLoggingObserver(logger)))

	_, _ = eng.TopCompanies(context.Background(), 3)

	out := buf.String()
	if !strings.Contains(out, "query_lifecycle") || !strings.Contains(out, "operation=top_companies") {
		t.Errorf("Expected lifecycle log lines, got %q", out)
	}
}
