package engine

import "time"

// EventType represents different lifecycle phases of a query
type EventType string

const (
	EventQueryStart EventType = "query_start"
	EventQueryEnd   EventType = "query_end"
	EventQueryError EventType = "query_error"
)

// Event represents a lifecycle event in query execution
type Event struct {
	Type      EventType // Type of event
	QueryID   string    // Query ID for tracing
	Operation string    // Query operation name
	Timestamp time.Time // When the event occurred
	Data      any       // Phase-specific data (arguments, error text, duration)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
