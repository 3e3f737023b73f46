package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer; a nil logger means slog.Default()
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventQueryError {
		level = slog.LevelWarn
	}
	lo.logger.Log(context.Background(), level, "query_lifecycle",
		"event", event.Type,
		"query_id", event.QueryID,
		"operation", event.Operation,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
