package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/leengari/space-missions/internal/domain/mission"
)

const tracerName = "github.com/leengari/space-missions/internal/engine"

// Engine is the entry point for answering mission queries.
// It holds the loaded table by shared read-only reference.
type Engine struct {
	table  *mission.Table
	tracer trace.Tracer

	mu        sync.RWMutex
	observers []Observer // Observers for lifecycle events
}

// Option configures an Engine
type Option func(*Engine)

// WithTracer overrides the tracer taken from the global provider
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// WithObserver registers an observer at construction time
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.AddObserver(observer)
	}
}

// New creates a new Engine over a loaded table
func New(table *mission.Table, opts ...Option) *Engine {
	e := &Engine{
		table:     table,
		tracer:    otel.Tracer(tracerName),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the underlying mission table
func (e *Engine) Table() *mission.Table {
	return e.table
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	if observer == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	e.mu.RLock()
	observers := append([]Observer(nil), e.observers...)
	e.mu.RUnlock()
	for _, observer := range observers {
		observer.OnEvent(event)
	}
}

// run wraps one query with a query id, a trace span and lifecycle events
func run[T any](ctx context.Context, e *Engine, op string, args map[string]any, fn func() (T, error)) (T, error) {
	queryID := uuid.New().String()

	ctx, span := e.tracer.Start(ctx, "query."+op, trace.WithAttributes(
		attribute.String("query.id", queryID),
		attribute.String("query.operation", op),
	))
	defer span.End()

	e.notify(Event{Type: EventQueryStart, QueryID: queryID, Operation: op, Data: args})
	start := time.Now()

	var zero T
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		e.notify(Event{Type: EventQueryError, QueryID: queryID, Operation: op, Data: err.Error()})
		return zero, err
	}

	result, err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.notify(Event{Type: EventQueryError, QueryID: queryID, Operation: op, Data: err.Error()})
		return zero, err
	}

	e.notify(Event{Type: EventQueryEnd, QueryID: queryID, Operation: op, Data: map[string]any{
		"duration_ms": time.Since(start).Milliseconds(),
	}})
	return result, nil
}
