package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Sink receives events after they are persisted. A Kafka producer is the
// production sink; tests use in-memory fakes.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Publisher captures structured audit events. It is append-only: the store
// is the source of truth, and sink failures are logged but never fail the
// verification request that produced the event.
type Publisher struct {
	store  Store
	sink   Sink
	logger *slog.Logger
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithSink attaches an event sink fan-out.
func WithSink(sink Sink) PublisherOption {
	return func(p *Publisher) {
		p.sink = sink
	}
}

// NewPublisher creates an audit publisher over the given store.
func NewPublisher(store Store, logger *slog.Logger, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit persists the event, filling in identity and timestamp when unset.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := p.store.Append(ctx, event); err != nil {
		return err
	}

	if p.sink != nil {
		if err := p.sink.Publish(ctx, event); err != nil {
			p.logger.ErrorContext(ctx, "audit sink publish failed",
				"run_id", event.RunID,
				"error", err,
			)
		}
	}
	return nil
}

// FindByRunID returns the persisted event for a verification run.
func (p *Publisher) FindByRunID(ctx context.Context, runID string) (Event, error) {
	return p.store.FindByRunID(ctx, runID)
}
