package audit

import "context"

// Store persists audit events. Implementations must be safe for concurrent use.
type Store interface {
	// Append writes one event.
	Append(ctx context.Context, event Event) error

	// FindByRunID returns the event for a verification run.
	FindByRunID(ctx context.Context, runID string) (Event, error)
}
