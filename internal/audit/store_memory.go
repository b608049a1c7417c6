package audit

import (
	"context"
	"sync"

	dErrors "attestor/pkg/domain-errors"
)

// ErrNotFound keeps store-specific 404s consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "audit event not found")

// MemoryStore keeps events in memory. It favors clarity over performance and
// backs tests and single-node deployments without Postgres.
type MemoryStore struct {
	mu     sync.RWMutex
	byRun  map[string]Event
	events []Event
}

// NewMemoryStore creates an empty in-memory audit store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byRun: make(map[string]Event)}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	s.byRun[event.RunID.String()] = event
	return nil
}

func (s *MemoryStore) FindByRunID(_ context.Context, runID string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if event, ok := s.byRun[runID]; ok {
		return event, nil
	}
	return Event{}, ErrNotFound
}

// Len reports how many events were appended. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
