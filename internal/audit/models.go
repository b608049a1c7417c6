// Package audit records one event per verification run so operators can
// reconstruct what was verified, when, and with what outcome. Events are
// append-only; the store layer persists them and an optional sink fans them
// out to Kafka.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Event captures one completed verification run. Keep it transport-agnostic
// so stores and sinks can fan out.
type Event struct {
	ID         uuid.UUID `json:"id"`
	RunID      uuid.UUID `json:"runId"`
	DocumentID string    `json:"documentId"`
	Action     string    `json:"action"`
	Status     string    `json:"status"`
	ReasonCode int       `json:"reasonCode"`
	Reason     string    `json:"reason,omitempty"`
	DurationMS int64     `json:"durationMs"`
	Timestamp  time.Time `json:"timestamp"`
}

// ActionVerify is the action recorded for document verification runs.
const ActionVerify = "document.verify"
