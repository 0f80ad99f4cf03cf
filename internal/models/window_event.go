package models

import "time"

// WindowEvent is a single log entry.
type WindowEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // DECISION_CHANGE | ERROR | SYSTEM
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
