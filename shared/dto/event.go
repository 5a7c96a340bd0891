package dto

import "time"

// ChangeEvent is published after every successful write. Data is the record after the change and
// is omitted for deletes.
type ChangeEvent struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ID         string    `json:"id"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
