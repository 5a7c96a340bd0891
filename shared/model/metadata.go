package model

import (
	"organise/shared/timezone"
	"time"
)

// Metadata carries the timestamps every stored document has.
type Metadata struct {
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Stamp sets both timestamps to now. It is called once, on insert.
func (m *Metadata) Stamp() {
	now := timezone.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
}
