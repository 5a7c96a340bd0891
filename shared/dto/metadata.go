package dto

import (
	"organise/shared/constant"
	"organise/shared/model"
	"organise/shared/timezone"
	"time"
)

// Metadata renders document timestamps as RFC3339 in the application timezone. Unset times are
// left out of the JSON.
type Metadata struct {
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatStamp(model.CreatedAt)
	m.UpdatedAt = formatStamp(model.UpdatedAt)
}

func formatStamp(stamp time.Time) string {
	if stamp.IsZero() {
		return ""
	}

	return timezone.Format(stamp, constant.DateFormat)
}
