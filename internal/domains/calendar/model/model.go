package model

import (
	"organise/shared/constant"
	gDto "organise/shared/dto"
	"organise/shared/model"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CollectionName = "calendar_events"
	EntityName     = "calendar event"

	FieldTitle      = "title"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldExternalID = "external_id"
	FieldSource     = "source"
)

// SortableFields are the fields a list may be sorted by.
var SortableFields = []string{FieldTitle, FieldStartTime, FieldEndTime, FieldSource, constant.FieldCreatedAt, constant.FieldUpdatedAt}

const (
	SourceLocal  = "local"
	SourceGoogle = "google"
)

// CalendarEvent is a scheduled interval. StartTime is always strictly before EndTime.
// ExternalID and Source are only set on insert or by a sync, so a full update leaves them alone.
type CalendarEvent struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Title          string        `bson:"title"`
	Description    string        `bson:"description"`
	StartTime      time.Time     `bson:"start_time"`
	EndTime        time.Time     `bson:"end_time"`
	Location       string        `bson:"location"`
	IsAllDay       bool          `bson:"is_all_day"`
	RecurrenceRule string        `bson:"recurrence_rule"`
	Attendees      []string      `bson:"attendees"`
	Color          string        `bson:"color"`
	ExternalID     string        `bson:"external_id,omitempty"`
	Source         string        `bson:"source,omitempty"`
	model.Metadata `bson:",inline"`
}

// Overlaps reports whether the event intersects [start, end]. Bounds are inclusive.
func (e *CalendarEvent) Overlaps(start, end time.Time) bool {
	within := func(t time.Time) bool {
		return !t.Before(start) && !t.After(end)
	}

	return within(e.StartTime) ||
		within(e.EndTime) ||
		(!e.StartTime.After(start) && !e.EndTime.Before(end))
}

// OverlapFilter is the store form of Overlaps.
func OverlapFilter(start, end time.Time) gDto.FilterGroup {
	between := func(field string) gDto.FilterGroup {
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: field, Operator: gDto.FilterOperatorGreaterEq, Value: start},
				gDto.Filter{Field: field, Operator: gDto.FilterOperatorLessEq, Value: end},
			},
		}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			between(FieldStartTime),
			between(FieldEndTime),
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorAnd,
				Filters: []any{
					gDto.Filter{Field: FieldStartTime, Operator: gDto.FilterOperatorLessEq, Value: start},
					gDto.Filter{Field: FieldEndTime, Operator: gDto.FilterOperatorGreaterEq, Value: end},
				},
			},
		},
	}
}
