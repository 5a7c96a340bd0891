package model_test

import (
	"organise/internal/domains/calendar/model"
	gDto "organise/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.January, day, hour, minute, 0, 0, time.UTC)
}

var rangeCases = []struct {
	name  string
	start time.Time
	end   time.Time
	want  bool
}{
	{name: "range contains the event", start: at(1, 9, 0), end: at(1, 12, 0), want: true},
	{name: "range starts inside the event", start: at(1, 10, 30), end: at(1, 13, 0), want: true},
	{name: "range ends inside the event", start: at(1, 8, 0), end: at(1, 10, 30), want: true},
	{name: "event contains the range", start: at(1, 10, 15), end: at(1, 10, 45), want: true},
	{name: "range touches the start", start: at(1, 9, 0), end: at(1, 10, 0), want: true},
	{name: "range on the next day", start: at(2, 0, 0), end: at(2, 1, 0), want: false},
	{name: "range before the event", start: at(1, 7, 0), end: at(1, 9, 59), want: false},
}

func standup() model.CalendarEvent {
	return model.CalendarEvent{Title: "Standup", StartTime: at(1, 10, 0), EndTime: at(1, 11, 0)}
}

func TestCalendarEvent_Overlaps(t *testing.T) {
	event := standup()

	for _, tt := range rangeCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, event.Overlaps(tt.start, tt.end))
		})
	}
}

// matches evaluates the subset of filter operators OverlapFilter uses.
func matches(t *testing.T, event model.CalendarEvent, filter any) bool {
	t.Helper()

	switch f := filter.(type) {
	case gDto.FilterGroup:
		for _, child := range f.Filters {
			ok := matches(t, event, child)
			if f.Operator == gDto.FilterGroupOperatorOr && ok {
				return true
			}

			if f.Operator != gDto.FilterGroupOperatorOr && !ok {
				return false
			}
		}

		return f.Operator != gDto.FilterGroupOperatorOr
	case gDto.Filter:
		value := event.StartTime
		if f.Field == model.FieldEndTime {
			value = event.EndTime
		}

		bound := f.Value.(time.Time)

		switch f.Operator {
		case gDto.FilterOperatorGreaterEq:
			return !value.Before(bound)
		case gDto.FilterOperatorLessEq:
			return !value.After(bound)
		}
	}

	t.Fatalf("unexpected filter %#v", filter)

	return false
}

func TestOverlapFilter(t *testing.T) {
	event := standup()

	for _, tt := range rangeCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matches(t, event, model.OverlapFilter(tt.start, tt.end)))
		})
	}
}

func TestOverlapFilter_ToBSON(t *testing.T) {
	start, end := at(1, 9, 0), at(1, 12, 0)

	filter := model.OverlapFilter(start, end)
	query := filter.ToBSON()

	require.Len(t, query, 1)
	assert.Equal(t, "$or", query[0].Key)

	clauses := query[0].Value.(bson.A)
	require.Len(t, clauses, 3)
	assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "start_time", Value: bson.D{{Key: "$gte", Value: start}}}},
		bson.D{{Key: "start_time", Value: bson.D{{Key: "$lte", Value: end}}}},
	}}}, clauses[0])
	assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "start_time", Value: bson.D{{Key: "$lte", Value: start}}}},
		bson.D{{Key: "end_time", Value: bson.D{{Key: "$gte", Value: end}}}},
	}}}, clauses[2])
}
