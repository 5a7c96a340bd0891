package dto

import (
	"organise/internal/domains/calendar/model"
	"organise/shared/constant"
	gDto "organise/shared/dto"
	"organise/shared/timezone"
	"time"
)

// EventRequest is the creation and full-update schema.
type EventRequest struct {
	Title          string    `json:"title"           validate:"required,notblank,max=100"     example:"Sprint planning"`
	Description    string    `json:"description"     validate:"max=500"                       example:"Plan the next two weeks"`
	StartTime      time.Time `json:"start_time"      validate:"required"                      example:"2025-01-01T10:00:00Z"`
	EndTime        time.Time `json:"end_time"        validate:"required,gtfield=StartTime"    example:"2025-01-01T11:00:00Z"`
	Location       string    `json:"location"        validate:"max=200"                       example:"Room 4"`
	IsAllDay       bool      `json:"is_all_day"      example:"false"`
	RecurrenceRule string    `json:"recurrence_rule" example:"RRULE:FREQ=WEEKLY;BYDAY=MO"`
	Attendees      []string  `json:"attendees"       validate:"omitempty,dive,email"          example:"ana@example.com"`
	Color          string    `json:"color"           validate:"omitempty,hexcolor"            example:"#1e90ff"`
}

func (c *EventRequest) ToModel() model.CalendarEvent {
	event := c.ToUpdate()
	event.Source = model.SourceLocal
	event.Stamp()

	return event
}

// ToUpdate is the document written by a full update. created_at, external_id and source are left alone.
func (c *EventRequest) ToUpdate() model.CalendarEvent {
	attendees := c.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return model.CalendarEvent{
		Title:          c.Title,
		Description:    c.Description,
		StartTime:      c.StartTime,
		EndTime:        c.EndTime,
		Location:       c.Location,
		IsAllDay:       c.IsAllDay,
		RecurrenceRule: c.RecurrenceRule,
		Attendees:      attendees,
		Color:          c.Color,
	}
}

type EventResponse struct {
	ID             string   `json:"id"                    example:"683cdb8aa96ad71e8e075bd1"`
	Title          string   `json:"title"                 example:"Sprint planning"`
	Description    string   `json:"description,omitempty" example:"Plan the next two weeks"`
	StartTime      string   `json:"start_time"            example:"2025-01-01T10:00:00Z"`
	EndTime        string   `json:"end_time"              example:"2025-01-01T11:00:00Z"`
	Location       string   `json:"location,omitempty"    example:"Room 4"`
	IsAllDay       bool     `json:"is_all_day"            example:"false"`
	RecurrenceRule string   `json:"recurrence_rule,omitempty"`
	Attendees      []string `json:"attendees"`
	Color          string   `json:"color,omitempty"       example:"#1e90ff"`
	ExternalID     string   `json:"external_id,omitempty"`
	Source         string   `json:"source"                example:"local"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(event model.CalendarEvent) {
	r.ID = event.ID.Hex()
	r.Title = event.Title
	r.Description = event.Description
	r.StartTime = timezone.Format(event.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(event.EndTime, constant.DateFormat)
	r.Location = event.Location
	r.IsAllDay = event.IsAllDay
	r.RecurrenceRule = event.RecurrenceRule
	r.Attendees = event.Attendees
	r.Color = event.Color
	r.ExternalID = event.ExternalID
	r.Source = event.Source
	r.Metadata.FromModel(event.Metadata)

	if r.Attendees == nil {
		r.Attendees = []string{}
	}

	if r.Source == "" {
		r.Source = model.SourceLocal
	}
}

func FromModels(events []model.CalendarEvent) []EventResponse {
	res := make([]EventResponse, len(events))
	for i, event := range events {
		res[i].FromModel(event)
	}

	return res
}

type GoogleCredentials struct {
	ClientID     string `json:"client_id"     validate:"required,notblank"`
	ClientSecret string `json:"client_secret" validate:"required,notblank"`
	RedirectURI  string `json:"redirect_uri"  validate:"required,notblank"`
}

type GoogleToken struct {
	AccessToken  string    `json:"access_token"  validate:"required,notblank"`
	RefreshToken string    `json:"refresh_token" validate:"required,notblank"`
	ExpiresAt    time.Time `json:"expires_at"    validate:"required"`
}

// SyncRequest asks for the primary Google calendar to be pulled into the store. The window
// defaults to the last 30 and next 90 days.
type SyncRequest struct {
	Credentials GoogleCredentials `json:"credentials" validate:"required"`
	Token       GoogleToken       `json:"token"       validate:"required"`
	TimeMin     *time.Time        `json:"time_min,omitempty" example:"2025-01-01T00:00:00Z"`
	TimeMax     *time.Time        `json:"time_max,omitempty" example:"2025-04-01T00:00:00Z"`
}

type SyncResponse struct {
	Fetched int `json:"fetched" example:"12"`
	Synced  int `json:"synced"  example:"11"`
}
