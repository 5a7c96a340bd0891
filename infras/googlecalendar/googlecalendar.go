package googlecalendar

//go:generate go run go.uber.org/mock/mockgen -source=./googlecalendar.go -destination=./mocks/googlecalendar_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"organise/config"
	"organise/infras/otel"
	"organise/shared/constant"
	"organise/shared/timezone"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	primaryCalendar = "primary"
	pageSize        = 250
	dateLayout      = "2006-01-02"
	statusCancelled = "cancelled"
)

// eventColors is Google's fixed event palette keyed by colorId.
var eventColors = map[string]string{
	"1":  "#7986cb",
	"2":  "#33b679",
	"3":  "#8e24aa",
	"4":  "#e67c73",
	"5":  "#f6bf26",
	"6":  "#f4511e",
	"7":  "#039be5",
	"8":  "#616161",
	"9":  "#3f51b5",
	"10": "#0b8043",
	"11": "#d50000",
}

// ErrUnauthorized is returned when Google rejects the supplied credentials or token.
var ErrUnauthorized = errors.New("google calendar rejected the credentials")

// Credentials identify the OAuth client and the user's token.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Event is a Google event reduced to what the store keeps.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Recurrence  string
	Attendees   []string
	Color       string
}

type Client interface {
	ListEvents(ctx context.Context, creds Credentials, timeMin, timeMax time.Time) ([]Event, error)
}

type clientImpl struct {
	endpoint string
	otel     otel.Otel
}

// New returns a client for the Google Calendar API. EXTERNAL_GOOGLE_CALENDAR_ENDPOINT overrides
// the API base URL.
func New(cfg *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		endpoint: cfg.External.GoogleCalendar.Endpoint,
		otel:     otel,
	}
}

// ListEvents reads every single (expanded) event of the primary calendar in [timeMin, timeMax],
// following all pages. Cancelled events are dropped.
func (c *clientImpl) ListEvents(ctx context.Context, creds Credentials, timeMin, timeMax time.Time) (events []Event, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".googlecalendar.ListEvents")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	oauthConfig := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		Endpoint:     endpoints.Google,
		Scopes:       []string{calendar.CalendarReadonlyScope},
	}

	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       creds.Expiry,
	}

	opts := []option.ClientOption{option.WithHTTPClient(oauthConfig.Client(ctx, token))}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google calendar service: %w", err)
	}

	events = []Event{}

	err = service.Events.List(primaryCalendar).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		MaxResults(pageSize).
		Pages(ctx, func(page *calendar.Events) error {
			for _, item := range page.Items {
				if item.Status == statusCancelled {
					continue
				}

				event, ok := fromAPI(item)
				if !ok {
					log.Warn().Str("eventID", item.Id).Msg("skipping google event without usable start or end")

					continue
				}

				events = append(events, event)
			}

			return nil
		})
	if err != nil {
		return nil, classify(err)
	}

	scope.SetAttribute("events", len(events))

	return events, nil
}

func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: token refresh failed: %s", ErrUnauthorized, retrieveErr.ErrorCode)
	}

	return fmt.Errorf("failed to list google calendar events: %w", err)
}

func fromAPI(item *calendar.Event) (Event, bool) {
	start, allDay, ok := parseEventTime(item.Start)
	if !ok {
		return Event{}, false
	}

	end, _, ok := parseEventTime(item.End)
	if !ok {
		return Event{}, false
	}

	attendees := make([]string, 0, len(item.Attendees))
	for _, attendee := range item.Attendees {
		if attendee.Email != "" {
			attendees = append(attendees, attendee.Email)
		}
	}

	return Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Start:       start,
		End:         end,
		AllDay:      allDay,
		Recurrence:  strings.Join(item.Recurrence, "\n"),
		Attendees:   attendees,
		Color:       eventColors[item.ColorId],
	}, true
}

// parseEventTime reads a timed value or, for all-day events, a date in the application timezone.
func parseEventTime(value *calendar.EventDateTime) (time.Time, bool, bool) {
	if value == nil {
		return time.Time{}, false, false
	}

	if value.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, value.DateTime)

		return parsed, false, err == nil
	}

	if value.Date != "" {
		parsed, err := timezone.Parse(dateLayout, value.Date)

		return parsed, true, err == nil
	}

	return time.Time{}, false, false
}
