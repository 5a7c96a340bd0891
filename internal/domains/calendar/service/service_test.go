package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"

	"organise/config"
	"organise/infras/googlecalendar"
	googleMocks "organise/infras/googlecalendar/mocks"
	"organise/infras/kafka"
	otelMocks "organise/infras/otel/mocks"
	calendarMocks "organise/internal/domains/calendar/mocks"
	"organise/internal/domains/calendar/model"
	"organise/internal/domains/calendar/model/dto"
	"organise/internal/domains/calendar/service"
	"organise/shared/cache"
	cacheMocks "organise/shared/cache/mocks"
	gDto "organise/shared/dto"
	"organise/shared/failure"
	gRepo "organise/shared/repository"
	"organise/shared/validator"
)

var start = time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc    service.CalendarEvent
	repo   *calendarMocks.MockCalendarEvent
	google *googleMocks.MockClient
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := calendarMocks.NewMockCalendarEvent(ctrl)
	google := googleMocks.NewMockClient(ctrl)
	otel := otelMocks.NewOtel()
	cfg := &config.Config{}

	return fixture{
		svc:    service.New(repo, google, cfg, cache.NewRedisCache(nil, otel), kafka.New(cfg), otel),
		repo:   repo,
		google: google,
	}
}

func validRequest() dto.EventRequest {
	return dto.EventRequest{Title: "Standup", StartTime: start, EndTime: start.Add(time.Hour)}
}

func syncRequest() dto.SyncRequest {
	return dto.SyncRequest{
		Credentials: dto.GoogleCredentials{ClientID: "id", ClientSecret: "secret", RedirectURI: "http://localhost/cb"},
		Token:       dto.GoogleToken{AccessToken: "at", RefreshToken: "rt", ExpiresAt: start},
	}
}

func TestCalendarService_Create(t *testing.T) {
	t.Run("stored as a local event", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event model.CalendarEvent) error {
				assert.False(t, event.ID.IsZero())
				assert.Equal(t, model.SourceLocal, event.Source)
				assert.True(t, event.StartTime.Equal(start))

				return nil
			})

		res, err := f.svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Standup", res.Title)
		assert.Equal(t, model.SourceLocal, res.Source)
	})

	t.Run("end not after start never reaches the store", func(t *testing.T) {
		f := newFixture(t)

		req := validRequest()
		req.EndTime = start

		_, err := f.svc.Create(context.Background(), req)

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, "end_time must be after start_time", fail.Fields["end_time"])
	})
}

func TestCalendarService_GetByDateRange(t *testing.T) {
	t.Run("pushes the overlap filter to the store", func(t *testing.T) {
		f := newFixture(t)
		rangeStart, rangeEnd := start.Add(-time.Hour), start.Add(2*time.Hour)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{}, model.OverlapFilter(rangeStart, rangeEnd)).
			Return([]model.CalendarEvent{{ID: bson.NewObjectID(), Title: "Standup", StartTime: start, EndTime: start.Add(time.Hour)}}, nil)

		res, err := f.svc.GetByDateRange(context.Background(), rangeStart, rangeEnd)
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("start after end", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetByDateRange(context.Background(), start, start.Add(-time.Minute))
		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("empty range result", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.CalendarEvent{}, nil)

		res, err := f.svc.GetByDateRange(context.Background(), start, start)
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})
}

func TestCalendarService_Get(t *testing.T) {
	f := newFixture(t)
	id := bson.NewObjectID()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CalendarEvent{}, gRepo.ErrNotFound)

	_, err := f.svc.Get(context.Background(), id.Hex())
	assert.Equal(t, "calendar event not found", err.Error())
}

func TestCalendarService_Update(t *testing.T) {
	id := bson.NewObjectID()

	t.Run("keeps external id and source", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update any, _ gDto.FilterGroup) (bool, error) {
				set := update.(bson.D)[0].Value.(bson.D)
				for _, elem := range set {
					assert.NotEqual(t, model.FieldExternalID, elem.Key)
					assert.NotEqual(t, model.FieldSource, elem.Key)
					assert.NotEqual(t, "created_at", elem.Key)
				}

				return true, nil
			})

		assert.NoError(t, f.svc.Update(context.Background(), validRequest(), id.Hex()))
	})

	t.Run("missing event", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), validRequest(), id.Hex())
		assert.True(t, failure.Is(err, failure.KindNotFound))
	})
}

func TestCalendarService_Delete(t *testing.T) {
	f := newFixture(t)
	id := bson.NewObjectID()

	gomock.InOrder(
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(true, nil),
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(false, nil),
	)

	require.NoError(t, f.svc.Delete(context.Background(), id.Hex()))
	assert.True(t, failure.Is(f.svc.Delete(context.Background(), id.Hex()), failure.KindNotFound))
	assert.True(t, failure.Is(f.svc.Delete(context.Background(), "bad"), failure.KindInvalidIdentifier))
}

func TestCalendarService_SyncGoogle(t *testing.T) {
	t.Run("upserts valid events by external id", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().
			ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds googlecalendar.Credentials, timeMin, timeMax time.Time) ([]googlecalendar.Event, error) {
				assert.Equal(t, "at", creds.AccessToken)
				assert.Equal(t, 120*24*time.Hour, timeMax.Sub(timeMin))

				return []googlecalendar.Event{
					{ID: "g1", Summary: "Review", Start: start, End: start.Add(time.Hour)},
					{ID: "g2", Start: start, End: start.Add(30 * time.Minute), AllDay: true},
					{ID: "g3", Summary: "Backwards", Start: start, End: start.Add(-time.Hour)},
				}, nil
			})

		upserted := []string{}
		f.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, update any, filter gDto.FilterGroup) (bool, error) {
				doc := update.(bson.D)
				require.Len(t, doc, 2)
				assert.Equal(t, "$set", doc[0].Key)
				assert.Equal(t, "$setOnInsert", doc[1].Key)

				externalID := filter.Filters[0].(gDto.Filter).Value.(string)
				upserted = append(upserted, externalID)

				set := doc[0].Value.(bson.D)
				assert.Contains(t, set, bson.E{Key: model.FieldSource, Value: model.SourceGoogle})
				assert.Contains(t, set, bson.E{Key: model.FieldExternalID, Value: externalID})

				return true, nil
			})

		res, err := f.svc.SyncGoogle(context.Background(), syncRequest())
		require.NoError(t, err)

		assert.Equal(t, dto.SyncResponse{Fetched: 3, Synced: 2}, res)
		assert.Equal(t, []string{"g1", "g2"}, upserted)
	})

	t.Run("untitled events get a placeholder title", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().
			ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]googlecalendar.Event{{ID: "g1", Start: start, End: start.Add(time.Hour)}}, nil)

		f.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update any, _ gDto.FilterGroup) (bool, error) {
				set := update.(bson.D)[0].Value.(bson.D)
				assert.Contains(t, set, bson.E{Key: model.FieldTitle, Value: "(no title)"})

				return true, nil
			})

		_, err := f.svc.SyncGoogle(context.Background(), syncRequest())
		require.NoError(t, err)
	})

	t.Run("long text is cut to the event schema", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().
			ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]googlecalendar.Event{
				{
					ID:          "g1",
					Summary:     strings.Repeat("é", 150),
					Description: strings.Repeat("x", 600),
					Start:       start,
					End:         start.Add(time.Hour),
				},
				{ID: "g2", Summary: "Guests", Start: start, End: start.Add(time.Hour), Attendees: []string{"not-an-email"}},
			}, nil)

		f.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update any, _ gDto.FilterGroup) (bool, error) {
				values := map[string]any{}
				for _, elem := range update.(bson.D)[0].Value.(bson.D) {
					values[elem.Key] = elem.Value
				}

				title := values[model.FieldTitle].(string)
				description := values["description"].(string)

				assert.Equal(t, 100, utf8.RuneCountInString(title))
				assert.True(t, utf8.ValidString(title))
				assert.Len(t, description, 500)

				stored := dto.EventRequest{Title: title, Description: description, StartTime: start, EndTime: start.Add(time.Hour)}
				assert.NoError(t, validator.ValidateStruct(&stored))

				return true, nil
			})

		res, err := f.svc.SyncGoogle(context.Background(), syncRequest())
		require.NoError(t, err)
		assert.Equal(t, dto.SyncResponse{Fetched: 2, Synced: 1}, res)
	})

	t.Run("rejected credentials are unauthorized", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().
			ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: Invalid Credentials", googlecalendar.ErrUnauthorized))

		_, err := f.svc.SyncGoogle(context.Background(), syncRequest())
		assert.True(t, failure.Is(err, failure.KindUnauthorized))
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("other google failures are external api errors", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().
			ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("googleapi: Error 503"))

		_, err := f.svc.SyncGoogle(context.Background(), syncRequest())
		assert.True(t, failure.Is(err, failure.KindExternalAPI))
		assert.Contains(t, err.Error(), "google calendar api error")
	})

	t.Run("store failure stops the sync", func(t *testing.T) {
		f := newFixture(t)

		f.google.EXPECT().
			ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]googlecalendar.Event{
				{ID: "g1", Summary: "One", Start: start, End: start.Add(time.Hour)},
				{ID: "g2", Summary: "Two", Start: start, End: start.Add(time.Hour)},
			}, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("write conflict"))

		res, err := f.svc.SyncGoogle(context.Background(), syncRequest())
		assert.True(t, failure.Is(err, failure.KindStore))
		assert.Equal(t, 0, res.Synced)
	})

	t.Run("invalid window", func(t *testing.T) {
		f := newFixture(t)

		req := syncRequest()
		req.TimeMin = &start
		req.TimeMax = &start

		_, err := f.svc.SyncGoogle(context.Background(), req)
		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("missing token", func(t *testing.T) {
		f := newFixture(t)

		req := syncRequest()
		req.Token = dto.GoogleToken{}

		_, err := f.svc.SyncGoogle(context.Background(), req)
		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}

func TestCalendarService_SyncInvalidatesCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := calendarMocks.NewMockCalendarEvent(ctrl)
	google := googleMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	cfg := &config.Config{}

	svc := service.New(repo, google, cfg, mockCache, kafka.New(cfg), otelMocks.NewOtel())
	done := make(chan struct{})

	google.EXPECT().
		ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlecalendar.Event{{ID: "g1", Summary: "One", Start: start, End: start.Add(time.Hour)}}, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	gomock.InOrder(
		mockCache.EXPECT().Clear(gomock.Any(), "calendar:get*").Return(nil),
		mockCache.EXPECT().
			Clear(gomock.Any(), "calendar:gets*").
			DoAndReturn(func(context.Context, string) error {
				close(done)

				return nil
			}),
	)

	_, err := svc.SyncGoogle(context.Background(), syncRequest())
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("caches were not invalidated")
	}
}
