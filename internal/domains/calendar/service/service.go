package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=CalendarEvent=MockCalendarEventService

import (
	"context"
	"errors"
	"organise/config"
	"organise/infras/googlecalendar"
	"organise/infras/kafka"
	"organise/infras/otel"
	"organise/internal/domains/calendar/model"
	"organise/internal/domains/calendar/model/dto"
	"organise/internal/domains/calendar/repository"
	"organise/shared"
	"organise/shared/cache"
	"organise/shared/constant"
	gDto "organise/shared/dto"
	"organise/shared/failure"
	gRepo "organise/shared/repository"
	"organise/shared/timezone"
	"organise/shared/validator"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	cacheGetEvent    = "calendar:get"
	cacheGetAllEvent = "calendar:gets"

	googleCalendarService = "google calendar"
	untitledEvent         = "(no title)"

	maxTitleLength       = 100
	maxDescriptionLength = 500
	maxLocationLength    = 200
)

const (
	syncLookBehindDays = 30
	syncLookAheadDays  = 90
)

type CalendarEvent interface {
	Create(ctx context.Context, req dto.EventRequest) (dto.EventResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.EventResponse, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]dto.EventResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.EventRequest, id string) error
	Delete(ctx context.Context, id string) error
	SyncGoogle(ctx context.Context, req dto.SyncRequest) (dto.SyncResponse, error)
}

type serviceImpl struct {
	repo   repository.CalendarEvent
	google googlecalendar.Client
	cfg    *config.Config
	cache  cache.RedisCache
	kafka  kafka.Client
	otel   otel.Otel
}

func New(
	repo repository.CalendarEvent,
	google googlecalendar.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) CalendarEvent {
	return &serviceImpl{
		repo:   repo,
		google: google,
		cfg:    cfg,
		cache:  cache,
		kafka:  kafka,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.EventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	event := req.ToModel()
	event.ID = bson.NewObjectID()

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create calendar event")

		return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res.FromModel(event)
	s.afterWrite(ctx, constant.EventCreated, res.ID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, filter)
}

// GetByDateRange returns every event intersecting [start, end], bounds included.
func (s *serviceImpl) GetByDateRange(ctx context.Context, start, end time.Time) (res []dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDateRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if start.After(end) {
		msg := constant.RequestParamEndDate + " must not be before " + constant.RequestParamStartDate

		return []dto.EventResponse{}, failure.Validation(msg, map[string]string{constant.RequestParamEndDate: msg}) //nolint:wrapcheck
	}

	scope.SetAttribute(constant.RequestParamStartDate, start)
	scope.SetAttribute(constant.RequestParamEndDate, end)

	return s.list(ctx, gDto.QueryParams{}, model.OverlapFilter(start, end))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.EventResponse, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	var res []dto.EventResponse
	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for calendar events")

		return res, nil
	}

	events, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get calendar events")

		return []dto.EventResponse{}, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res = dto.FromModels(events)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return res, failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	event, err := s.repo.Get(ctx, shared.FilterByID(objectID))
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get calendar event")

		return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res.FromModel(event)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar event to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.EventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	matched, err := s.repo.Update(ctx, shared.TransformFields(req.ToUpdate()), shared.FilterByID(objectID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update calendar event")

		return failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	if !matched {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	s.afterWrite(ctx, constant.EventUpdated, id, req)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	deleted, err := s.repo.Delete(ctx, shared.FilterByID(objectID))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete calendar event")

		return failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	if !deleted {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	s.afterWrite(ctx, constant.EventDeleted, id, nil)

	return nil
}

// SyncGoogle pulls the primary Google calendar and upserts every event by its Google id.
// Events that fail the event schema after mapping, such as an end not after the start, are counted
// as fetched but not synced.
func (s *serviceImpl) SyncGoogle(ctx context.Context, req dto.SyncRequest) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncGoogle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	timeMin, timeMax, err := syncWindow(req)
	if err != nil {
		return res, err
	}

	events, err := s.google.ListEvents(ctx, googlecalendar.Credentials{
		ClientID:     req.Credentials.ClientID,
		ClientSecret: req.Credentials.ClientSecret,
		RedirectURI:  req.Credentials.RedirectURI,
		AccessToken:  req.Token.AccessToken,
		RefreshToken: req.Token.RefreshToken,
		Expiry:       req.Token.ExpiresAt,
	}, timeMin, timeMax)
	if errors.Is(err, googlecalendar.ErrUnauthorized) {
		log.Warn().Err(err).Msg("google calendar rejected sync credentials")

		return res, failure.Unauthorized(err.Error()) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to fetch google calendar events")

		return res, failure.ExternalAPI(googleCalendarService, err) //nolint:wrapcheck
	}

	res.Fetched = len(events)

	for _, item := range events {
		event, mapErr := fromGoogle(item)
		if mapErr != nil {
			log.Warn().Err(mapErr).Str("externalID", item.ID).Msg("skipping invalid google event")

			continue
		}

		update := shared.TransformFields(event)
		update = append(update, bson.E{Key: "$setOnInsert", Value: bson.D{{Key: constant.FieldCreatedAt, Value: timezone.Now()}}})

		filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
		filter.Add(gDto.Filter{Field: model.FieldExternalID, Operator: gDto.FilterOperatorEq, Value: event.ExternalID})

		if _, err = s.repo.Upsert(ctx, update, filter); err != nil {
			log.Error().Err(err).Str("externalID", item.ID).Int("synced", res.Synced).Msg("failed to upsert google event")

			return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
		}

		res.Synced++
	}

	log.Info().Int("fetched", res.Fetched).Int("synced", res.Synced).Msg("google calendar synced")

	if res.Synced > 0 {
		s.afterSync(ctx, res)
	}

	return res, nil
}

func syncWindow(req dto.SyncRequest) (time.Time, time.Time, error) {
	now := timezone.Now()
	timeMin := now.AddDate(0, 0, -syncLookBehindDays)
	timeMax := now.AddDate(0, 0, syncLookAheadDays)

	if req.TimeMin != nil {
		timeMin = *req.TimeMin
	}

	if req.TimeMax != nil {
		timeMax = *req.TimeMax
	}

	if !timeMin.Before(timeMax) {
		msg := "time_max must be after time_min"

		return timeMin, timeMax, failure.Validation(msg, map[string]string{"time_max": msg}) //nolint:wrapcheck
	}

	return timeMin, timeMax, nil
}

// fromGoogle maps a Google event onto the local schema. Text longer than the schema allows is cut
// to fit; anything still failing validation, such as an empty interval, is returned as an error.
func fromGoogle(item googlecalendar.Event) (model.CalendarEvent, error) {
	title := item.Summary
	if strings.TrimSpace(title) == "" {
		title = untitledEvent
	}

	req := dto.EventRequest{
		Title:          truncate(title, maxTitleLength),
		Description:    truncate(item.Description, maxDescriptionLength),
		StartTime:      item.Start,
		EndTime:        item.End,
		Location:       truncate(item.Location, maxLocationLength),
		IsAllDay:       item.AllDay,
		RecurrenceRule: item.Recurrence,
		Attendees:      item.Attendees,
		Color:          item.Color,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return model.CalendarEvent{}, err //nolint:wrapcheck
	}

	event := req.ToUpdate()
	event.ExternalID = item.ID
	event.Source = model.SourceGoogle

	return event, nil
}

// truncate cuts value to at most limit runes.
func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}

	return string([]rune(value)[:limit])
}

func (s *serviceImpl) afterWrite(ctx context.Context, eventType, id string, data any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete calendar event cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.PublishChange(c, s.kafka, s.cfg.Kafka.Topic, gDto.ChangeEvent{
			Type:     eventType,
			Resource: model.EntityName,
			ID:       id,
			Data:     data,
		})
	}()
}

// afterSync drops every cached event read, since the upserted ids are not known here.
func (s *serviceImpl) afterSync(ctx context.Context, res dto.SyncResponse) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetEvent)
		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.PublishChange(c, s.kafka, s.cfg.Kafka.Topic, gDto.ChangeEvent{
			Type:     constant.EventSynced,
			Resource: model.EntityName,
			Data:     res,
		})
	}()
}
