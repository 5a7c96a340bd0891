package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Note=MockNoteService

import (
	"context"
	"errors"
	"organise/config"
	"organise/infras/kafka"
	"organise/infras/otel"
	"organise/internal/domains/note/model"
	"organise/internal/domains/note/model/dto"
	"organise/internal/domains/note/repository"
	"organise/shared"
	"organise/shared/cache"
	"organise/shared/constant"
	gDto "organise/shared/dto"
	"organise/shared/failure"
	gRepo "organise/shared/repository"
	"organise/shared/timezone"
	"organise/shared/validator"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	cacheGetNote    = "note:get"
	cacheGetAllNote = "note:gets"
)

type Note interface {
	Create(ctx context.Context, req dto.NoteRequest) (dto.NoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.NoteResponse, error)
	Get(ctx context.Context, id string) (dto.NoteResponse, error)
	Update(ctx context.Context, req dto.NoteRequest, id string) error
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Note
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Note, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Note {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.NoteRequest) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	note := req.ToModel()
	note.ID = bson.NewObjectID()

	if err = s.repo.Insert(ctx, note); err != nil {
		log.Error().Err(err).Msg("failed to create note")

		return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res.FromModel(note)
	s.afterWrite(ctx, constant.EventCreated, res.ID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllNote, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for notes")

		return res, nil
	}

	notes, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notes")

		return []dto.NoteResponse{}, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res = dto.FromModels(notes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save notes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return res, failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetNote, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	note, err := s.repo.Get(ctx, shared.FilterByID(objectID))
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get note")

		return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res.FromModel(note)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save note to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.NoteRequest, id string) (err error) {
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

	if err = s.update(ctx, objectID, shared.TransformFields(req.ToUpdate())); err != nil {
		return err
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
		log.Error().Err(err).Str("id", id).Msg("failed to delete note")

		return failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	if !deleted {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	s.afterWrite(ctx, constant.EventDeleted, id, nil)

	return nil
}

// Archive marks a note archived. Archiving an archived note succeeds and changes nothing but updated_at.
func (s *serviceImpl) Archive(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.setArchived(ctx, id, true)
}

func (s *serviceImpl) Unarchive(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unarchive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.setArchived(ctx, id, false)
}

func (s *serviceImpl) setArchived(ctx context.Context, id string, archived bool) error {
	objectID, ok := shared.ParseID(id)
	if !ok {
		return failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	set := bson.D{{Key: "$set", Value: bson.D{
		{Key: model.FieldIsArchived, Value: archived},
		{Key: constant.FieldUpdatedAt, Value: timezone.Now()},
	}}}

	if err := s.update(ctx, objectID, set); err != nil {
		return err
	}

	s.afterWrite(ctx, constant.EventUpdated, id, map[string]bool{model.FieldIsArchived: archived})

	return nil
}

func (s *serviceImpl) update(ctx context.Context, id bson.ObjectID, update any) error {
	matched, err := s.repo.Update(ctx, update, shared.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id.Hex()).Msg("failed to update note")

		return failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	if !matched {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) afterWrite(ctx context.Context, eventType, id string, data any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetNote, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete note cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllNote)
		shared.PublishChange(c, s.kafka, s.cfg.Kafka.Topic, gDto.ChangeEvent{
			Type:     eventType,
			Resource: model.EntityName,
			ID:       id,
			Data:     data,
		})
	}()
}
