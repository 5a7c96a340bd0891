package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"errors"
	"organise/config"
	"organise/infras/kafka"
	"organise/infras/otel"
	"organise/internal/domains/todo/model"
	"organise/internal/domains/todo/model/dto"
	"organise/internal/domains/todo/repository"
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
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	cacheGetTodo    = "todo:get"
	cacheGetAllTodo = "todo:gets"
)

type Todo interface {
	Create(ctx context.Context, req dto.TodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.TodoRequest, id string) error
	Delete(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, id string) error
	SetCompletion(ctx context.Context, id string, completed bool) error
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	todo := req.ToModel()
	todo.ID = bson.NewObjectID()

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res.FromModel(todo)
	s.afterWrite(ctx, constant.EventCreated, res.ID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTodo, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for todos")

		return res, nil
	}

	todos, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return []dto.TodoResponse{}, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res = dto.FromModels(todos)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save todos to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return res, failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetTodo, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for todo")

		return res, nil
	}

	todo, err := s.repo.Get(ctx, shared.FilterByID(objectID))
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get todo")

		return res, failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	res.FromModel(todo)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save todo to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.TodoRequest, id string) (err error) {
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

// ToggleCompletion flips completed in a single pipeline update.
func (s *serviceImpl) ToggleCompletion(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleCompletion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	toggle := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: model.FieldCompleted, Value: bson.D{{Key: "$not", Value: "$" + model.FieldCompleted}}},
			{Key: constant.FieldUpdatedAt, Value: timezone.Now()},
		}}},
	}

	if err = s.update(ctx, objectID, toggle); err != nil {
		return err
	}

	s.afterWrite(ctx, constant.EventUpdated, id, nil)

	return nil
}

func (s *serviceImpl) SetCompletion(ctx context.Context, id string, completed bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetCompletion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, ok := shared.ParseID(id)
	if !ok {
		return failure.InvalidIdentifier(model.EntityName, id) //nolint:wrapcheck
	}

	set := bson.D{{Key: "$set", Value: bson.D{
		{Key: model.FieldCompleted, Value: completed},
		{Key: constant.FieldUpdatedAt, Value: timezone.Now()},
	}}}

	if err = s.update(ctx, objectID, set); err != nil {
		return err
	}

	s.afterWrite(ctx, constant.EventUpdated, id, map[string]bool{model.FieldCompleted: completed})

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
		log.Error().Err(err).Str("id", id).Msg("failed to delete todo")

		return failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	if !deleted {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	s.afterWrite(ctx, constant.EventDeleted, id, nil)

	return nil
}

func (s *serviceImpl) update(ctx context.Context, id bson.ObjectID, update any) error {
	matched, err := s.repo.Update(ctx, update, shared.FilterByID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id.Hex()).Msg("failed to update todo")

		return failure.Store(model.EntityName, err) //nolint:wrapcheck
	}

	if !matched {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return nil
}

// afterWrite drops cached reads and publishes the change, detached from the request.
func (s *serviceImpl) afterWrite(ctx context.Context, eventType, id string, data any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTodo, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete todo cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTodo)
		shared.PublishChange(c, s.kafka, s.cfg.Kafka.Topic, gDto.ChangeEvent{
			Type:     eventType,
			Resource: model.EntityName,
			ID:       id,
			Data:     data,
		})
	}()
}
