package repository

import (
	"context"
	"errors"
	"fmt"
	"organise/infras/mongo"
	"organise/infras/otel"
	"organise/shared/constant"
	"organise/shared/dto"
	"organise/shared/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongoDriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	ErrNotFound       = errors.New("document not found")
	errRequiredFilter = errors.New("required filter")
)

// Repository is typed CRUD over one collection. Every method issues exactly one store operation.
type Repository[T any] struct {
	collection *mongoDriver.Collection
	otel       otel.Otel
	entitas    string
}

func NewRepository[T any](entitasName, collectionName string, conn *mongo.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		collection: conn.Collection(collectionName),
		otel:       otl,
		entitas:    entitasName,
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.collection.Name())

	if _, err := repo.collection.InsertOne(ctx, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

// Get returns the first document matching filter, or ErrNotFound.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := repo.BuildQuery(ctx, filter)

	var model T

	err := repo.collection.FindOne(ctx, query).Decode(&model)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// GetAll returns matching documents in storage order unless params name a sort field.
// The result is never nil.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := repo.BuildQuery(ctx, filter)
	models := []T{}

	cursor, err := repo.collection.Find(ctx, query, FindOptions(params))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	if err = cursor.All(ctx, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return []T{}, fmt.Errorf("failed to decode all data (%s): %w", repo.entitas, err)
	}

	if models == nil {
		models = []T{}
	}

	return models, nil
}

// Update applies update (an update document or a mongo.Pipeline) to the first document matching
// filter. matched is false when no document matched; nothing is inserted in that case.
func (repo *Repository[T]) Update(ctx context.Context, update any, filter dto.FilterGroup) (matched bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := repo.BuildQuery(ctx, filter)
	if len(query) == 0 {
		return false, errRequiredFilter
	}

	result, err := repo.collection.UpdateOne(ctx, query, update)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return result.MatchedCount > 0, nil
}

// Upsert applies update to the document matching filter, inserting it when none matches.
// inserted reports which of the two happened.
func (repo *Repository[T]) Upsert(ctx context.Context, update any, filter dto.FilterGroup) (inserted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Upsert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := repo.BuildQuery(ctx, filter)
	if len(query) == 0 {
		return false, errRequiredFilter
	}

	result, err := repo.collection.UpdateOne(ctx, query, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to upsert data (%s): %w", repo.entitas, err)
	}

	return result.UpsertedCount > 0, nil
}

// Delete removes the first document matching filter. deleted is false when none matched.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (deleted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := repo.BuildQuery(ctx, filter)
	if len(query) == 0 {
		return false, errRequiredFilter
	}

	result, err := repo.collection.DeleteOne(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return result.DeletedCount > 0, nil
}

// BuildQuery renders filter and records it on the current span.
func (repo *Repository[T]) BuildQuery(ctx context.Context, filter dto.FilterGroup) bson.D {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.BuildQuery", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := filter.ToBSON()

	if rendered, err := bson.MarshalExtJSON(query, false, false); err == nil {
		scope.SetAttribute(constant.OtelQueryAttributeKey, string(rendered))
	}

	return query
}

// FindOptions maps pagination and sorting onto a find. With no limit every document is returned.
func FindOptions(params dto.QueryParams) *options.FindOptionsBuilder {
	opts := options.Find()

	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))
		opts.SetSkip(params.Skip())
	}

	if params.SortBy != "" {
		opts.SetSort(bson.D{{Key: params.SortBy, Value: params.SortOrder()}})
	}

	return opts
}
