package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"organise/infras/mongo"
	"organise/infras/otel"
	"organise/internal/domains/calendar/model"
	gDto "organise/shared/dto"
	gRepo "organise/shared/repository"
)

type CalendarEvent interface {
	Insert(ctx context.Context, model model.CalendarEvent) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.CalendarEvent, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CalendarEvent, error)
	Update(ctx context.Context, update any, filter gDto.FilterGroup) (bool, error)
	Upsert(ctx context.Context, update any, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CalendarEvent]
}

func New(db *mongo.Connection, otel otel.Otel) CalendarEvent {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CalendarEvent](model.EntityName, model.CollectionName, db, otel),
	}
}
