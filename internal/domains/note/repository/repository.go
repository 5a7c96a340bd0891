package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"organise/infras/mongo"
	"organise/infras/otel"
	"organise/internal/domains/note/model"
	gDto "organise/shared/dto"
	gRepo "organise/shared/repository"
)

type Note interface {
	Insert(ctx context.Context, model model.Note) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Note, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Note, error)
	Update(ctx context.Context, update any, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Note]
}

func New(db *mongo.Connection, otel otel.Otel) Note {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Note](model.EntityName, model.CollectionName, db, otel),
	}
}
