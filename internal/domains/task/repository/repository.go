package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"todoapi/infras/otel"
	"todoapi/infras/postgres"
	"todoapi/internal/domains/task/model"
	gDto "todoapi/shared/dto"
	gRepo "todoapi/shared/repository"
)

type Task interface {
	Insert(ctx context.Context, model model.TaskItem) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.TaskItem, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.TaskItem, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Flip(ctx context.Context, column string, filter gDto.FilterGroup) (model.TaskItem, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TaskItem]
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TaskItem](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
