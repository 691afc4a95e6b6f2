package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"thorn/infras/otel"
	"thorn/infras/postgres"
	"thorn/internal/domains/blockedtime/model"
	gDto "thorn/shared/dto"
	gRepo "thorn/shared/repository"
)

type BlockedTime interface {
	Insert(ctx context.Context, model model.BlockedTime) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BlockedTime, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockedTime, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BlockedTime]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BlockedTime {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlockedTime](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
