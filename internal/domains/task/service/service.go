package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Task=MockTaskService

import (
	"context"
	"fmt"
	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/internal/domains/task/model"
	"todoapi/internal/domains/task/model/dto"
	"todoapi/internal/domains/task/repository"
	"todoapi/shared"
	"todoapi/shared/cache"
	"todoapi/shared/constant"
	gDto "todoapi/shared/dto"
	"todoapi/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyGet = "task:get"

	msgNotFound        = "task item not found"
	msgOwnerHasNoTasks = "no task items found for owner"
)

type Task interface {
	GetAll(ctx context.Context) ([]dto.TaskItemResponse, error)
	Get(ctx context.Context, id int64) (dto.TaskItemResponse, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]dto.TaskItemResponse, error)
	Create(ctx context.Context, req dto.TaskItemRequest) (dto.TaskItemResponse, error)
	Update(ctx context.Context, id int64, req dto.TaskItemRequest) error
	Delete(ctx context.Context, id int64) error
	ToggleStatus(ctx context.Context, id int64) (dto.TaskItemResponse, error)
}

type serviceImpl struct {
	repo  repository.Task
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Task, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Task {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TaskItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get task items")

		return nil, fmt.Errorf("failed to get task items: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TaskItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(cacheKeyGet, id)

	if cacheErr := s.cache.Get(ctx, key, &res); cacheErr == nil {
		scope.AddEvent("cache hit")

		return res, nil
	} else if !cache.IsMiss(cacheErr) {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to read task item from cache")
	}

	task, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get task item")

		return res, fmt.Errorf("failed to get task item: %w", err)
	}

	if task.ID == 0 {
		return res, failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	res.FromModel(task)

	if cacheErr := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to cache task item")
	}

	return res, nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, ownerID int64) (res []dto.TaskItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("ownerId", ownerID).Msg("failed to get task items by owner")

		return nil, fmt.Errorf("failed to get task items by owner: %w", err)
	}

	// An unknown owner and an owner without tasks are reported the same way.
	if len(models) == 0 {
		return nil, failure.NotFound(msgOwnerHasNoTasks) // nolint:wrapcheck
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TaskItemRequest) (res dto.TaskItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task := req.ToModel()

	task.ID, err = s.repo.Insert(ctx, task)
	if err != nil {
		log.Error().Err(err).Msg("failed to create task item")

		return res, fmt.Errorf("failed to create task item: %w", err)
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TaskItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updatedFields := shared.TransformFields(req.ToModel(), model.FieldID)

	affected, err := s.repo.Update(ctx, updatedFields, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update task item")

		return fmt.Errorf("failed to update task item: %w", err)
	}

	if affected != 1 {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete task item")

		return fmt.Errorf("failed to delete task item: %w", err)
	}

	if affected != 1 {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ToggleStatus(ctx context.Context, id int64) (res dto.TaskItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.repo.Flip(ctx, model.FieldStatus, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle task item status")

		return res, fmt.Errorf("failed to toggle task item status: %w", err)
	}

	if task.ID == 0 {
		return res, failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	res.FromModel(task)

	return res, nil
}

// invalidate drops the cached copy of a task. The write has already committed, so a failure is only logged.
func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	key := shared.BuildCacheKey(cacheKeyGet, id)

	if err := s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to invalidate cached task item")
	}
}
