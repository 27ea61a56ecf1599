package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"errors"
	"fmt"
	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/internal/domains/user/model"
	"todoapi/internal/domains/user/model/dto"
	"todoapi/internal/domains/user/repository"
	"todoapi/shared"
	"todoapi/shared/cache"
	"todoapi/shared/constant"
	gDto "todoapi/shared/dto"
	"todoapi/shared/failure"
	"todoapi/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser = "user:get"

	msgNotFound = "user not found"
)

type User interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id int64) (dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.SignInResponse, error)
}

type serviceImpl struct {
	repo   repository.User
	cfg    *config.Config
	cache  cache.RedisCache
	hasher password.Hasher
	otel   otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, hasher password.Hasher, otel otel.Otel) User {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		hasher: hasher,
		otel:   otel,
	}
}

func filterByID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// hash digests a plaintext credential. An absent password is a client error.
func (s *serviceImpl) hash(plaintext *string) (string, error) {
	digest, err := s.hasher.Hash(plaintext)
	if errors.Is(err, password.ErrMissingPassword) {
		return "", failure.PasswordRequired
	}

	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return digest, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(cacheGetUser, id)

	if cacheErr := s.cache.Get(ctx, key, &res); cacheErr == nil {
		scope.AddEvent("cache hit")

		return res, nil
	} else if !cache.IsMiss(cacheErr) {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to read user from cache")
	}

	user, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	res.FromModel(user)

	if cacheErr := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to cache user")
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	digest, err := s.hash(req.Password)
	if err != nil {
		return res, err
	}

	user := req.ToModel(digest)

	user.ID, err = s.repo.Insert(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updatedFields := shared.TransformFields(req.ToModel(), model.FieldID, model.FieldPassword)

	if req.Password != nil {
		digest, err := s.hash(req.Password)
		if err != nil {
			return err
		}

		updatedFields[model.FieldPassword] = digest
	}

	affected, err := s.repo.Update(ctx, updatedFields, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
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
		log.Error().Err(err).Int64("id", id).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	if affected != 1 {
		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// SignIn matches on username and digest together, so an unknown user and a wrong password look the same.
func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.SignInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	digest, err := s.hash(req.Password)
	if err != nil {
		return res, err
	}

	// A user without a username can never sign in.
	if req.Username == nil {
		return res, nil
	}

	credentials := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    *req.Username,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPassword,
				Operator: gDto.FilterOperatorEq,
				Value:    digest,
				Table:    model.TableName,
			},
		},
	}

	user, err := s.repo.Get(ctx, credentials)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user for sign in")

		return res, fmt.Errorf("failed to sign in: %w", err)
	}

	if user.ID == 0 {
		scope.AddEvent("credentials rejected")

		return res, nil
	}

	res.IsVerified = true
	res.ID = &user.ID

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	key := shared.BuildCacheKey(cacheGetUser, id)

	if err := s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to invalidate cached user")
	}
}
