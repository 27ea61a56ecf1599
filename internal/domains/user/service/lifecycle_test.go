package service_test

import (
	"context"
	"testing"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/user/model/dto"
	"todoapi/internal/domains/user/service"
	"todoapi/shared/cache"
	"todoapi/shared/failure"
	"todoapi/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService() service.User {
	return service.New(newMemoryRepository(), testConfig(), cache.NewNoopCache(), password.NewWithSalt(testSalt), mocks.NewOtel())
}

func TestUserLifecycle_CreateThenSignIn(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, dto.CreateUserRequest{Username: ptr("alice"), Password: ptr("s3cret")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateUserRequest{Username: ptr("bob"), Password: ptr("s3cret")})
	require.NoError(t, err)

	verified, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("alice"), Password: ptr("s3cret")})
	require.NoError(t, err)
	require.True(t, verified.IsVerified)
	assert.Equal(t, created.ID, *verified.ID)

	wrongPassword, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("alice"), Password: ptr("S3cret")})
	require.NoError(t, err)

	unknownUser, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("mallory"), Password: ptr("s3cret")})
	require.NoError(t, err)

	assert.Equal(t, dto.SignInResponse{}, wrongPassword)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestUserLifecycle_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, dto.CreateUserRequest{Username: ptr("alice"), Password: ptr("old"), Email: ptr("a@x.io")})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, created.ID, dto.UpdateUserRequest{Username: ptr("alice"), Email: ptr("new@x.io")}))

	unchanged, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Password, unchanged.Password)
	assert.Equal(t, "new@x.io", *unchanged.Email)

	require.NoError(t, svc.Update(ctx, created.ID, dto.UpdateUserRequest{Username: ptr("alice"), Password: ptr("new")}))

	old, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("alice"), Password: ptr("old")})
	require.NoError(t, err)
	assert.False(t, old.IsVerified)

	fresh, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("alice"), Password: ptr("new")})
	require.NoError(t, err)
	assert.True(t, fresh.IsVerified)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Nil(t, got.Email)
}

func TestUserLifecycle_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, dto.CreateUserRequest{Username: ptr("gone"), Password: ptr("pw")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, failure.IsNotFound(err))
	assert.True(t, failure.IsNotFound(svc.Delete(ctx, created.ID)))

	users, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserLifecycle_EmptyPassword(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, dto.CreateUserRequest{Username: ptr("blank"), Password: ptr("")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Password)

	verified, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("blank"), Password: ptr("")})
	require.NoError(t, err)
	require.True(t, verified.IsVerified)
	assert.Equal(t, created.ID, *verified.ID)

	wrong, err := svc.SignIn(ctx, dto.SignInRequest{Username: ptr("blank"), Password: ptr("x")})
	require.NoError(t, err)
	assert.Equal(t, dto.SignInResponse{}, wrong)
}

func TestUserLifecycle_AbsentUsernameNeverSignsIn(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	_, err := svc.Create(ctx, dto.CreateUserRequest{Password: ptr("s3cret")})
	require.NoError(t, err)

	res, err := svc.SignIn(ctx, dto.SignInRequest{Password: ptr("s3cret")})
	require.NoError(t, err)
	assert.Equal(t, dto.SignInResponse{}, res)
}
