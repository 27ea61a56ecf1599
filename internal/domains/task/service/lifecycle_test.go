package service_test

import (
	"context"
	"testing"
	"time"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/task/model/dto"
	"todoapi/internal/domains/task/service"
	"todoapi/shared/cache"
	"todoapi/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService() service.Task {
	return service.New(newMemoryRepository(), testConfig(), cache.NewNoopCache(), mocks.NewOtel())
}

func TestTaskLifecycle_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	due := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	first, err := svc.Create(ctx, dto.TaskItemRequest{ID: 77, Title: ptr("first"), DueDate: &due, OwnerID: 1})
	require.NoError(t, err)

	second, err := svc.Create(ctx, dto.TaskItemRequest{ID: 77, Title: ptr("second"), OwnerID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, int64(77), first.ID)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestTaskLifecycle_UpdateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, dto.TaskItemRequest{Title: ptr("draft"), Description: ptr("d"), OwnerID: 1})
	require.NoError(t, err)

	replacement := dto.TaskItemRequest{ID: 500, Title: ptr("final"), Status: true, OwnerID: 2}
	require.NoError(t, svc.Update(ctx, created.ID, replacement))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, dto.TaskItemResponse{ID: created.ID, Title: ptr("final"), Status: true, OwnerID: 2}, got)
}

func TestTaskLifecycle_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	created, err := svc.Create(ctx, dto.TaskItemRequest{Title: ptr("gone"), OwnerID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, failure.IsNotFound(err))

	assert.True(t, failure.IsNotFound(svc.Delete(ctx, created.ID)))
	assert.True(t, failure.IsNotFound(svc.Update(ctx, created.ID, dto.TaskItemRequest{})))
}

func TestTaskLifecycle_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	for _, initial := range []bool{false, true} {
		created, err := svc.Create(ctx, dto.TaskItemRequest{Status: initial, OwnerID: 1})
		require.NoError(t, err)

		once, err := svc.ToggleStatus(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, !initial, once.Status)

		twice, err := svc.ToggleStatus(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, initial, twice.Status)
	}

	_, err := svc.ToggleStatus(ctx, 404)
	assert.True(t, failure.IsNotFound(err))
}

func TestTaskLifecycle_GetByOwner(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	a, err := svc.Create(ctx, dto.TaskItemRequest{Title: ptr("a"), OwnerID: 10})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.TaskItemRequest{Title: ptr("b"), OwnerID: 20})
	require.NoError(t, err)

	tasks, err := svc.GetByOwner(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []dto.TaskItemResponse{a}, tasks)

	_, unknownErr := svc.GetByOwner(ctx, 30)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, emptiedErr := svc.GetByOwner(ctx, 10)

	assert.True(t, failure.IsNotFound(unknownErr))
	assert.Equal(t, unknownErr.Error(), emptiedErr.Error())
}

func TestTaskLifecycle_GetAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()

	empty, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	for range 3 {
		_, err := svc.Create(ctx, dto.TaskItemRequest{OwnerID: 1})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)
}
