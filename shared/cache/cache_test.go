package cache_test

import (
	"context"
	"fmt"
	"testing"
	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	enabled := &config.Config{}
	enabled.Cache.Enable = true

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	tests := []struct {
		name   string
		cfg    *config.Config
		client *redis.Client
	}{
		{
			name:   "disabled by config",
			cfg:    &config.Config{},
			client: client,
		},
		{
			name:   "enabled without client",
			cfg:    enabled,
			client: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.New(tt.cfg, tt.client, mocks.NewOtel())

			assert.Equal(t, cache.NewNoopCache(), c)
		})
	}

	assert.NotEqual(t, cache.NewNoopCache(), cache.New(enabled, client, mocks.NewOtel()))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopCache()

	var value string

	assert.NoError(t, c.Save(ctx, "task:get:1", "x", 60))
	assert.True(t, cache.IsMiss(c.Get(ctx, "task:get:1", &value)))
	assert.Empty(t, value)
	assert.NoError(t, c.Delete(ctx, "task:get:1"))
	assert.NoError(t, c.Clear(ctx, "task"))
}

func TestIsMiss(t *testing.T) {
	assert.True(t, cache.IsMiss(fmt.Errorf("failed to get cache value: %w", cache.Nil)))
	assert.False(t, cache.IsMiss(assert.AnError))
	assert.False(t, cache.IsMiss(nil))
}
