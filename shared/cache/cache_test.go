package cache_test

import (
	"context"
	"errors"
	"organise/infras/otel/mocks"
	"organise/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_WithoutClient(t *testing.T) {
	redisCache := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, redisCache.Save(ctx, "todo:get:1", map[string]string{"a": "b"}, 60))

	var value map[string]string
	err := redisCache.Get(ctx, "todo:get:1", &value)
	assert.True(t, errors.Is(err, cache.Nil))
	assert.Nil(t, value)

	assert.NoError(t, redisCache.Delete(ctx, "todo:get:1"))
	assert.NoError(t, redisCache.Clear(ctx, "todo:*"))

	count, err := redisCache.Incr(ctx, "limiter:127.0.0.1:curl", 60)
	assert.NoError(t, err)
	assert.Zero(t, count)
}
