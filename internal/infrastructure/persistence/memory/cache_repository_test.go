package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladlehq/ladle/internal/infrastructure/persistence/redis"
)

func TestCacheRepository_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "recipe:1", []byte(`{"title":"soup"}`), time.Minute))

	value, err := cache.Get(ctx, "recipe:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"title":"soup"}`), value)
}

func TestCacheRepository_MissingKey_ReturnsCacheMiss(t *testing.T) {
	cache := NewCacheRepository()

	_, err := cache.Get(context.Background(), "recipe:absent")

	assert.Equal(t, redis.ErrCacheMiss, err)
}

func TestCacheRepository_ZeroTTL_NeverExpires(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "recipe:1", []byte("v"), 0))

	value, err := cache.Get(ctx, "recipe:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestCacheRepository_ExpiredEntry_IsMissedAndEvicted(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository().(*CacheRepository)

	require.NoError(t, cache.Set(ctx, "recipe:1", []byte("v"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, err := cache.Get(ctx, "recipe:1")
	assert.Equal(t, redis.ErrCacheMiss, err)

	cache.mu.RLock()
	_, retained := cache.entries["recipe:1"]
	cache.mu.RUnlock()
	assert.False(t, retained, "expired entry should be evicted on read")
}

func TestCacheRepository_DeleteAndExists(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "recipe:1", []byte("v"), time.Minute))

	exists, err := cache.Exists(ctx, "recipe:1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Delete(ctx, "recipe:1"))

	exists, err = cache.Exists(ctx, "recipe:1")
	require.NoError(t, err)
	assert.False(t, exists)
}
