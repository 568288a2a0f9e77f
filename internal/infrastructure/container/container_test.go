package container

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ladlehq/ladle/internal/infrastructure/config"
	redisrepo "github.com/ladlehq/ladle/internal/infrastructure/persistence/redis"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Ladle", Version: "test"},
	}
}

func TestNewRedisClient_Disabled_ReturnsNil(t *testing.T) {
	cfg := testConfig()

	client, err := NewRedisClient(cfg, zap.NewNop())

	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewCacheRepository_NilClient_FallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository(nil, zap.NewNop())

	_, err := cache.Get(ctx, "recipe:absent")
	assert.Equal(t, redisrepo.ErrCacheMiss, err)

	require.NoError(t, cache.Set(ctx, "recipe:1", []byte("v"), time.Minute))
	value, err := cache.Get(ctx, "recipe:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestNewHealthCheck_RedisDisabled_RegistersDatabaseOnly(t *testing.T) {
	hc := NewHealthCheck(testConfig(), zap.NewNop(), nil, nil)

	assert.Equal(t, []string{"database"}, hc.CheckerNames())
}

func TestNewHealthCheck_RedisEnabled_RegistersRedisChecker(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	defer client.Close()

	hc := NewHealthCheck(testConfig(), zap.NewNop(), nil, client)

	assert.Equal(t, []string{"database", "redis"}, hc.CheckerNames())
}
