// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	recipeapp "github.com/ladlehq/ladle/internal/application/recipe"
	userapp "github.com/ladlehq/ladle/internal/application/user"
	"github.com/ladlehq/ladle/internal/infrastructure/config"
	"github.com/ladlehq/ladle/internal/infrastructure/http/server"
	gormrepo "github.com/ladlehq/ladle/internal/infrastructure/persistence/gorm"
	"github.com/ladlehq/ladle/internal/infrastructure/persistence/memory"
	redisrepo "github.com/ladlehq/ladle/internal/infrastructure/persistence/redis"
	"github.com/ladlehq/ladle/internal/ports/outbound"
	"github.com/ladlehq/ladle/pkg/healthcheck"
	"github.com/ladlehq/ladle/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(
	gormrepo.Connect,
)

// CacheModule provides the Redis client and the cache repository. The
// client is a separate graph node so the health checks can share it; it
// is nil when Redis is disabled and the in-process cache takes over.
var CacheModule = fx.Provide(
	NewRedisClient,
	NewCacheRepository,
)

// NewRedisClient connects to Redis when enabled, returning nil otherwise
func NewRedisClient(cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return redisrepo.NewClient(&cfg.Redis, log)
}

// NewCacheRepository selects the cache backend for the given client
func NewCacheRepository(client *redis.Client, log *zap.Logger) outbound.CacheRepository {
	if client == nil {
		log.Info("Redis disabled, using in-memory cache")
		return memory.NewCacheRepository()
	}
	return redisrepo.NewCacheRepository(client, log)
}

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewRecipeRepository,
	gormrepo.NewUserRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recipeapp.NewRecipeService,
	userapp.NewUserService,
)

// HealthModule provides health checks
var HealthModule = fx.Provide(
	NewHealthCheck,
)

// NewHealthCheck registers a checker for every wired dependency: the
// database always, Redis only when a client is connected.
func NewHealthCheck(cfg *config.Config, log *zap.Logger, db *gorm.DB, rdb *redis.Client) *healthcheck.HealthCheck {
	hc := healthcheck.New(cfg.App.Version, log)
	hc.Register("database", healthcheck.NewDatabaseChecker(db))
	if rdb != nil {
		hc.Register("redis", healthcheck.NewRedisChecker(rdb))
	}
	return hc
}

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Ladle",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Ladle")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			if rdb != nil {
				if err := rdb.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
