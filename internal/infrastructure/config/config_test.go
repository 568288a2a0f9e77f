package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoConfigFile_UsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Ladle", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "ladle", cfg.Database.Database)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_ConfigFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  name: Ladle
  environment: staging
server:
  port: 9090
database:
  driver: postgres
  database: ladle_staging
redis:
  enabled: true
  host: cache.internal
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "ladle_staging", cfg.Database.Database)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache.internal:6379", cfg.GetRedisAddr())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:      AppConfig{Name: "Ladle", Environment: "development"},
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Database: "ladle"},
		}
	}

	t.Run("ValidConfig_ShouldPass", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("MissingAppName_ShouldFail", func(t *testing.T) {
		cfg := base()
		cfg.App.Name = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("MissingDatabase_ShouldFail", func(t *testing.T) {
		cfg := base()
		cfg.Database.Database = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("PortOutOfRange_ShouldFail", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("ProductionWithoutJWTSecret_ShouldFail", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("ProductionWithJWTSecret_ShouldPass", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		cfg.Auth.JWTSecret = "super-secret"
		assert.NoError(t, cfg.Validate())
	})
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     5432,
			Username: "ladle",
			Password: "pw",
			Database: "ladle",
			SSLMode:  "disable",
		},
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=ladle password=pw dbname=ladle sslmode=disable",
		cfg.GetDSN(),
	)
}
