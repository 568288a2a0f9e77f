package healthcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHealthCheck(t *testing.T) *HealthCheck {
	t.Helper()
	return New("test", zap.NewNop())
}

func TestHealthCheck_NoCheckers_ReportsHealthy(t *testing.T) {
	hc := newTestHealthCheck(t)

	response := hc.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "test", response.Version)
	assert.Empty(t, response.Checks)
}

func TestHealthCheck_UnhealthyChecker_DegradesOverallStatus(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.Register("failing", NewCustomChecker("failing", func(ctx context.Context) (Status, string, interface{}) {
		return StatusUnhealthy, "dependency down", nil
	}))
	hc.Register("passing", NewCustomChecker("passing", func(ctx context.Context) (Status, string, interface{}) {
		return StatusHealthy, "", nil
	}))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Len(t, response.Checks, 2)
}

func TestHealthCheck_DegradedChecker_DoesNotMaskUnhealthy(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.Register("unhealthy", NewCustomChecker("unhealthy", func(ctx context.Context) (Status, string, interface{}) {
		return StatusUnhealthy, "", nil
	}))
	hc.Register("degraded", NewCustomChecker("degraded", func(ctx context.Context) (Status, string, interface{}) {
		return StatusDegraded, "", nil
	}))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
}

func TestHealthCheck_CachesResults(t *testing.T) {
	hc := newTestHealthCheck(t)

	calls := 0
	hc.Register("counted", NewCustomChecker("counted", func(ctx context.Context) (Status, string, interface{}) {
		calls++
		return StatusHealthy, "", nil
	}))

	hc.Check(context.Background())
	hc.Check(context.Background())

	assert.Equal(t, 1, calls)
}

func TestHealthCheck_CacheExpires(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.SetCacheTTL(time.Millisecond)

	calls := 0
	hc.Register("counted", NewCustomChecker("counted", func(ctx context.Context) (Status, string, interface{}) {
		calls++
		return StatusHealthy, "", nil
	}))

	hc.Check(context.Background())
	time.Sleep(5 * time.Millisecond)
	hc.Check(context.Background())

	assert.Equal(t, 2, calls)
}

func TestHealthCheck_CheckerNames_SortedRegistrationList(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.Register("redis", NewCustomChecker("redis", func(ctx context.Context) (Status, string, interface{}) {
		return StatusHealthy, "", nil
	}))
	hc.Register("database", NewCustomChecker("database", func(ctx context.Context) (Status, string, interface{}) {
		return StatusHealthy, "", nil
	}))

	assert.Equal(t, []string{"database", "redis"}, hc.CheckerNames())
}

func TestRedisChecker_UnreachableServer_ReportsUnhealthy(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	hc := newTestHealthCheck(t)
	hc.Register("redis", NewRedisChecker(client))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
	require.Len(t, response.Checks, 1)
	assert.Equal(t, "redis", response.Checks[0].Name)
	assert.NotEmpty(t, response.Checks[0].Message)
}

func TestHandler_UnhealthyReturns503(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.Register("failing", NewCustomChecker("failing", func(ctx context.Context) (Status, string, interface{}) {
		return StatusUnhealthy, "down", nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	hc.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}

func TestLivenessHandler_AlwaysOK(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.Register("failing", NewCustomChecker("failing", func(ctx context.Context) (Status, string, interface{}) {
		return StatusUnhealthy, "down", nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()

	hc.LivenessHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessHandler_NotReadyUntilHealthy(t *testing.T) {
	hc := newTestHealthCheck(t)
	hc.SetCacheTTL(0)

	healthy := false
	hc.Register("toggled", NewCustomChecker("toggled", func(ctx context.Context) (Status, string, interface{}) {
		if healthy {
			return StatusHealthy, "", nil
		}
		return StatusUnhealthy, "starting", nil
	}))

	rec := httptest.NewRecorder()
	hc.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	healthy = true
	rec = httptest.NewRecorder()
	hc.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
