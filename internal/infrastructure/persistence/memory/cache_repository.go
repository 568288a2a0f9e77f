// Package memory provides an in-process cache repository used when
// Redis is disabled, typically in local development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ladlehq/ladle/internal/infrastructure/persistence/redis"
	"github.com/ladlehq/ladle/internal/ports/outbound"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository is a map-backed cache with per-key TTL
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCacheRepository creates a new in-memory cache repository
func NewCacheRepository() outbound.CacheRepository {
	return &CacheRepository{
		entries: make(map[string]entry),
	}
}

// Get retrieves a value, honoring expiry. Expired entries are deleted on
// read so a long-running process does not accumulate dead keys.
func (c *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, redis.ErrCacheMiss
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; Set may have refreshed the key.
		if cur, ok := c.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, redis.ErrCacheMiss
	}

	return e.value, nil
}

// Set stores a value with TTL. A zero TTL means no expiry.
func (c *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}

// Delete removes a value
func (c *CacheRepository) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Exists checks if an unexpired key is present
func (c *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.Get(ctx, key)
	if err != nil {
		return false, nil
	}
	return true, nil
}
