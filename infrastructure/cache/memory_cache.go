package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"playlist-grid/domain/repository"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps entries in process. Values are stored JSON encoded, like the Redis backend.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a cache whose expired entries are swept every cleanupInterval
func NewMemoryCache(cleanupInterval time.Duration) repository.ITransientCache {
	return &MemoryCache{cache: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	item, found := c.cache.Get(key)
	if !found {
		return false, nil
	}
	raw, ok := item.([]byte)
	if !ok {
		return false, fmt.Errorf("cache entry %s has unexpected type %T", key, item)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, raw, ttl)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}
