package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

var _ Cache = (*Local)(nil)

// Local is an in-process cache, used when the service runs without redis.
type Local struct {
	cache *freecache.Cache
}

// NewLocal creates a local cache; sizeBytes below 512KB is raised by freecache.
func NewLocal(sizeBytes int) *Local {
	return &Local{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (c *Local) Get(_ context.Context, key string) ([]byte, error) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("local cache get %s: %w", key, err)
	}
	return val, nil
}

func (c *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	expireSeconds := int(ttl.Seconds())
	if ttl > 0 && expireSeconds == 0 {
		expireSeconds = 1
	}
	if err := c.cache.Set([]byte(key), value, expireSeconds); err != nil {
		return fmt.Errorf("local cache set %s: %w", key, err)
	}
	return nil
}

func (c *Local) Delete(_ context.Context, key string) error {
	c.cache.Del([]byte(key))
	return nil
}

func (c *Local) EntryCount() int64 {
	return c.cache.EntryCount()
}
