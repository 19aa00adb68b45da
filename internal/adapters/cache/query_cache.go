package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/potenlab/the-potential-backend/internal/core/port"
)

// Config sizes the in-process query cache.
type Config struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
}

// DefaultConfig is sized for a single service instance.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          64,
		TTL:                time.Minute,
		EvictionPercentage: 10,
	}
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("cache config: capacity must be greater than 0")
	}
	if c.NumShards <= 0 {
		return fmt.Errorf("cache config: num shards must be greater than 0")
	}
	if c.TTL <= 0 {
		return fmt.Errorf("cache config: ttl must be greater than 0")
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return fmt.Errorf("cache config: eviction percentage must be between 1 and 100")
	}
	return nil
}

// QueryCache is a read-through cache over sturdyc. Identical concurrent
// fetches for one key are deduplicated by the client; invalidation is
// explicit, either per key or per key-family prefix.
type QueryCache struct {
	client *sturdyc.Client[any]
}

func NewQueryCache(cfg Config) (*QueryCache, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage)
	return &QueryCache{client: client}, nil
}

func (c *QueryCache) GetOrFetch(ctx context.Context, key string, fetch port.FetchFn) (any, error) {
	return c.client.GetOrFetch(ctx, key, sturdyc.FetchFn[any](fetch))
}

func (c *QueryCache) Delete(key string) {
	c.client.Delete(key)
}

// InvalidatePrefix drops every entry whose key starts with the prefix,
// which is how "invalidate all expert lists regardless of filters" works.
func (c *QueryCache) InvalidatePrefix(prefix string) {
	for _, key := range c.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			c.client.Delete(key)
		}
	}
}

// GetOrFetch is the typed wrapper over the untyped cache port.
func GetOrFetch[T any](ctx context.Context, cache port.QueryCachePort, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	result, err := cache.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
