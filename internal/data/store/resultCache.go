package store

import (
	"context"
	"time"

	"docuscan/internal/config"
	"docuscan/internal/data/redisStore"
	"docuscan/pkg/logz"
)

// ResultCache caches serialized extraction responses by file content hash.
// Values are opaque JSON so the cache never has to unmarshal the schema
// union. A cache, not storage of record: losing it only costs re-OCR.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, response []byte)
}

type RedisResultCache struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logz.Logger
}

func GetRedisResultCache(ctx context.Context) *RedisResultCache {
	s := redisStore.GetRedisStore(ctx)
	if s == nil {
		return nil
	}
	return &RedisResultCache{
		store:  s,
		ttl:    config.ResultCacheTTL,
		logger: logz.New("result_cache"),
	}
}

func (c *RedisResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.store.Get(ctx, key)
	if c.store.IsNil(err) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cache get failed", "key", key, "error", err)
		return nil, false
	}
	c.logger.Debug("cache hit", "key", key)
	return val, true
}

func (c *RedisResultCache) Set(ctx context.Context, key string, response []byte) {
	if err := c.store.Set(ctx, key, response, c.ttl); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

// TestResultCache wires a cache onto an injected store; for miniredis tests.
func TestResultCache(s *redisStore.Store) *RedisResultCache {
	return &RedisResultCache{
		store:  s,
		ttl:    config.ResultCacheTTL,
		logger: logz.New("test_result_cache"),
	}
}
