package store

import (
	"context"
	"sync"

	"docuscan/pkg/logz"
)

// InMemoryResultCache is the fallback when redis is offline. Unbounded by
// entry count but bounded in practice by the cache TTL never applying;
// restart clears it.
type InMemoryResultCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	logger  *logz.Logger
}

func InitInMemoryResultCache() *InMemoryResultCache {
	return &InMemoryResultCache{
		entries: make(map[string][]byte),
		logger:  logz.New("inmem_result_cache"),
	}
}

func (c *InMemoryResultCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[key]
	return val, ok
}

func (c *InMemoryResultCache) Set(_ context.Context, key string, response []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = response
	c.logger.Debug("cached result", "key", key)
}
