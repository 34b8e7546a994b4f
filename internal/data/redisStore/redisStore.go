package redisStore

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"docuscan/internal/config"
	"docuscan/pkg/logz"
)

var (
	instance *Store
	mu       sync.Mutex
	logger   *logz.Logger
)

// Store is a thin wrapper over one redis DB, used as the extraction result
// cache. Nil is returned when redis is offline; the caller falls back to
// the in-memory cache.
type Store struct {
	client *redis.Client
}

func GetRedisStore(ctx context.Context) *Store {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	if logger == nil {
		logger = logz.New("redis_store")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = config.RedisAddr
	}
	client := redis.NewClient(&redis.Options{
		Addr:                  addr,
		Password:              config.RedisPassword,
		DB:                    config.RedisResultCache,
		ContextTimeoutEnabled: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("redis is offline", "addr", addr, "error", err)
		return nil
	}

	logger.Info("redis result cache connected", "addr", addr)
	instance = &Store{client: client}
	go closeOnDone(ctx, instance)
	return instance
}

func closeOnDone(ctx context.Context, s *Store) {
	<-ctx.Done()
	logger.Info("closing redis result cache")
	if err := s.client.Close(); err != nil {
		logger.Error("error closing redis client", "error", err)
	}
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, key).Bytes()
}

func (s *Store) Del(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *Store) IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// NewTestStore wraps an arbitrary client; used with miniredis in tests.
func NewTestStore(client *redis.Client) *Store {
	return &Store{client: client}
}
