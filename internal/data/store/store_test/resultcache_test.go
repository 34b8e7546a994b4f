package store_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"docuscan/internal/data/redisStore"
	"docuscan/internal/data/store"
)

func TestRedisResultCache_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := store.TestResultCache(redisStore.NewTestStore(client))

	ctx := context.Background()
	key := "sha256-of-some-upload:INVOICE"
	payload := []byte(`{"documentType":"INVOICE","confidence":0.9}`)

	t.Run("set and get roundtrip", func(t *testing.T) {
		cache.Set(ctx, key, payload)

		got, ok := cache.Get(ctx, key)
		if !ok {
			t.Fatal("value was cached but not found")
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("payload mismatch: got %s, want %s", got, payload)
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		if _, ok := cache.Get(ctx, "no-such-hash"); ok {
			t.Error("expected miss for unknown key")
		}
	})

	t.Run("entries expire", func(t *testing.T) {
		cache.Set(ctx, "expiring", payload)
		mr.FastForward(2 * time.Hour) // past the TTL

		if _, ok := cache.Get(ctx, "expiring"); ok {
			t.Error("entry should have expired")
		}
	})
}

func TestInMemoryResultCache(t *testing.T) {
	cache := store.InitInMemoryResultCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Error("expected miss on empty cache")
	}

	cache.Set(ctx, "k", []byte("v1"))
	cache.Set(ctx, "k", []byte("v2"))

	got, ok := cache.Get(ctx, "k")
	if !ok || string(got) != "v2" {
		t.Errorf("expected last write to win, got %q (found=%t)", got, ok)
	}
}

func TestInMemoryResultCache_Concurrent(t *testing.T) {
	cache := store.InitInMemoryResultCache()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func() {
			cache.Set(ctx, "race", []byte("x"))
			cache.Get(ctx, "race")
			done <- struct{}{}
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}
}
