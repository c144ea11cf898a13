package sessioncache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCaches(t *testing.T) map[string]Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]Cache{
		"memory": NewMemoryCache(),
		"redis":  NewRedisCacheWithClient(client),
	}
}

func TestCacheRoundTrip(t *testing.T) {
	for name, cache := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			session := CachedSession{UserId: 42, ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second)}

			require.NoError(t, cache.Set(ctx, "hash-a", session, time.Hour))

			got, found, err := cache.Get(ctx, "hash-a")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, uint(42), got.UserId)
			assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))
		})
	}
}

func TestCacheMiss(t *testing.T) {
	for name, cache := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := cache.Get(context.Background(), "unknown")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestCacheDelete(t *testing.T) {
	for name, cache := range testCaches(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, cache.Set(ctx, "hash-a", CachedSession{UserId: 1}, time.Hour))
			require.NoError(t, cache.Delete(ctx, "hash-a"))

			_, found, err := cache.Get(ctx, "hash-a")
			require.NoError(t, err)
			assert.False(t, found)

			// Deleting a missing key is not an error.
			assert.NoError(t, cache.Delete(ctx, "hash-a"))
		})
	}
}
