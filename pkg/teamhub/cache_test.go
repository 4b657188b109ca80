package teamhub_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(10)

		entry := &teamhub.CacheEntry{
			Data:     []byte(`{"id":1}`),
			ETag:     `"v1"`,
			StoredAt: time.Now(),
		}
		require.NoError(t, cache.Set(ctx, "key1", entry))

		got, err := cache.Get(ctx, "key1")
		require.NoError(t, err)
		assert.Equal(t, entry.Data, got.Data)
		assert.Equal(t, `"v1"`, got.ETag)
	})

	t.Run("get nonexistent key", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(10)

		_, err := cache.Get(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, teamhub.ErrCacheKeyNotFound)
		assert.Contains(t, err.Error(), "key not found")
	})

	t.Run("get expired entry", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(10)

		entry := &teamhub.CacheEntry{
			Data:      []byte("stale"),
			ETag:      `"old"`,
			StoredAt:  time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		require.NoError(t, cache.Set(ctx, "key1", entry))

		_, err := cache.Get(ctx, "key1")
		require.Error(t, err)
		assert.ErrorIs(t, err, teamhub.ErrCacheEntryStale)

		// Expired entries are evicted on lookup.
		assert.False(t, cache.Has(ctx, "key1"))
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("overwrite existing key", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(10)

		require.NoError(t, cache.Set(ctx, "key1", &teamhub.CacheEntry{Data: []byte("one"), ETag: `"v1"`}))
		require.NoError(t, cache.Set(ctx, "key1", &teamhub.CacheEntry{Data: []byte("two"), ETag: `"v2"`}))

		got, err := cache.Get(ctx, "key1")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got.Data)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(10)

		require.NoError(t, cache.Set(ctx, "key1", &teamhub.CacheEntry{Data: []byte("data")}))
		require.NoError(t, cache.Delete(ctx, "key1"))

		_, err := cache.Get(ctx, "key1")
		assert.ErrorIs(t, err, teamhub.ErrCacheKeyNotFound)

		// Deleting a missing key is not an error.
		assert.NoError(t, cache.Delete(ctx, "missing"))
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(10)

		for i := 0; i < 5; i++ {
			key := fmt.Sprintf("key%d", i)
			require.NoError(t, cache.Set(ctx, key, &teamhub.CacheEntry{Data: []byte(key)}))
		}
		require.Equal(t, 5, cache.Len())

		require.NoError(t, cache.Clear(ctx))
		assert.Equal(t, 0, cache.Len())
		assert.False(t, cache.Has(ctx, "key0"))
	})

	t.Run("lru eviction at capacity", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(3)

		for i := 1; i <= 3; i++ {
			key := fmt.Sprintf("key%d", i)
			require.NoError(t, cache.Set(ctx, key, &teamhub.CacheEntry{Data: []byte(key)}))
		}

		// Touch key1 so key2 becomes the least recently used.
		_, err := cache.Get(ctx, "key1")
		require.NoError(t, err)

		require.NoError(t, cache.Set(ctx, "key4", &teamhub.CacheEntry{Data: []byte("key4")}))

		assert.Equal(t, 3, cache.Len())
		assert.True(t, cache.Has(ctx, "key1"))
		assert.False(t, cache.Has(ctx, "key2"))
		assert.True(t, cache.Has(ctx, "key3"))
		assert.True(t, cache.Has(ctx, "key4"))
	})

	t.Run("unbounded when max size is zero", func(t *testing.T) {
		t.Parallel()

		cache := teamhub.NewMemoryCache(0)

		for i := 0; i < 100; i++ {
			key := fmt.Sprintf("key%d", i)
			require.NoError(t, cache.Set(ctx, key, &teamhub.CacheEntry{Data: []byte(key)}))
		}

		assert.Equal(t, 100, cache.Len())
	})
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		key1 := teamhub.CacheKey("https://api.teamhub.io/1/projects.json", "token-a")
		key2 := teamhub.CacheKey("https://api.teamhub.io/1/projects.json", "token-a")
		assert.Equal(t, key1, key2)
	})

	t.Run("varies by url and query string", func(t *testing.T) {
		t.Parallel()

		base := teamhub.CacheKey("https://api.teamhub.io/1/projects.json", "token-a")
		other := teamhub.CacheKey("https://api.teamhub.io/1/todos.json", "token-a")
		withQuery := teamhub.CacheKey("https://api.teamhub.io/1/projects.json?status=archived", "token-a")

		assert.NotEqual(t, base, other)
		assert.NotEqual(t, base, withQuery)
	})

	t.Run("partitioned by credential", func(t *testing.T) {
		t.Parallel()

		url := "https://api.teamhub.io/1/projects.json"

		assert.NotEqual(t, teamhub.CacheKey(url, "token-a"), teamhub.CacheKey(url, "token-b"))
		assert.NotEqual(t, teamhub.CacheKey(url, "token-a"), teamhub.CacheKey(url, ""))
	})

	t.Run("does not embed the credential", func(t *testing.T) {
		t.Parallel()

		key := teamhub.CacheKey("https://api.teamhub.io/1/projects.json", "super-secret-token")
		assert.NotContains(t, key, "super-secret-token")
	})
}

func TestCacheEntryExpired(t *testing.T) {
	t.Parallel()

	t.Run("zero expiry never expires", func(t *testing.T) {
		t.Parallel()

		entry := &teamhub.CacheEntry{StoredAt: time.Now().Add(-24 * time.Hour)}
		assert.False(t, entry.Expired())
	})

	t.Run("future expiry", func(t *testing.T) {
		t.Parallel()

		entry := &teamhub.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}
		assert.False(t, entry.Expired())
	})

	t.Run("past expiry", func(t *testing.T) {
		t.Parallel()

		entry := &teamhub.CacheEntry{ExpiresAt: time.Now().Add(-time.Minute)}
		assert.True(t, entry.Expired())
	})
}
