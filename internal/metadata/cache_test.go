package metadata

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/screenpairs/internal/migrations"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	require.NoError(t, migrations.Apply(context.Background(), db))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// backends returns every Cache implementation that can run without external services.
func backends(t *testing.T) map[string]Cache {
	return map[string]Cache{
		"sqlite": NewSQLiteCache(setupTestDB(t), testLogger()),
		"memory": NewMemoryCache(time.Minute),
	}
}

func TestCache_GetSet_RoundTrip(t *testing.T) {
	for name, cache := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			value := []byte(`{"id": 550, "title": "Fight Club"}`)

			require.NoError(t, cache.Set(ctx, "tmdb:movie:550", value, time.Hour))

			got, ok := cache.Get(ctx, "tmdb:movie:550")
			assert.True(t, ok, "expected to find cached value")
			assert.Equal(t, value, got)
		})
	}
}

func TestCache_Get_NotFound(t *testing.T) {
	for name, cache := range backends(t) {
		t.Run(name, func(t *testing.T) {
			got, ok := cache.Get(context.Background(), "nonexistent-key")
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestCache_Get_Expired(t *testing.T) {
	for name, cache := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, cache.Set(ctx, "expiring", []byte("v"), 50*time.Millisecond))

			_, ok := cache.Get(ctx, "expiring")
			assert.True(t, ok, "expected to find cached value before expiration")

			time.Sleep(100 * time.Millisecond)

			got, ok := cache.Get(ctx, "expiring")
			assert.False(t, ok, "expected not to find cached value after expiration")
			assert.Nil(t, got)
		})
	}
}

func TestCache_Set_Overwrite(t *testing.T) {
	for name, cache := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, cache.Set(ctx, "k", []byte("first"), time.Hour))
			require.NoError(t, cache.Set(ctx, "k", []byte("second"), time.Hour))

			got, ok := cache.Get(ctx, "k")
			assert.True(t, ok)
			assert.Equal(t, []byte("second"), got)
		})
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := NewSQLiteCache(setupTestDB(t), testLogger())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "delete-key", []byte("gone soon"), time.Hour))
	require.NoError(t, cache.Delete(ctx, "delete-key"))

	_, ok := cache.Get(ctx, "delete-key")
	assert.False(t, ok, "expected value to be deleted")

	// Deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, "nonexistent-key"))
}

func TestSQLiteCache_Prune(t *testing.T) {
	cache := NewSQLiteCache(setupTestDB(t), testLogger())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short-1", []byte("v1"), 50*time.Millisecond))
	require.NoError(t, cache.Set(ctx, "short-2", []byte("v2"), 50*time.Millisecond))
	require.NoError(t, cache.Set(ctx, "long", []byte("v3"), time.Hour))

	time.Sleep(100 * time.Millisecond)

	pruned, err := cache.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pruned)

	got, ok := cache.Get(ctx, "long")
	assert.True(t, ok)
	assert.Equal(t, []byte("v3"), got)

	pruned, err = cache.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pruned)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Hour))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Hour))
	assert.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
}

func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	// Nothing listens on port 1; every call fails fast with connection refused
	var logs bytes.Buffer
	cache := NewRedisCache(RedisOptions{Addr: "127.0.0.1:1"}, slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { _ = cache.Close() })
	ctx := context.Background()

	assert.Error(t, cache.Ping(ctx))
	assert.Error(t, cache.Set(ctx, "k", []byte("v"), time.Hour))

	got, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Contains(t, logs.String(), "movie cache read failed")
}

func TestSQLiteCache_MissIsSilent(t *testing.T) {
	var logs bytes.Buffer
	cache := NewSQLiteCache(setupTestDB(t), slog.New(slog.NewTextHandler(&logs, nil)))

	_, ok := cache.Get(context.Background(), "tmdb:movie:1")
	assert.False(t, ok)
	assert.Empty(t, logs.String())
}

func TestSQLiteCache_ReadFailureLogged(t *testing.T) {
	var logs bytes.Buffer
	db := setupTestDB(t)
	cache := NewSQLiteCache(db, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, db.Close())

	_, ok := cache.Get(context.Background(), "tmdb:movie:1")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "movie cache read failed")
	assert.Contains(t, logs.String(), "key=tmdb:movie:1")
}

func TestSQLiteCache_ExpiryFollowsClock(t *testing.T) {
	cache := NewSQLiteCache(setupTestDB(t), testLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "tmdb:movie:9", []byte("v"), time.Hour))

	now = now.Add(59 * time.Minute)
	_, ok := cache.Get(ctx, "tmdb:movie:9")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "tmdb:movie:9")
	assert.False(t, ok, "entry is stale once its TTL has fully elapsed")

	pruned, err := cache.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)
}
