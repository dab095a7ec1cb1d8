package pairs

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/screenpairs/internal/metadata"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCache(t *testing.T) (*Cache, *fakeClock, Store) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := NewFileStore(afero.NewMemMapFs(), testCachePath, testLogger())
	return NewCache(store, testLogger(), WithClock(clock.Now)), clock, store
}

func sampleResult() Result {
	return Result{
		Results:     []*metadata.MovieDetail{{ID: 2, ReleaseYear: "1998"}},
		Actor1Image: strPtr("/a.jpg"),
	}
}

func TestCache_StoreThenLookup_EitherOrder(t *testing.T) {
	cache, _, _ := newTestCache(t)
	ctx := context.Background()

	cache.Store(ctx, 5064, 31, sampleResult())

	got := cache.Lookup(ctx, 31, 5064)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.Results[0].ID)

	got = cache.Lookup(ctx, 5064, 31)
	require.NotNil(t, got)
}

func TestCache_StoresUTCTimestamp(t *testing.T) {
	cache, _, store := newTestCache(t)
	ctx := context.Background()

	cache.Store(ctx, 1, 2, sampleResult())

	entry, err := store.Get(ctx, "1_2")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:00:00Z", entry.Timestamp)
}

func TestCache_TTLBoundary(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		hit     bool
	}{
		{"fresh", 0, true},
		{"one second before expiry", TTL - time.Second, true},
		{"exactly at expiry", TTL, false},
		{"one second after expiry", TTL + time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, clock, _ := newTestCache(t)
			ctx := context.Background()

			cache.Store(ctx, 1, 2, sampleResult())
			clock.Advance(tt.elapsed)

			got := cache.Lookup(ctx, 1, 2)
			if tt.hit {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestCache_ExpiredEntryIsOverwritten(t *testing.T) {
	cache, clock, _ := newTestCache(t)
	ctx := context.Background()

	cache.Store(ctx, 1, 2, sampleResult())
	clock.Advance(TTL + time.Hour)
	require.Nil(t, cache.Lookup(ctx, 1, 2))

	cache.Store(ctx, 1, 2, Result{Results: []*metadata.MovieDetail{}})
	got := cache.Lookup(ctx, 1, 2)
	require.NotNil(t, got)
	assert.Empty(t, got.Results)
}

func TestCache_InvalidTimestampIsMiss(t *testing.T) {
	for _, ts := range []string{"", "yesterday", "2024-13-45T99:00:00Z"} {
		t.Run(ts, func(t *testing.T) {
			cache, _, store := newTestCache(t)
			ctx := context.Background()

			require.NoError(t, store.Put(ctx, "1_2", Entry{Result: sampleResult(), Timestamp: ts}))
			assert.Nil(t, cache.Lookup(ctx, 1, 2))
		})
	}
}

func TestCache_InvalidIDs(t *testing.T) {
	cache, _, store := newTestCache(t)
	ctx := context.Background()

	assert.Nil(t, cache.Lookup(ctx, 0, 2))

	// Store is a no-op for invalid ids
	cache.Store(ctx, -1, 2, sampleResult())
	entry, err := store.Get(ctx, "-1_2")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestCache_WriteFailureIsSwallowed(t *testing.T) {
	store := NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), testCachePath, testLogger())
	cache := NewCache(store, testLogger())

	assert.NotPanics(t, func() {
		cache.Store(context.Background(), 1, 2, sampleResult())
	})
	assert.Nil(t, cache.Lookup(context.Background(), 1, 2))
}

func TestCache_SQLiteStore(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewCache(NewSQLiteStore(setupTestDB(t)), testLogger(), WithClock(clock.Now))
	ctx := context.Background()

	cache.Store(ctx, 1, 2, sampleResult())
	require.NotNil(t, cache.Lookup(ctx, 2, 1))

	clock.Advance(TTL)
	assert.Nil(t, cache.Lookup(ctx, 1, 2))
}
