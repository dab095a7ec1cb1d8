package pairs

import (
	"context"
	"log/slog"
	"time"
)

// Cache applies key derivation and TTL expiry on top of a Store.
// Lookups and writes never fail from the caller's view.
type Cache struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock sets the time source (for testing).
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a cache over store.
func NewCache(store Store, log *slog.Logger, opts ...CacheOption) *Cache {
	c := &Cache{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the stored result for the pair, or nil when it is absent,
// expired, unreadable or the ids are invalid.
func (c *Cache) Lookup(ctx context.Context, idA, idB int64) *Result {
	key, err := DeriveKey(idA, idB)
	if err != nil {
		c.log.Warn("cannot derive pair key", "actor1_id", idA, "actor2_id", idB, "error", err)
		return nil
	}

	entry, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Error("pair cache read failed", "key", key, "error", err)
		return nil
	}
	if entry == nil {
		c.log.Info("pair cache miss", "key", key)
		return nil
	}

	created, ok := entry.createdAt()
	if !ok {
		c.log.Warn("pair cache entry has no valid timestamp", "key", key, "timestamp", entry.Timestamp)
		return nil
	}
	if c.now().Sub(created) >= TTL {
		c.log.Info("pair cache entry expired", "key", key, "created_at", entry.Timestamp)
		return nil
	}

	c.log.Info("pair cache hit", "key", key)
	result := entry.Result
	return &result
}

// Store records result for the pair stamped with the current time.
// Failures are logged and swallowed.
func (c *Cache) Store(ctx context.Context, idA, idB int64, result Result) {
	key, err := DeriveKey(idA, idB)
	if err != nil {
		c.log.Warn("cannot derive pair key", "actor1_id", idA, "actor2_id", idB, "error", err)
		return
	}

	entry := Entry{
		Result:    result,
		Timestamp: c.now().UTC().Format(TimestampLayout),
	}
	if err := c.store.Put(ctx, key, entry); err != nil {
		c.log.Error("pair cache write failed", "key", key, "error", err)
		return
	}
	c.log.Info("pair cache stored", "key", key, "results", len(result.Results))
}
