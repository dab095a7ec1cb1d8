// Package metadata provides caching and enrichment of TMDB movie details.
package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Cache is a transient key/value store for serialized API responses.
// Get reports a miss for absent, expired or unreadable entries.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// SQLiteCache keeps movie details in the metadata_cache table so they
// survive restarts. Expired rows are invisible to Get and removed by Prune.
type SQLiteCache struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// NewSQLiteCache creates a cache over the metadata_cache table.
func NewSQLiteCache(db *sql.DB, log *slog.Logger) *SQLiteCache {
	return &SQLiteCache{
		db:  db,
		log: log,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the value for key while it is fresh. Read failures are logged
// and reported as a miss.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool) {
	var (
		value     string
		expiresAt time.Time
	)
	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM metadata_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false
	case err != nil:
		c.log.Warn("movie cache read failed", "key", key, "error", err)
		return nil, false
	case !c.now().Before(expiresAt):
		return nil, false
	}
	return []byte(value), true
}

// Set stores value until ttl elapses, replacing any previous entry.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO metadata_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, string(value), c.now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("movie cache set %s: %w", key, err)
	}
	return nil
}

// Delete drops key. A missing key is not an error.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("movie cache delete %s: %w", key, err)
	}
	return nil
}

// Prune deletes expired rows and reports how many were removed.
func (c *SQLiteCache) Prune(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE expires_at <= ?", c.now())
	if err != nil {
		return 0, fmt.Errorf("movie cache prune: %w", err)
	}
	return res.RowsAffected()
}
