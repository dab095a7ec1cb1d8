package pairs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLiteStore keeps entries in the pair_cache table.
// Put is a single upsert, so concurrent writers never lose updates.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a store over db. The schema comes from migrations.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the entry stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key Key) (*Entry, error) {
	var payload, createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload, created_at FROM pair_cache WHERE key = ?", string(key),
	).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pair %s: %w", key, err)
	}

	var e Entry
	if err := json.Unmarshal([]byte(payload), &e.Result); err != nil {
		return nil, fmt.Errorf("decode pair %s: %w", key, err)
	}
	e.Timestamp = createdAt
	return &e, nil
}

// Put inserts or replaces the entry for key.
func (s *SQLiteStore) Put(ctx context.Context, key Key, entry Entry) error {
	payload, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("encode pair %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO pair_cache (key, payload, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		string(key), string(payload), entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("put pair %s: %w", key, err)
	}
	return nil
}

// Prune removes entries created before cutoff.
// Returns the number of entries removed.
func (s *SQLiteStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM pair_cache WHERE created_at < ?", cutoff.UTC().Format(TimestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("prune pairs: %w", err)
	}
	return result.RowsAffected()
}
