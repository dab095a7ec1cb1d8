package pairs

import "context"

// Store persists pair entries by key.
type Store interface {
	// Get returns the stored entry, or nil when the key is absent.
	Get(ctx context.Context, key Key) (*Entry, error)
	// Put inserts or replaces the entry for key.
	Put(ctx context.Context, key Key, entry Entry) error
}
