package actors

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoItem[T any] struct {
	value     T
	expiresAt time.Time
}

// memo is a bounded, expiring LRU keyed by folded name.
type memo[T any] struct {
	storage *lru.Cache[string, memoItem[T]]
	ttl     time.Duration
}

func newMemo[T any](size int, ttl time.Duration) *memo[T] {
	// lru.New only fails on a non-positive size
	c, err := lru.New[string, memoItem[T]](size)
	if err != nil {
		panic(err)
	}
	return &memo[T]{storage: c, ttl: ttl}
}

func (m *memo[T]) get(key string) (T, bool) {
	var zero T
	item, ok := m.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.expiresAt) {
		m.storage.Remove(key)
		return zero, false
	}
	return item.value, true
}

func (m *memo[T]) set(key string, value T) {
	m.storage.Add(key, memoItem[T]{value: value, expiresAt: time.Now().Add(m.ttl)})
}

func (m *memo[T]) purge() {
	m.storage.Purge()
}
