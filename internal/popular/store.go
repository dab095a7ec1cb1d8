// Package popular stores and precomputes well-known actor pairings.
package popular

import (
	"cmp"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vmunix/screenpairs/pkg/names"
)

var (
	// ErrNotFound is returned when a pair is not stored.
	ErrNotFound = errors.New("pair not found")
	// ErrSelfPair is returned when both ids are the same actor.
	ErrSelfPair = errors.New("pair needs two different actors")
)

// Movie is a shared movie summary kept with a pair.
type Movie struct {
	Title         string `json:"title"`
	ReleaseDate   string `json:"release_date"`
	IsDocumentary bool   `json:"is_documentary"`
}

// Pair is a stored actor pairing. Actor1ID is always the smaller id.
type Pair struct {
	Actor1ID          int64     `json:"actor1_id"`
	Actor2ID          int64     `json:"actor2_id"`
	Actor1Name        string    `json:"actor1_name"`
	Actor2Name        string    `json:"actor2_name"`
	CommonMoviesCount int       `json:"common_movies_count"`
	CommonMovies      []Movie   `json:"common_movies"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// normalize orders the pair so Actor1ID < Actor2ID.
func (p Pair) normalize() (Pair, error) {
	if p.Actor1ID == p.Actor2ID {
		return p, fmt.Errorf("%w: %d", ErrSelfPair, p.Actor1ID)
	}
	if p.Actor1ID > p.Actor2ID {
		p.Actor1ID, p.Actor2ID = p.Actor2ID, p.Actor1ID
		p.Actor1Name, p.Actor2Name = p.Actor2Name, p.Actor1Name
	}
	if p.CommonMovies == nil {
		p.CommonMovies = []Movie{}
	}
	return p, nil
}

// Store persists pairs in the actor_pairs table.
type Store struct {
	db *sql.DB
}

// NewStore creates a new pair store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Upsert inserts or fully replaces a pair, including its movie list.
func (s *Store) Upsert(ctx context.Context, p Pair) error {
	p, err := p.normalize()
	if err != nil {
		return err
	}
	movies, err := json.Marshal(p.CommonMovies)
	if err != nil {
		return fmt.Errorf("encode movies: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO actor_pairs (actor1_id, actor2_id, actor1_name, actor2_name, common_movies_count, common_movies, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(actor1_id, actor2_id) DO UPDATE SET
			actor1_name = excluded.actor1_name,
			actor2_name = excluded.actor2_name,
			common_movies_count = excluded.common_movies_count,
			common_movies = excluded.common_movies,
			updated_at = CURRENT_TIMESTAMP`,
		p.Actor1ID, p.Actor2ID, p.Actor1Name, p.Actor2Name, p.CommonMoviesCount, string(movies),
	)
	if err != nil {
		return fmt.Errorf("upsert pair %d_%d: %w", p.Actor1ID, p.Actor2ID, err)
	}
	return nil
}

// UpsertCount inserts a pair or updates its names and count, keeping any stored movie list.
func (s *Store) UpsertCount(ctx context.Context, p Pair) error {
	p, err := p.normalize()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO actor_pairs (actor1_id, actor2_id, actor1_name, actor2_name, common_movies_count, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(actor1_id, actor2_id) DO UPDATE SET
			actor1_name = excluded.actor1_name,
			actor2_name = excluded.actor2_name,
			common_movies_count = excluded.common_movies_count,
			updated_at = CURRENT_TIMESTAMP`,
		p.Actor1ID, p.Actor2ID, p.Actor1Name, p.Actor2Name, p.CommonMoviesCount,
	)
	if err != nil {
		return fmt.Errorf("upsert pair count %d_%d: %w", p.Actor1ID, p.Actor2ID, err)
	}
	return nil
}

const selectPair = `SELECT actor1_id, actor2_id, actor1_name, actor2_name, common_movies_count, common_movies, updated_at FROM actor_pairs`

// Get returns the pair for two actor ids in either order.
func (s *Store) Get(ctx context.Context, idA, idB int64) (*Pair, error) {
	if idA > idB {
		idA, idB = idB, idA
	}
	row := s.db.QueryRowContext(ctx, selectPair+" WHERE actor1_id = ? AND actor2_id = ?", idA, idB)
	p, err := scanPair(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns up to limit pairs, most shared movies first.
func (s *Store) List(ctx context.Context, limit int) ([]*Pair, error) {
	rows, err := s.db.QueryContext(ctx,
		selectPair+" ORDER BY common_movies_count DESC, actor1_name, actor2_name LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list pairs: %w", err)
	}
	defer rows.Close()
	return scanPairs(rows)
}

// Count returns the number of stored pairs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM actor_pairs").Scan(&n); err != nil {
		return 0, fmt.Errorf("count pairs: %w", err)
	}
	return n, nil
}

// FindByActor returns pairs in which one actor's name closely matches name,
// most shared movies first.
func (s *Store) FindByActor(ctx context.Context, name string, limit int) ([]*Pair, error) {
	rows, err := s.db.QueryContext(ctx, selectPair)
	if err != nil {
		return nil, fmt.Errorf("find pairs: %w", err)
	}
	defer rows.Close()

	all, err := scanPairs(rows)
	if err != nil {
		return nil, err
	}

	matched := make([]*Pair, 0)
	for _, p := range all {
		best := max(names.Similarity(name, p.Actor1Name), names.Similarity(name, p.Actor2Name))
		if names.ConfidenceOf(best) >= names.ConfidenceMedium {
			matched = append(matched, p)
		}
	}
	slices.SortStableFunc(matched, func(a, b *Pair) int {
		return cmp.Compare(b.CommonMoviesCount, a.CommonMoviesCount)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPair(row scanner) (*Pair, error) {
	var p Pair
	var movies string
	if err := row.Scan(&p.Actor1ID, &p.Actor2ID, &p.Actor1Name, &p.Actor2Name, &p.CommonMoviesCount, &movies, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(movies), &p.CommonMovies); err != nil {
		return nil, fmt.Errorf("decode movies for %d_%d: %w", p.Actor1ID, p.Actor2ID, err)
	}
	return &p, nil
}

func scanPairs(rows *sql.Rows) ([]*Pair, error) {
	pairs := make([]*Pair, 0)
	for rows.Next() {
		p, err := scanPair(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pairs: %w", err)
	}
	return pairs, nil
}
