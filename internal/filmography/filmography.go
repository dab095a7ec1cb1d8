// Package filmography fetches and indexes actors' movie credits.
package filmography

import (
	"context"
	"slices"

	"github.com/vmunix/screenpairs/internal/tmdb"
)

// UnknownCharacter is reported when a credit has no character name.
const UnknownCharacter = "N/A"

// CreditsSource is the subset of the TMDB client used by the fetcher.
type CreditsSource interface {
	PersonMovieCredits(ctx context.Context, personID int64) (*tmdb.MovieCredits, error)
}

// Credit is one acting credit.
type Credit struct {
	MovieID     int64
	Title       *string
	ReleaseDate *string
	Character   *string
	GenreIDs    []int
}

// IsDocumentary reports whether the credit is tagged with the documentary genre.
func (c Credit) IsDocumentary() bool {
	return slices.Contains(c.GenreIDs, tmdb.GenreDocumentary)
}

// Fetcher retrieves filmographies.
type Fetcher struct {
	client CreditsSource
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client CreditsSource) *Fetcher {
	return &Fetcher{client: client}
}

// FetchCredits returns one Credit per cast entry of the actor's movie credits.
// Remote failures are returned unchanged.
func (f *Fetcher) FetchCredits(ctx context.Context, actorID int64) ([]Credit, error) {
	mc, err := f.client.PersonMovieCredits(ctx, actorID)
	if err != nil {
		return nil, err
	}

	credits := make([]Credit, 0, len(mc.Cast))
	for _, c := range mc.Cast {
		credits = append(credits, Credit{
			MovieID:     c.ID,
			Title:       c.Title,
			ReleaseDate: c.ReleaseDate,
			Character:   c.Character,
			GenreIDs:    c.GenreIDs,
		})
	}
	return credits, nil
}

// Index maps movie id to credit. When an actor has several credits on the same
// movie the first one wins.
type Index map[int64]Credit

// NewIndex builds an Index from credits.
func NewIndex(credits []Credit) Index {
	idx := make(Index, len(credits))
	for _, c := range credits {
		if _, ok := idx[c.MovieID]; !ok {
			idx[c.MovieID] = c
		}
	}
	return idx
}

// Character returns the character played in movieID, or UnknownCharacter.
func (idx Index) Character(movieID int64) string {
	c, ok := idx[movieID]
	if !ok || c.Character == nil {
		return UnknownCharacter
	}
	return *c.Character
}

// CommonIDs returns the movie ids present in both indexes, ascending.
func CommonIDs(a, b Index) []int64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	ids := make([]int64, 0)
	for id := range a {
		if _, ok := b[id]; ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
