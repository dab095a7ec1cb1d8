package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/screenpairs/internal/tmdb"
)

// DetailTTL is how long pair-independent movie details stay cached.
const DetailTTL = 24 * time.Hour

const keyPrefixMovie = "tmdb:movie:"

// DetailsSource is the subset of the TMDB client used by the enricher.
type DetailsSource interface {
	MovieDetails(ctx context.Context, movieID int64) (*tmdb.MovieDetails, error)
}

// Characters maps an actor label (usually the queried name) to the character played.
type Characters map[string]string

// MovieDetail is the enriched view of a shared movie.
type MovieDetail struct {
	ID          int64        `json:"id"`
	Title       *string      `json:"title"`
	PosterPath  *string      `json:"poster_path"`
	ReleaseYear string       `json:"release_year"`
	Directors   []string     `json:"directors"`
	IMDbURL     *string      `json:"imdb_url"`
	Genres      []tmdb.Genre `json:"genres"`
	Characters  Characters   `json:"characters,omitempty"`
}

// Enricher provides cached access to movie details.
type Enricher struct {
	client DetailsSource
	cache  Cache
	log    *slog.Logger
}

// NewEnricher creates a new Enricher.
func NewEnricher(client DetailsSource, cache Cache, log *slog.Logger) *Enricher {
	return &Enricher{
		client: client,
		cache:  cache,
		log:    log,
	}
}

func movieKey(movieID int64) string {
	return fmt.Sprintf("%s%d", keyPrefixMovie, movieID)
}

// Enrich returns the details of movieID with characters attached.
// Returns nil when the details cannot be fetched; the failure is logged.
// Characters are never written to the cache.
func (e *Enricher) Enrich(ctx context.Context, movieID int64, characters Characters) *MovieDetail {
	key := movieKey(movieID)

	// Check cache first
	if data, ok := e.cache.Get(ctx, key); ok {
		var detail MovieDetail
		if err := json.Unmarshal(data, &detail); err == nil {
			e.log.Debug("cache hit for movie", "movie_id", movieID)
			detail.Characters = characters
			return &detail
		}
		e.log.Warn("failed to unmarshal cached movie", "movie_id", movieID)
	}

	e.log.Debug("cache miss for movie, calling API", "movie_id", movieID)

	movie, err := e.client.MovieDetails(ctx, movieID)
	if err != nil {
		e.log.Warn("could not fetch movie details", "movie_id", movieID, "error", err)
		return nil
	}

	detail := fromTMDB(movieID, movie)

	data, err := json.Marshal(detail)
	if err != nil {
		e.log.Warn("failed to marshal movie for cache", "movie_id", movieID, "error", err)
	} else if err := e.cache.Set(ctx, key, data, DetailTTL); err != nil {
		e.log.Warn("failed to cache movie", "movie_id", movieID, "error", err)
	}

	detail.Characters = characters
	return detail
}

func fromTMDB(movieID int64, m *tmdb.MovieDetails) *MovieDetail {
	genres := m.Genres
	if genres == nil {
		genres = []tmdb.Genre{}
	}
	return &MovieDetail{
		ID:          movieID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		ReleaseYear: m.ReleaseYear(),
		Directors:   m.Directors(),
		IMDbURL:     tmdb.IMDbTitleURL(m.ExternalIDs.IMDBID),
		Genres:      genres,
	}
}
