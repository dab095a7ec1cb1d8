// Package actors resolves free-text actor names to TMDB person profiles.
package actors

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/vmunix/screenpairs/internal/tmdb"
	"github.com/vmunix/screenpairs/pkg/names"
)

// MaxCandidates is the number of autocomplete suggestions returned.
const MaxCandidates = 5

const (
	defaultMemoSize = 1024
	defaultMemoTTL  = time.Hour
)

// PersonSearcher is the subset of the TMDB client used by the resolver.
type PersonSearcher interface {
	SearchPerson(ctx context.Context, query string) ([]tmdb.Person, error)
	PersonExternalIDs(ctx context.Context, personID int64) (*tmdb.ExternalIDs, error)
}

// Profile is a resolved actor.
type Profile struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ImageRef       *string `json:"image_path"`
	ExternalBioURL *string `json:"imdb_url"`
}

// Candidate is one autocomplete suggestion.
type Candidate struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ProfilePath *string `json:"profile_path"`
	Popularity  float64 `json:"popularity"`
}

// Resolver turns names into profiles and candidate lists.
type Resolver struct {
	client     PersonSearcher
	log        *slog.Logger
	profiles   *memo[*Profile]
	candidates *memo[[]Candidate]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMemo sets the size and TTL of the in-process lookup memo.
func WithMemo(size int, ttl time.Duration) Option {
	return func(r *Resolver) {
		r.profiles = newMemo[*Profile](size, ttl)
		r.candidates = newMemo[[]Candidate](size, ttl)
	}
}

// NewResolver creates a resolver over the given TMDB client.
func NewResolver(client PersonSearcher, log *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		client:     client,
		log:        log,
		profiles:   newMemo[*Profile](defaultMemoSize, defaultMemoTTL),
		candidates: newMemo[[]Candidate](defaultMemoSize, defaultMemoTTL),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveByName returns the best-ranked TMDB person for name.
// Returns nil, nil when the search has no results. A search failure is returned
// as a *tmdb.RemoteServiceError.
func (r *Resolver) ResolveByName(ctx context.Context, name string) (*Profile, error) {
	key := names.Fold(name)
	if p, ok := r.profiles.get(key); ok {
		r.log.Debug("resolver memo hit", "name", name, "id", p.ID)
		return p, nil
	}

	people, err := r.client.SearchPerson(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		r.log.Info("no TMDB match for actor", "name", name)
		return nil, nil
	}

	top := people[0]
	if m := names.ConfidenceOf(names.Similarity(name, top.Name)); m < names.ConfidenceMedium {
		r.log.Warn("weak actor match", "query", name, "matched", top.Name, "confidence", m.String())
	}

	profile := &Profile{
		ID:       top.ID,
		Name:     top.Name,
		ImageRef: top.ProfilePath,
	}

	// External ids are non-fatal enrichment: the profile stands without them,
	// but is not memoized so the next lookup can fill them in.
	ids, err := r.client.PersonExternalIDs(ctx, top.ID)
	if err != nil {
		r.log.Warn("could not fetch external ids", "actor_id", top.ID, "error", err)
		return profile, nil
	}
	profile.ExternalBioURL = tmdb.IMDbNameURL(ids.IMDBID)

	r.profiles.set(key, profile)
	return profile, nil
}

// SearchCandidates returns up to MaxCandidates suggestions for query, most popular first.
// A blank query returns an empty list without calling TMDB.
func (r *Resolver) SearchCandidates(ctx context.Context, query string) ([]Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return []Candidate{}, nil
	}

	key := names.Fold(query)
	if c, ok := r.candidates.get(key); ok {
		return c, nil
	}

	people, err := r.client.SearchPerson(ctx, query)
	if err != nil {
		return nil, err
	}

	// Take TMDB's top results first, then reorder that slice by popularity
	if len(people) > MaxCandidates {
		people = people[:MaxCandidates]
	}
	candidates := make([]Candidate, 0, len(people))
	for _, p := range people {
		candidates = append(candidates, Candidate{
			ID:          p.ID,
			Name:        p.Name,
			ProfilePath: p.ProfilePath,
			Popularity:  p.Popularity,
		})
	}
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})

	r.candidates.set(key, candidates)
	return candidates, nil
}

// Forget drops every memoized lookup.
func (r *Resolver) Forget() {
	r.profiles.purge()
	r.candidates.purge()
}
