package popular

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/filmography"
	"github.com/vmunix/screenpairs/internal/tmdb"
)

// DefaultPages is how many popular-people pages RunPopular reads by default.
const DefaultPages = 10

// SelectedPairs is the curated list precomputed by default.
var SelectedPairs = [][2]string{
	{"Robert De Niro", "Joe Pesci"},
	{"Tom Hanks", "Meg Ryan"},
	{"Ben Stiller", "Owen Wilson"},
	{"Johnny Depp", "Helena Bonham Carter"},
	{"Nick Frost", "Simon Pegg"},
	{"Emma Stone", "Ryan Gosling"},
}

// Resolver resolves a name to a profile. A nil profile means no match.
type Resolver interface {
	ResolveByName(ctx context.Context, name string) (*actors.Profile, error)
}

// CreditsFetcher retrieves an actor's filmography.
type CreditsFetcher interface {
	FetchCredits(ctx context.Context, actorID int64) ([]filmography.Credit, error)
}

// PeopleLister lists popular people page by page.
type PeopleLister interface {
	PopularPeople(ctx context.Context, page int) (*tmdb.PersonPage, error)
}

// Precomputer fills the pair store from TMDB.
type Precomputer struct {
	resolver    Resolver
	credits     CreditsFetcher
	people      PeopleLister
	store       *Store
	log         *slog.Logger
	concurrency int
}

// NewPrecomputer creates a new Precomputer. concurrency bounds parallel
// filmography fetches and defaults to 4.
func NewPrecomputer(resolver Resolver, credits CreditsFetcher, people PeopleLister, store *Store, log *slog.Logger, concurrency int) *Precomputer {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Precomputer{
		resolver:    resolver,
		credits:     credits,
		people:      people,
		store:       store,
		log:         log,
		concurrency: concurrency,
	}
}

type resolvedActor struct {
	profile *actors.Profile
	index   filmography.Index
}

// RunSelected computes the shared movies of each named pair and stores them
// with their movie lists. Each distinct name is resolved and fetched once.
// Pairs with an unknown actor, or whose names resolve to the same actor,
// are skipped. Returns the number of pairs stored.
func (p *Precomputer) RunSelected(ctx context.Context, pairs [][2]string) (int, error) {
	resolved := make(map[string]*resolvedActor)
	for _, pair := range pairs {
		for _, name := range pair {
			if _, seen := resolved[name]; seen {
				continue
			}
			ra, err := p.resolveActor(ctx, name)
			if err != nil {
				return 0, err
			}
			resolved[name] = ra
		}
	}

	stored := 0
	for _, pair := range pairs {
		a, b := resolved[pair[0]], resolved[pair[1]]
		if a == nil || b == nil {
			p.log.Warn("skipping pair with unknown actor", "actor1", pair[0], "actor2", pair[1])
			continue
		}
		if a.profile.ID == b.profile.ID {
			p.log.Warn("skipping pair that resolves to one actor",
				"actor1", pair[0], "actor2", pair[1], "actor_id", a.profile.ID)
			continue
		}

		movies := sharedMovies(a.index, b.index)
		err := p.store.Upsert(ctx, Pair{
			Actor1ID:          a.profile.ID,
			Actor2ID:          b.profile.ID,
			Actor1Name:        pair[0],
			Actor2Name:        pair[1],
			CommonMoviesCount: len(movies),
			CommonMovies:      movies,
		})
		if err != nil {
			return stored, err
		}
		p.log.Info("stored pair", "actor1", pair[0], "actor2", pair[1], "common_movies", len(movies))
		stored++
	}
	return stored, nil
}

// resolveActor returns nil for an unknown actor.
func (p *Precomputer) resolveActor(ctx context.Context, name string) (*resolvedActor, error) {
	profile, err := p.resolver.ResolveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	if profile == nil {
		p.log.Warn("actor not found", "name", name)
		return nil, nil
	}
	credits, err := p.credits.FetchCredits(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch credits for %q: %w", name, err)
	}
	return &resolvedActor{profile: profile, index: filmography.NewIndex(credits)}, nil
}

// sharedMovies lists titled movies common to both indexes, oldest first.
func sharedMovies(a, b filmography.Index) []Movie {
	movies := make([]Movie, 0)
	for _, id := range filmography.CommonIDs(a, b) {
		c := a[id]
		if c.Title == nil {
			continue
		}
		m := Movie{Title: *c.Title, IsDocumentary: c.IsDocumentary()}
		if c.ReleaseDate != nil {
			m.ReleaseDate = *c.ReleaseDate
		}
		movies = append(movies, m)
	}
	slices.SortStableFunc(movies, func(x, y Movie) int {
		return cmp.Compare(x.ReleaseDate, y.ReleaseDate)
	})
	return movies
}

// RunPopular reads up to maxPages of popular people, fetches every actor's
// filmography and stores a count for each pair that shares at least one movie.
// Stored movie lists are left untouched. Returns the number of pairs stored.
func (p *Precomputer) RunPopular(ctx context.Context, maxPages int) (int, error) {
	if maxPages <= 0 {
		maxPages = DefaultPages
	}

	people := p.fetchPopular(ctx, maxPages)
	p.log.Info("fetched popular people", "count", len(people))

	var mu sync.Mutex
	indexes := make(map[int64]filmography.Index, len(people))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, person := range people {
		g.Go(func() error {
			credits, err := p.credits.FetchCredits(gctx, person.ID)
			if err != nil {
				// One missing filmography should not abort the batch
				p.log.Warn("skipping actor without credits", "actor_id", person.ID, "name", person.Name, "error", err)
				return nil
			}
			mu.Lock()
			indexes[person.ID] = filmography.NewIndex(credits)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stored := 0
	for i := 0; i < len(people); i++ {
		for j := i + 1; j < len(people); j++ {
			a, b := people[i], people[j]
			ia, okA := indexes[a.ID]
			ib, okB := indexes[b.ID]
			if !okA || !okB || a.ID == b.ID {
				continue
			}
			n := len(filmography.CommonIDs(ia, ib))
			if n == 0 {
				continue
			}
			err := p.store.UpsertCount(ctx, Pair{
				Actor1ID:          a.ID,
				Actor2ID:          b.ID,
				Actor1Name:        a.Name,
				Actor2Name:        b.Name,
				CommonMoviesCount: n,
			})
			if err != nil {
				return stored, err
			}
			stored++
		}
	}

	p.log.Info("stored popular pairs", "count", stored)
	return stored, nil
}

// fetchPopular stops at the first empty or failed page. Duplicate ids are dropped.
func (p *Precomputer) fetchPopular(ctx context.Context, maxPages int) []tmdb.Person {
	seen := make(map[int64]bool)
	var people []tmdb.Person
	for page := 1; page <= maxPages; page++ {
		result, err := p.people.PopularPeople(ctx, page)
		if err != nil {
			p.log.Warn("popular people page failed", "page", page, "error", err)
			break
		}
		if len(result.Results) == 0 {
			break
		}
		for _, person := range result.Results {
			if !seen[person.ID] {
				seen[person.ID] = true
				people = append(people, person)
			}
		}
	}
	return people
}
