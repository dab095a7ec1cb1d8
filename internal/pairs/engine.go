package pairs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/filmography"
	"github.com/vmunix/screenpairs/internal/metadata"
)

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks

const (
	// enrichConcurrency bounds parallel movie detail lookups per pair.
	enrichConcurrency = 4
	// computeTimeout bounds a pair computation, which outlives the request that started it.
	computeTimeout = 2 * time.Minute
)

// ProfileResolver resolves a name to a profile. A nil profile means no match.
type ProfileResolver interface {
	ResolveByName(ctx context.Context, name string) (*actors.Profile, error)
}

// CreditsFetcher retrieves an actor's filmography.
type CreditsFetcher interface {
	FetchCredits(ctx context.Context, actorID int64) ([]filmography.Credit, error)
}

// DetailEnricher returns movie details, or nil when they are unavailable.
type DetailEnricher interface {
	Enrich(ctx context.Context, movieID int64, characters metadata.Characters) *metadata.MovieDetail
}

// Engine orchestrates resolution, caching, intersection and enrichment.
type Engine struct {
	resolver ProfileResolver
	credits  CreditsFetcher
	enricher DetailEnricher
	cache    *Cache
	log      *slog.Logger
	inflight singleflight.Group
	timeout  time.Duration
}

// NewEngine creates a new Engine.
func NewEngine(resolver ProfileResolver, credits CreditsFetcher, enricher DetailEnricher, cache *Cache, log *slog.Logger) *Engine {
	return &Engine{
		resolver: resolver,
		credits:  credits,
		enricher: enricher,
		cache:    cache,
		log:      log,
		timeout:  computeTimeout,
	}
}

// ComputePair returns the movies name1 and name2 both appear in.
//
// An actor that cannot be resolved yields an empty result carrying whatever
// profile data was found, not an error. Filmography failures are returned.
func (e *Engine) ComputePair(ctx context.Context, name1, name2 string) (*Result, error) {
	var p1, p2 *actors.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p1 = e.resolve(gctx, name1)
		return nil
	})
	g.Go(func() error {
		p2 = e.resolve(gctx, name2)
		return nil
	})
	_ = g.Wait()

	if p1 == nil || p2 == nil {
		e.log.Info("actor not found for pair", "actor1", name1, "actor2", name2,
			"actor1_found", p1 != nil, "actor2_found", p2 != nil)
		return assemble([]*metadata.MovieDetail{}, p1, p2), nil
	}

	// Character labels depend on the names as typed, so they are part of the flight key
	flight := fmt.Sprintf("%d_%d|%s|%s", p1.ID, p2.ID, name1, name2)
	ch := e.inflight.DoChan(flight, func() (any, error) {
		// Detached from the request: a caller going away must not cut the
		// computation short, since its result is cached for every caller.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
		defer cancel()
		return e.compute(fctx, name1, name2, p1, p2)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			e.log.Debug("joined in-flight pair computation", "actor1_id", p1.ID, "actor2_id", p2.ID)
		}
		return res.Val.(*Result), nil
	}
}

// resolve treats a failed lookup like a missing actor.
func (e *Engine) resolve(ctx context.Context, name string) *actors.Profile {
	p, err := e.resolver.ResolveByName(ctx, name)
	if err != nil {
		e.log.Warn("actor resolution failed", "name", name, "error", err)
		return nil
	}
	return p
}

func (e *Engine) compute(ctx context.Context, name1, name2 string, p1, p2 *actors.Profile) (*Result, error) {
	if cached := e.cache.Lookup(ctx, p1.ID, p2.ID); cached != nil {
		return assemble(cached.Results, p1, p2), nil
	}

	var c1, c2 []filmography.Credit
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c1, err = e.credits.FetchCredits(gctx, p1.ID)
		return err
	})
	g.Go(func() (err error) {
		c2, err = e.credits.FetchCredits(gctx, p2.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch filmographies: %w", err)
	}

	idx1, idx2 := filmography.NewIndex(c1), filmography.NewIndex(c2)
	common := filmography.CommonIDs(idx1, idx2)
	if len(common) == 0 {
		e.log.Info("no common movies", "actor1", name1, "actor2", name2)
	}

	slots := make([]*metadata.MovieDetail, len(common))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(enrichConcurrency)
	for i, id := range common {
		chars := metadata.Characters{
			name1: idx1.Character(id),
			name2: idx2.Character(id),
		}
		eg.Go(func() error {
			slots[i] = e.enricher.Enrich(ectx, id, chars)
			return nil
		})
	}
	_ = eg.Wait()

	// Enrichment turns a deadline into missing movies; never cache that.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compute pair %d_%d: %w", p1.ID, p2.ID, err)
	}

	details := make([]*metadata.MovieDetail, 0, len(slots))
	for _, d := range slots {
		if d != nil {
			details = append(details, d)
		}
	}

	result := assemble(details, p1, p2)
	e.cache.Store(ctx, p1.ID, p2.ID, *result)
	return result, nil
}

func assemble(details []*metadata.MovieDetail, p1, p2 *actors.Profile) *Result {
	r := &Result{Results: details}
	if r.Results == nil {
		r.Results = []*metadata.MovieDetail{}
	}
	if p1 != nil {
		r.Actor1Image = p1.ImageRef
		r.Actor1IMDb = p1.ExternalBioURL
	}
	if p2 != nil {
		r.Actor2Image = p2.ImageRef
		r.Actor2IMDb = p2.ExternalBioURL
	}
	return r
}
