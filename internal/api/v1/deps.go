package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/pairs"
	"github.com/vmunix/screenpairs/internal/popular"
)

//go:generate mockgen -source=deps.go -destination=mocks/deps.go -package=mocks

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// PairComputer computes the movies two actors share.
type PairComputer interface {
	ComputePair(ctx context.Context, name1, name2 string) (*pairs.Result, error)
}

// CandidateSearcher returns autocomplete suggestions for a partial name.
type CandidateSearcher interface {
	SearchCandidates(ctx context.Context, query string) ([]actors.Candidate, error)
}

// PopularPairs reads precomputed pairings.
type PopularPairs interface {
	List(ctx context.Context, limit int) ([]*popular.Pair, error)
	FindByActor(ctx context.Context, name string, limit int) ([]*popular.Pair, error)
	Count(ctx context.Context) (int, error)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Engine     PairComputer
	Candidates CandidateSearcher

	// Optional dependencies (nil if not configured)
	Popular PopularPairs
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Engine == nil {
		return fmt.Errorf("%w: pair engine", ErrMissingDependency)
	}
	if d.Candidates == nil {
		return fmt.Errorf("%w: candidate searcher", ErrMissingDependency)
	}
	return nil
}
