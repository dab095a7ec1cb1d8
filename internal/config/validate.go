// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/vmunix/screenpairs/internal/ratelimit"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validPairBackends = map[string]bool{
	PairBackendFile: true, PairBackendSQLite: true, "": true,
}

var validMovieBackends = map[string]bool{
	MovieBackendMemory: true, MovieBackendSQLite: true, MovieBackendRedis: true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if _, err := ratelimit.Parse(c.Server.ActorRate); err != nil {
		errs = append(errs, fmt.Sprintf("server.actor_rate: %v", err))
	}
	if _, err := ratelimit.Parse(c.Server.MoviesRate); err != nil {
		errs = append(errs, fmt.Sprintf("server.movies_rate: %v", err))
	}

	// TMDB validation
	if strings.TrimSpace(c.TMDB.Token) == "" {
		errs = append(errs, "tmdb.token: required")
	}

	// Cache validation
	if !validPairBackends[c.Cache.PairBackend] {
		errs = append(errs, fmt.Sprintf("cache.pair_backend: must be one of file, sqlite; got %q", c.Cache.PairBackend))
	}
	if c.Cache.PairBackend == PairBackendFile && c.Cache.PairFile == "" {
		errs = append(errs, "cache.pair_file: required when pair_backend is file")
	}
	if !validMovieBackends[c.Cache.MovieBackend] {
		errs = append(errs, fmt.Sprintf("cache.movie_backend: must be one of memory, sqlite, redis; got %q", c.Cache.MovieBackend))
	}
	if c.Cache.MovieBackend == MovieBackendRedis && c.Cache.Redis.Addr == "" {
		errs = append(errs, "cache.redis.addr: required when movie_backend is redis")
	}
	if c.Cache.PruneInterval < 0 {
		errs = append(errs, fmt.Sprintf("cache.prune_interval: must not be negative, got %s", c.Cache.PruneInterval))
	}

	// Precompute validation
	for i, pair := range c.Precompute.Pairs {
		if len(pair) != 2 || strings.TrimSpace(pair[0]) == "" || strings.TrimSpace(pair[1]) == "" {
			errs = append(errs, fmt.Sprintf("precompute.pairs[%d]: must be two actor names, got %v", i, pair))
		}
	}
	if c.Precompute.PopularPages < 0 {
		errs = append(errs, fmt.Sprintf("precompute.popular_pages: must not be negative, got %d", c.Precompute.PopularPages))
	}
	if c.Precompute.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("precompute.concurrency: must not be negative, got %d", c.Precompute.Concurrency))
	}

	return errs
}
