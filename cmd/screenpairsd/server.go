package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/screenpairs/internal/api/v1"
	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/config"
	"github.com/vmunix/screenpairs/internal/filmography"
	"github.com/vmunix/screenpairs/internal/metadata"
	"github.com/vmunix/screenpairs/internal/migrations"
	"github.com/vmunix/screenpairs/internal/pairs"
	"github.com/vmunix/screenpairs/internal/popular"
	"github.com/vmunix/screenpairs/internal/ratelimit"
	"github.com/vmunix/screenpairs/internal/server"
	"github.com/vmunix/screenpairs/internal/tmdb"
)

const memoryCacheCleanup = 10 * time.Minute

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// openDB opens the SQLite database and applies the schema.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// movieCache builds the transient movie cache backend. The returned closer may be nil.
func movieCache(ctx context.Context, cfg config.CacheConfig, db *sql.DB, log *slog.Logger) (metadata.Cache, io.Closer) {
	switch cfg.MovieBackend {
	case config.MovieBackendSQLite:
		return metadata.NewSQLiteCache(db, log), nil
	case config.MovieBackendRedis:
		rc := metadata.NewRedisCache(metadata.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log)
		if err := rc.Ping(ctx); err != nil {
			log.Warn("redis unreachable, movie lookups will miss until it recovers", "addr", cfg.Redis.Addr, "error", err)
		}
		return rc, rc
	default:
		return metadata.NewMemoryCache(memoryCacheCleanup), nil
	}
}

// pairStore builds the durable pair cache backend.
func pairStore(cfg config.CacheConfig, db *sql.DB, log *slog.Logger) pairs.Store {
	if cfg.PairBackend == config.PairBackendSQLite {
		return pairs.NewSQLiteStore(db)
	}
	return pairs.NewFileStore(afero.NewOsFs(), cfg.PairFile, log)
}

// pruners lists the SQLite-backed caches that need expired rows removed.
func pruners(cfg config.CacheConfig, movies metadata.Cache, store pairs.Store) []server.Pruner {
	var out []server.Pruner
	if c, ok := movies.(*metadata.SQLiteCache); ok {
		out = append(out, server.Pruner{Name: "movies", Prune: c.Prune})
	}
	if s, ok := store.(*pairs.SQLiteStore); ok {
		out = append(out, server.Pruner{Name: "pairs", Prune: func(ctx context.Context) (int64, error) {
			return s.Prune(ctx, time.Now().Add(-pairs.TTL))
		}})
	}
	return out
}

// buildHandler wires the request pipeline behind the v1 API.
func buildHandler(cfg *config.Config, db *sql.DB, movies metadata.Cache, store pairs.Store, logger *slog.Logger) (http.Handler, error) {
	client := tmdb.NewClient(tmdb.Config{
		Token:    cfg.TMDB.Token,
		BaseURL:  cfg.TMDB.BaseURL,
		Language: cfg.TMDB.Language,
	}, tmdb.WithLogger(logger.With("component", "tmdb")))

	resolver := actors.NewResolver(client, logger.With("component", "actors"))
	fetcher := filmography.NewFetcher(client)
	enricher := metadata.NewEnricher(client, movies, logger.With("component", "metadata"))
	cache := pairs.NewCache(store, logger.With("component", "paircache"))
	engine := pairs.NewEngine(resolver, fetcher, enricher, cache, logger.With("component", "engine"))

	actorRate, err := ratelimit.Parse(cfg.Server.ActorRate)
	if err != nil {
		return nil, fmt.Errorf("server.actor_rate: %w", err)
	}
	moviesRate, err := ratelimit.Parse(cfg.Server.MoviesRate)
	if err != nil {
		return nil, fmt.Errorf("server.movies_rate: %w", err)
	}

	api, err := v1.NewWithDeps(v1.ServerDeps{
		Engine:     engine,
		Candidates: resolver,
		Popular:    popular.NewStore(db),
	}, v1.Config{
		Version:    version,
		ActorRate:  actorRate,
		MoviesRate: moviesRate,
	}, logger.With("component", "api"))
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	return logRequests(mux, logger.With("component", "http")), nil
}

func runServer(configPath string) (err error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}

	movies, movieCloser := movieCache(ctx, cfg.Cache, db, logger.With("component", "moviecache"))
	store := pairStore(cfg.Cache, db, logger.With("component", "pairstore"))

	defer func() {
		if movieCloser != nil {
			err = multierr.Append(err, movieCloser.Close())
		}
		err = multierr.Append(err, db.Close())
	}()

	handler, err := buildHandler(cfg, db, movies, store, logger)
	if err != nil {
		return err
	}

	logger.Info("server starting",
		"addr", cfg.Server.Addr(),
		"database", cfg.Database.Path,
		"pair_backend", cfg.Cache.PairBackend,
		"movie_backend", cfg.Cache.MovieBackend,
		"actor_rate", cfg.Server.ActorRate,
		"movies_rate", cfg.Server.MoviesRate,
		"log_level", cfg.Server.LogLevel,
		"version", version,
	)

	runner := server.NewRunner(handler, server.Config{
		Addr:          cfg.Server.Addr(),
		PruneInterval: cfg.Cache.PruneInterval,
	}, logger.With("component", "runner"), pruners(cfg.Cache, movies, store)...)

	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
