// Package server runs the HTTP API and its background maintenance jobs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

// Config for the runner.
type Config struct {
	Addr            string
	PruneInterval   time.Duration // 0 disables pruning
	ShutdownTimeout time.Duration
}

// Pruner removes expired rows from one persistent cache.
type Pruner struct {
	Name  string
	Prune func(ctx context.Context) (int64, error)
}

// Runner manages the HTTP server and the cache pruner.
type Runner struct {
	handler http.Handler
	config  Config
	pruners []Pruner
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger, pruners ...Pruner) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		pruners: pruners,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln.
// It blocks until the context is canceled or a component fails, then shuts
// the HTTP server down gracefully. A canceled context is a clean stop.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.config.PruneInterval > 0 && len(r.pruners) > 0 {
		g.Go(func() error {
			r.runPruner(ctx)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) runPruner(ctx context.Context) {
	ticker := time.NewTicker(r.config.PruneInterval)
	defer ticker.Stop()

	r.logger.Info("pruner started", "interval", r.config.PruneInterval.String())

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("pruner stopped")
			return
		case <-ticker.C:
			if err := r.PruneOnce(ctx); err != nil {
				r.logger.Error("prune failed", "error", err)
			}
		}
	}
}

// PruneOnce runs every pruner once. Failures do not stop the remaining
// pruners and are returned combined.
func (r *Runner) PruneOnce(ctx context.Context) error {
	var errs error
	for _, p := range r.pruners {
		n, err := p.Prune(ctx)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name, err))
			continue
		}
		if n > 0 {
			r.logger.Debug("pruned expired entries", "cache", p.Name, "removed", n)
		}
	}
	return errs
}
