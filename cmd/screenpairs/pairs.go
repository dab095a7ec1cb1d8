package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/config"
	"github.com/vmunix/screenpairs/internal/filmography"
	"github.com/vmunix/screenpairs/internal/migrations"
	"github.com/vmunix/screenpairs/internal/popular"
	"github.com/vmunix/screenpairs/internal/tmdb"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Precomputed popular actor pairings",
}

var pairsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List popular pairs from the server",
	Long: `List precomputed actor pairs, most shared movies first.

Examples:
  screenpairs pairs list
  screenpairs pairs list --actor "Simon Pegg" --limit 5`,
	Args: cobra.NoArgs,
	RunE: runPairsListCmd,
}

var pairsPrecomputeCmd = &cobra.Command{
	Use:   "precompute",
	Short: "Compute popular pairs locally and store them in the database",
	Long: `Compute popular pairs locally against TMDB and store them in the
configured SQLite database. No server is needed.

Without --popular, computes the curated pairs from [precompute] in the
config file, including their movie lists. With --popular, scans TMDB's
popular people and stores shared movie counts for every pairing.

Examples:
  screenpairs pairs precompute
  screenpairs pairs precompute --popular --pages 5`,
	Args: cobra.NoArgs,
	RunE: runPairsPrecomputeCmd,
}

func init() {
	rootCmd.AddCommand(pairsCmd)
	pairsCmd.AddCommand(pairsListCmd, pairsPrecomputeCmd)

	pairsListCmd.Flags().String("actor", "", "Only pairs including this actor")
	pairsListCmd.Flags().Int("limit", 0, "Maximum pairs to show (server default when 0)")

	pairsPrecomputeCmd.Flags().Bool("popular", false, "Scan TMDB popular people instead of curated pairs")
	pairsPrecomputeCmd.Flags().Int("pages", 0, "Popular people pages to scan (config default when 0)")
}

func runPairsListCmd(cmd *cobra.Command, _ []string) error {
	actor, _ := cmd.Flags().GetString("actor")
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	resp, err := client.PopularPairs(actor, limit)
	if err != nil {
		return fmt.Errorf("list pairs failed: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), resp)
		return nil
	}

	printPairs(cmd.OutOrStdout(), resp)
	return nil
}

func printPairs(w io.Writer, r *ListPairsResponse) {
	if len(r.Items) == 0 {
		fmt.Fprintln(w, "No popular pairs stored. Run 'screenpairs pairs precompute' first.")
		return
	}

	fmt.Fprintf(w, "Popular pairs (%d of %d):\n\n", len(r.Items), r.Total)
	fmt.Fprintf(w, "  # │ %-26s │ %-26s │ %s\n", "ACTOR", "ACTOR", "MOVIES")
	fmt.Fprintln(w, "────┼────────────────────────────┼────────────────────────────┼───────")
	for i, p := range r.Items {
		fmt.Fprintf(w, " %2d │ %-26s │ %-26s │ %6d\n",
			i+1, truncate(p.Actor1Name, 26), truncate(p.Actor2Name, 26), p.CommonMoviesCount)
	}
}

// loadLocalConfig resolves --config or discovers the config file.
func loadLocalConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	return config.Load(path)
}

func openLocalDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// newPrecomputer wires a Precomputer against the live TMDB API.
func newPrecomputer(cfg *config.Config, db *sql.DB, logger *slog.Logger) *popular.Precomputer {
	client := tmdb.NewClient(tmdb.Config{
		Token:    cfg.TMDB.Token,
		BaseURL:  cfg.TMDB.BaseURL,
		Language: cfg.TMDB.Language,
	}, tmdb.WithLogger(logger.With("component", "tmdb")))

	return popular.NewPrecomputer(
		actors.NewResolver(client, logger.With("component", "actors")),
		filmography.NewFetcher(client),
		client,
		popular.NewStore(db),
		logger.With("component", "precompute"),
		cfg.Precompute.Concurrency,
	)
}

func runPairsPrecomputeCmd(cmd *cobra.Command, _ []string) error {
	usePopular, _ := cmd.Flags().GetBool("popular")
	pages, _ := cmd.Flags().GetInt("pages")

	cfg, err := loadLocalConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	db, err := openLocalDB(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	pc := newPrecomputer(cfg, db, logger)

	var stored int
	if usePopular {
		if pages <= 0 {
			pages = cfg.Precompute.PopularPages
		}
		stored, err = pc.RunPopular(ctx, pages)
	} else {
		selected := cfg.Precompute.SelectedPairs()
		if len(selected) == 0 {
			selected = popular.SelectedPairs
		}
		stored, err = pc.RunSelected(ctx, selected)
	}
	if err != nil {
		return fmt.Errorf("precompute failed after %d pairs: %w", stored, err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), map[string]int{"stored": stored})
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d pairs in %s\n", stored, cfg.Database.Path)
	return nil
}
