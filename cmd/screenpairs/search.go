package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Suggest actors matching a partial name",
	Long: `Suggest actors matching a partial name, most popular first.

Examples:
  screenpairs search tom han
  screenpairs search "Helena Bonham"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	client := NewClient(serverURL)
	results, err := client.Autocomplete(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), results)
		return nil
	}

	printCandidates(cmd.OutOrStdout(), query, results.Results)
	return nil
}

func printCandidates(w io.Writer, query string, candidates []CandidateResponse) {
	if len(candidates) == 0 {
		fmt.Fprintf(w, "No actors found for %q\n", query)
		return
	}

	fmt.Fprintf(w, "Actors matching %q:\n\n", query)
	fmt.Fprintf(w, "  # │ %-32s │ %8s │ %s\n", "NAME", "TMDB ID", "POPULARITY")
	fmt.Fprintln(w, "────┼──────────────────────────────────┼──────────┼───────────")
	for i, c := range candidates {
		fmt.Fprintf(w, " %2d │ %-32s │ %8d │ %10.1f\n", i+1, truncate(c.Name, 32), c.ID, c.Popularity)
	}
}
