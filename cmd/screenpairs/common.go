package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var commonCmd = &cobra.Command{
	Use:   "common <actor1> <actor2>",
	Short: "List the movies two actors appeared in together",
	Long: `List the movies two actors appeared in together.

Quote names that contain spaces.

Examples:
  screenpairs common "Robert De Niro" "Joe Pesci"
  screenpairs common "Simon Pegg" "Nick Frost" --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCommonCmd,
}

func init() {
	rootCmd.AddCommand(commonCmd)
}

func runCommonCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	result, err := client.CommonMovies(args[0], args[1])
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if jsonOutput {
		printJSON(cmd.OutOrStdout(), result)
		return nil
	}

	printCommonMovies(cmd.OutOrStdout(), args[0], args[1], result)
	return nil
}

func printCommonMovies(w io.Writer, actor1, actor2 string, r *CommonMoviesResponse) {
	if len(r.Results) == 0 {
		fmt.Fprintf(w, "No movies found with both %s and %s\n", actor1, actor2)
		return
	}

	fmt.Fprintf(w, "%d movies with %s and %s:\n\n", len(r.Results), actor1, actor2)
	for _, m := range r.Results {
		year := m.ReleaseYear
		if year == "" {
			year = "????"
		}
		fmt.Fprintf(w, "  %s (%s)\n", deref(m.Title, "Untitled"), year)
		if len(m.Directors) > 0 {
			fmt.Fprintf(w, "    Directed by %s\n", strings.Join(m.Directors, ", "))
		}
		for _, label := range slices.Sorted(maps.Keys(m.Characters)) {
			fmt.Fprintf(w, "    %s as %s\n", label, m.Characters[label])
		}
		if m.IMDbURL != nil {
			fmt.Fprintf(w, "    %s\n", *m.IMDbURL)
		}
	}
}
