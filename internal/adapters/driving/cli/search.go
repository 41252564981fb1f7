package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

var (
	searchLimit     int
	searchThreshold float64
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the vault",
	Long: `Ranks indexed chunks against the query by TF-IDF cosine similarity
and prints the top matches. Chunks below the relevance threshold are
never returned.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured default)")
	searchCmd.Flags().Float64VarP(&searchThreshold, "threshold", "t", -1, "minimum relevance score (negative = configured default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchOptions builds the effective options: config defaults with
// per-invocation flag overrides.
func searchOptions() domain.SearchOptions {
	opts := defaultSearchOpts
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}
	if searchThreshold >= 0 {
		opts.Threshold = searchThreshold
	}
	return opts
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	resp, err := searchService.Search(cmd.Context(), args[0], searchOptions())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp.Results)
	}

	return outputSearchTable(cmd, resp.Results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	if results == nil {
		results = []domain.SearchResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Document.Title
		if title == "" {
			title = results[i].Document.ID
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Score)
		cmd.Printf("      %s\n", snippet(results[i].Chunk.Content, 120))
		cmd.Println()
	}

	return nil
}

// snippet shortens chunk content for single-line display.
func snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
