package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askSources bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the vault",
	Long: `Searches the vault and composes an extractive answer from the most
relevant passages. The answer quotes stored content verbatim; nothing
is generated.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVarP(&askSources, "sources", "s", false, "list source documents after the answer")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	resp, err := searchService.Search(cmd.Context(), args[0], searchOptions())
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(resp.Answer)

	if askSources && len(resp.Results) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i := range resp.Results {
			title := resp.Results[i].Document.Title
			if title == "" {
				title = resp.Results[i].Document.ID
			}
			cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, resp.Results[i].Score)
		}
	}

	return nil
}
