package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindvault-labs/mindvault-cli/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and index new text files",
	Long: `Watches a directory for new or changed .txt and .md files and indexes
them automatically. Files whose content is already in the vault are
skipped. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	w, err := watcher.New(ingestService)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return w.Watch(cmd.Context(), args[0])
}
