package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mindvault-labs/mindvault-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for MindVault.

Type a query and press Enter to search the vault; results are shown
with their relevance scores.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Select
  Esc      - Back / Clear
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if searchService == nil || documentService == nil {
		return errors.New("services not configured")
	}

	// Recover with a stack trace; a panicking TUI otherwise leaves the
	// terminal in raw mode with no diagnostics.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	model := tui.NewModel(searchService, documentService, defaultSearchOpts)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
