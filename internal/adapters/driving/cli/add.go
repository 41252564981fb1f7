package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

var addTitle string

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add a document to the vault",
	Long: `Reads a text file (or stdin when the argument is "-"), fingerprints
its content and indexes it for search. Adding the same content twice is
rejected; the vault keeps a single copy.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "document title (defaults to the file name)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	content, title, err := readAddInput(cmd, args[0])
	if err != nil {
		return err
	}
	if addTitle != "" {
		title = addTitle
	}

	doc, err := ingestService.Ingest(cmd.Context(), title, content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateDocument):
			cmd.Println("Already in vault: identical content was indexed before.")
			return nil
		case errors.Is(err, domain.ErrMalformedInput):
			return fmt.Errorf("cannot index %s: content is empty or not valid UTF-8", args[0])
		default:
			return fmt.Errorf("adding document: %w", err)
		}
	}

	cmd.Printf("Added %q (%s)\n", doc.Title, doc.ID)
	return nil
}

// readAddInput returns the raw content and a default title for the
// given argument. "-" reads stdin.
func readAddInput(cmd *cobra.Command, arg string) (content, title string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("reading file: %w", err)
	}

	base := filepath.Base(arg)
	title = strings.TrimSuffix(base, filepath.Ext(base))
	return string(data), title, nil
}
