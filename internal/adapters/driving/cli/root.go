// Package cli implements the command-line interface for MindVault.
// Commands are thin adapters over the driving ports; services are
// injected by main before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
	"github.com/mindvault-labs/mindvault-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Commands check for nil and fail with a clear
// message instead of panicking when wiring is incomplete.
var (
	ingestService   driving.IngestService
	searchService   driving.SearchService
	documentService driving.DocumentService
)

// defaultSearchOpts carries the config-file search defaults; flags
// override them per invocation.
var defaultSearchOpts = domain.SearchOptions{}.Normalized()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mindvault",
	Short: "Local-first personal knowledge base with relevance search",
	Long: `MindVault indexes your notes and documents into a local vault and
answers queries with ranked, extractive results. Everything stays on
your machine.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// SetIngestService injects the ingest service.
func SetIngestService(s driving.IngestService) {
	ingestService = s
}

// SetSearchService injects the search service.
func SetSearchService(s driving.SearchService) {
	searchService = s
}

// SetDocumentService injects the document service.
func SetDocumentService(s driving.DocumentService) {
	documentService = s
}

// SetSearchDefaults sets the baseline search options, normally sourced
// from the config file. Flags still override them per invocation.
func SetSearchDefaults(opts domain.SearchOptions) {
	defaultSearchOpts = opts.Normalized()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
