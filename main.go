// MindVault is a local-first personal knowledge base: it indexes text
// documents into a SQLite-backed vault and answers queries with ranked
// extractive results.
package main

import (
	"fmt"
	"os"

	"github.com/mindvault-labs/mindvault-cli/internal/adapters/driven/config/file"
	"github.com/mindvault-labs/mindvault-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mindvault-labs/mindvault-cli/internal/adapters/driving/cli"
	"github.com/mindvault-labs/mindvault-cli/internal/chunker"
	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening vault: %w", err)
	}
	defer store.Close()

	var chunkerOpts []chunker.Option
	if size := configStore.GetInt(file.KeyChunkSize); size > 0 {
		chunkerOpts = append(chunkerOpts, chunker.WithWindowSize(size))
	}
	if overlap := configStore.GetInt(file.KeyChunkOverlap); overlap > 0 {
		chunkerOpts = append(chunkerOpts, chunker.WithOverlap(overlap))
	}

	ingestService := services.NewIngestService(store, chunker.New(chunkerOpts...))
	searchService := services.NewSearchService(store)
	documentService := services.NewDocumentService(store)

	cli.SetIngestService(ingestService)
	cli.SetSearchService(searchService)
	cli.SetDocumentService(documentService)
	cli.SetSearchDefaults(searchDefaults(configStore))
	cli.SetVersion(version)

	return cli.Execute()
}

// searchDefaults maps config values onto search options; unset keys
// fall back to the built-in defaults.
func searchDefaults(configStore *file.ConfigStore) domain.SearchOptions {
	opts := domain.SearchOptions{
		Limit:           configStore.GetInt(file.KeySearchLimit),
		Threshold:       -1,
		AnswerLimit:     configStore.GetInt(file.KeyAnswerLimit),
		MaxAnswerLength: configStore.GetInt(file.KeyMaxAnswerLength),
	}
	if _, ok := configStore.Get(file.KeyThreshold); ok {
		opts.Threshold = configStore.GetFloat(file.KeyThreshold)
	}
	return opts.Normalized()
}
