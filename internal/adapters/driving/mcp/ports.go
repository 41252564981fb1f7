package mcp

import (
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Search provides search and answer composition.
	Search driving.SearchService

	// Ingest adds documents to the vault.
	Ingest driving.IngestService

	// Document manages stored documents.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Ingest and Document are optional; their tools and resources
	// degrade gracefully when absent.
	return nil
}
