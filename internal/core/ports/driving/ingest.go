package driving

import (
	"context"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// IngestService adds documents to the vault.
type IngestService interface {
	// Ingest validates, fingerprints, chunks and stores raw text.
	// Returns domain.ErrMalformedInput for empty or non-UTF-8 text and
	// domain.ErrDuplicateDocument when identical content (after
	// normalization) is already stored. A rejected document leaves no
	// chunks behind.
	Ingest(ctx context.Context, title, rawText string) (*domain.Document, error)
}
