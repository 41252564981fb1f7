package driving

import (
	"context"
	"time"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// DocumentService manages stored documents.
type DocumentService interface {
	// List returns all stored documents, oldest first.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// GetDetails returns display metadata for a document.
	GetDetails(ctx context.Context, documentID string) (*DocumentDetails, error)

	// Delete removes a document and its chunks.
	Delete(ctx context.Context, documentID string) error
}

// DocumentDetails carries document metadata for display.
type DocumentDetails struct {
	ID         string
	Title      string
	WordCount  int
	ChunkCount int
	Preview    string
	CreatedAt  time.Time
}
