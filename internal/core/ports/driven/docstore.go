package driven

import (
	"context"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// DocumentStore persists documents and chunks.
// Backed by SQLite for durable storage; an in-memory implementation
// exists for tests. The core never issues schema or connection
// management calls through this port.
type DocumentStore interface {
	// SaveDocument stores a new document. Returns
	// domain.ErrDuplicateDocument when a document with the same
	// ContentHash already exists; the uniqueness constraint lives in
	// the store so concurrent duplicate ingestion leaves at most one
	// surviving document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks stores the ordered chunks of a document.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// SaveDocumentWithChunks stores a document and its chunks as one
	// atomic operation: on any error nothing is persisted, so a failed
	// ingestion never leaves a chunkless document claiming the content
	// hash. Returns domain.ErrDuplicateDocument on a hash conflict.
	SaveDocumentWithChunks(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetDocumentByHash retrieves a document by its content fingerprint.
	// Returns domain.ErrNotFound when no document carries the hash.
	GetDocumentByHash(ctx context.Context, hash string) (*domain.Document, error)

	// GetChunks retrieves all chunks for a document, ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// AllChunks returns every stored chunk in a deterministic order:
	// document insertion order, then chunk position. This is the corpus
	// snapshot a search call scores against.
	AllChunks(ctx context.Context) ([]domain.Chunk, error)

	// DeleteDocument removes a document and all its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all stored documents, oldest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
