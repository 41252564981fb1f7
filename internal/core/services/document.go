package services

import (
	"context"
	"strings"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driven"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// previewLength is the number of characters shown in document listings.
const previewLength = 100

// DocumentService manages stored documents.
type DocumentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{docStore: docStore}
}

// List returns all stored documents, oldest first.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// GetDetails returns display metadata for a document.
func (s *DocumentService) GetDetails(ctx context.Context, documentID string) (*driving.DocumentDetails, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	chunks, err := s.docStore.GetChunks(ctx, documentID)
	if err != nil {
		return nil, err
	}

	return &driving.DocumentDetails{
		ID:         doc.ID,
		Title:      doc.Title,
		WordCount:  len(strings.Fields(doc.Content)),
		ChunkCount: len(chunks),
		Preview:    preview(doc.Content),
		CreatedAt:  doc.CreatedAt,
	}, nil
}

// Delete removes a document and its chunks. Deleting an unknown ID
// returns domain.ErrNotFound; the stores treat it as a no-op.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return err
	}
	return s.docStore.DeleteDocument(ctx, documentID)
}

// preview returns the leading slice of content for listings.
func preview(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength]) + "..."
}
