package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindvault-labs/mindvault-cli/internal/chunker"
	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driven"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
	"github.com/mindvault-labs/mindvault-cli/internal/fingerprint"
	"github.com/mindvault-labs/mindvault-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService validates, fingerprints, chunks and stores documents.
type IngestService struct {
	docStore driven.DocumentStore
	chunker  *chunker.Chunker
}

// NewIngestService creates a new ingest service.
func NewIngestService(docStore driven.DocumentStore, c *chunker.Chunker) *IngestService {
	if c == nil {
		c = chunker.New()
	}
	return &IngestService{
		docStore: docStore,
		chunker:  c,
	}
}

// Ingest adds raw text to the vault as a new document.
//
// Malformed input (empty after normalization, or not valid UTF-8) is
// rejected before chunking with domain.ErrMalformedInput. Content whose
// fingerprint is already stored is rejected with
// domain.ErrDuplicateDocument; in both cases no chunks are written.
func (s *IngestService) Ingest(ctx context.Context, title, rawText string) (*domain.Document, error) {
	logger.Section("Document Ingestion")

	if !fingerprint.Valid(rawText) {
		logger.Debug("Rejecting malformed input (%d bytes)", len(rawText))
		return nil, domain.ErrMalformedInput
	}

	hash := fingerprint.Hash(rawText)
	logger.Debug("Fingerprint: %s", hash)

	// Cheap pre-check; the store's uniqueness constraint is the
	// authority and closes the concurrent-ingestion race below.
	if _, err := s.docStore.GetDocumentByHash(ctx, hash); err == nil {
		logger.Info("Duplicate content rejected")
		return nil, domain.ErrDuplicateDocument
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking fingerprint: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}

	doc := &domain.Document{
		ID:          uuid.New().String(),
		Title:       title,
		Content:     rawText,
		ContentHash: hash,
		CreatedAt:   time.Now().UTC(),
	}

	chunks := s.chunker.Chunk(doc)

	// One atomic write: a failure here must not leave a chunkless
	// document holding the content hash.
	if err := s.docStore.SaveDocumentWithChunks(ctx, doc, chunks); err != nil {
		if errors.Is(err, domain.ErrDuplicateDocument) {
			logger.Info("Duplicate content rejected by store constraint")
			return nil, domain.ErrDuplicateDocument
		}
		return nil, fmt.Errorf("saving document: %w", err)
	}

	logger.Info("Ingested %q: %d chunks", doc.Title, len(chunks))
	return doc, nil
}
