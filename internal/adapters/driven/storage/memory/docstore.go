// Package memory provides in-memory implementations of the driven
// storage ports, used by tests and ephemeral vaults.
package memory

import (
	"context"
	"sync"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Insertion order is preserved so AllChunks returns a deterministic
// corpus snapshot, and the content-hash uniqueness constraint is
// enforced the same way the SQLite schema does.
type DocumentStore struct {
	mu     sync.RWMutex
	docs   []domain.Document
	byID   map[string]int
	byHash map[string]int
	chunks map[string][]domain.Chunk
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		byID:   make(map[string]int),
		byHash: make(map[string]int),
		chunks: make(map[string][]domain.Chunk),
	}
}

// SaveDocument stores a new document, enforcing content-hash uniqueness.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byHash[doc.ContentHash]; exists {
		return domain.ErrDuplicateDocument
	}

	s.docs = append(s.docs, *doc)
	s.byID[doc.ID] = len(s.docs) - 1
	s.byHash[doc.ContentHash] = len(s.docs) - 1
	return nil
}

// SaveDocumentWithChunks stores a document and its chunks atomically:
// the hash check and both writes happen under one lock, so a rejected
// or failed ingestion leaves no partial state.
func (s *DocumentStore) SaveDocumentWithChunks(_ context.Context, doc *domain.Document, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byHash[doc.ContentHash]; exists {
		return domain.ErrDuplicateDocument
	}

	s.docs = append(s.docs, *doc)
	s.byID[doc.ID] = len(s.docs) - 1
	s.byHash[doc.ContentHash] = len(s.docs) - 1
	if len(chunks) > 0 {
		s.chunks[doc.ID] = append([]domain.Chunk(nil), chunks...)
	}
	return nil
}

// SaveChunks stores chunks for a document.
func (s *DocumentStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks[chunks[0].DocumentID] = append([]domain.Chunk(nil), chunks...)
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := s.docs[idx]
	return &doc, nil
}

// GetDocumentByHash retrieves a document by its content fingerprint.
func (s *DocumentStore) GetDocumentByHash(_ context.Context, hash string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byHash[hash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := s.docs[idx]
	return &doc, nil
}

// GetChunks retrieves all chunks for a document, ordered by position.
func (s *DocumentStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chunks, ok := s.chunks[documentID]
	if !ok {
		return nil, nil
	}
	return append([]domain.Chunk(nil), chunks...), nil
}

// AllChunks returns every stored chunk in document insertion order,
// then chunk position.
func (s *DocumentStore) AllChunks(_ context.Context) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []domain.Chunk
	for _, doc := range s.docs {
		if _, live := s.byID[doc.ID]; !live {
			continue
		}
		all = append(all, s.chunks[doc.ID]...)
	}
	return all, nil
}

// DeleteDocument removes a document and its chunks.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil
	}
	delete(s.byID, id)
	delete(s.byHash, s.docs[idx].ContentHash)
	delete(s.chunks, id)
	return nil
}

// ListDocuments returns all stored documents, oldest first.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Document, 0, len(s.byID))
	for _, doc := range s.docs {
		if _, ok := s.byID[doc.ID]; ok {
			result = append(result, doc)
		}
	}
	return result, nil
}
