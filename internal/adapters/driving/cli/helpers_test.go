package cli

import (
	"context"
	"errors"
	"time"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response *domain.SearchResponse
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &domain.SearchResponse{
		Query:  query,
		Answer: "Based on your vault, here's what I found:",
		Results: []domain.SearchResult{
			{
				Document: domain.Document{ID: "doc-1", Title: "Mock Doc"},
				Chunk:    domain.Chunk{Content: "mock chunk content"},
				Score:    0.9,
			},
		},
	}, nil
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchResponse, error) {
	return nil, errors.New("mock search error")
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	document    *domain.Document
	err         error
	lastTitle   string
	lastContent string
}

func (m *mockIngestService) Ingest(_ context.Context, title, rawText string) (*domain.Document, error) {
	m.lastTitle = title
	m.lastContent = rawText
	if m.err != nil {
		return nil, m.err
	}
	if m.document != nil {
		return m.document, nil
	}
	return &domain.Document{ID: "doc-new", Title: title}, nil
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	details   *driving.DocumentDetails
	err       error
	deleted   []string
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.document, nil
}

func (m *mockDocumentService) GetDetails(_ context.Context, _ string) (*driving.DocumentDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

func (m *mockDocumentService) Delete(_ context.Context, documentID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, documentID)
	return nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldIngest := ingestService
	oldSearch := searchService
	oldDocument := documentService

	ingestService = &mockIngestService{}
	searchService = &mockSearchService{}
	documentService = &mockDocumentService{
		documents: []domain.Document{
			{ID: "doc-1", Title: "First", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		document: &domain.Document{ID: "doc-1", Title: "First", Content: "full content"},
		details: &driving.DocumentDetails{
			ID:         "doc-1",
			Title:      "First",
			WordCount:  2,
			ChunkCount: 1,
			Preview:    "full content",
			CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	return func() {
		ingestService = oldIngest
		searchService = oldSearch
		documentService = oldDocument
	}
}
