package mcp

import (
	"context"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response *domain.SearchResponse
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.response == nil {
		return &domain.SearchResponse{Query: query}, nil
	}
	return m.response, nil
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	document *domain.Document
	err      error
}

func (m *mockIngestService) Ingest(_ context.Context, _, _ string) (*domain.Document, error) {
	return m.document, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	details   *driving.DocumentDetails
	err       error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) GetDetails(_ context.Context, _ string) (*driving.DocumentDetails, error) {
	return m.details, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}
