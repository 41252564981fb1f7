package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// SearchInput is the input schema for the search and ask tools.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to match against vault content"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
	// Threshold is a pointer so an explicit 0 (accept every chunk) is
	// distinguishable from the field being omitted.
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"minimum relevance score in [0,1] (default 0.1)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID string  `json:"document_id"`
	Title      string  `json:"title"`
	Score      float64 `json:"score"`
	Content    string  `json:"content,omitempty"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string               `json:"answer"`
	Sources []SearchResultOutput `json:"sources,omitempty"`
}

// AddDocumentInput is the input schema for the add_document tool.
type AddDocumentInput struct {
	Title   string `json:"title,omitempty" jsonschema:"document title (defaults to Untitled)"`
	Content string `json:"content" jsonschema:"the raw text content to index"`
}

// AddDocumentOutput is the output schema for the add_document tool.
type AddDocumentOutput struct {
	DocumentID string `json:"document_id,omitempty"`
	Duplicate  bool   `json:"duplicate"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the vault and return ranked passages",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Search the vault and compose an extractive answer from the top passages",
	}, s.handleAsk)

	if s.ports.Ingest != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "add_document",
			Description: "Add a text document to the vault; identical content is stored once",
		}, s.handleAddDocument)
	}
}

// searchOptions maps tool input onto domain options; zero values fall
// back to the configured defaults.
func searchOptions(input SearchInput) domain.SearchOptions {
	opts := domain.SearchOptions{
		Limit:     input.Limit,
		Threshold: -1,
	}
	if input.Threshold != nil && *input.Threshold >= 0 {
		opts.Threshold = *input.Threshold
	}
	return opts.Normalized()
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	resp, err := s.ports.Search.Search(ctx, input.Query, searchOptions(input))
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: resultOutputs(resp.Results, true),
		Count:   len(resp.Results),
	}
	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, AskOutput, error) {
	resp, err := s.ports.Search.Search(ctx, input.Query, searchOptions(input))
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:  resp.Answer,
		Sources: resultOutputs(resp.Results, false),
	}
	return nil, output, nil
}

// handleAddDocument handles the add_document tool invocation.
func (s *Server) handleAddDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDocumentInput,
) (*mcp.CallToolResult, AddDocumentOutput, error) {
	doc, err := s.ports.Ingest.Ingest(ctx, input.Title, input.Content)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDocument) {
			return nil, AddDocumentOutput{Duplicate: true}, nil
		}
		return nil, AddDocumentOutput{}, err
	}

	return nil, AddDocumentOutput{DocumentID: doc.ID}, nil
}

// resultOutputs converts domain results to the wire representation.
// Chunk content is included only when withContent is set; the ask tool
// already quotes content in its answer.
func resultOutputs(results []domain.SearchResult, withContent bool) []SearchResultOutput {
	outputs := make([]SearchResultOutput, len(results))
	for i := range results {
		outputs[i] = SearchResultOutput{
			DocumentID: results[i].Document.ID,
			Title:      results[i].Document.Title,
			Score:      results[i].Score,
		}
		if withContent {
			outputs[i].Content = results[i].Chunk.Content
		}
	}
	return outputs
}
