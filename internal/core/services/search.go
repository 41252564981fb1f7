package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driven"
	"github.com/mindvault-labs/mindvault-cli/internal/core/ports/driving"
	"github.com/mindvault-labs/mindvault-cli/internal/index/tfidf"
	"github.com/mindvault-labs/mindvault-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// scoredChunk pairs a corpus position with its query similarity.
type scoredChunk struct {
	index int
	score float64
}

// SearchService retrieves relevant chunks and composes extractive answers.
// Each call reads the corpus once as an immutable snapshot, builds the
// TF-IDF space over chunks+query, ranks, and responds; nothing persists
// between calls.
type SearchService struct {
	docStore   driven.DocumentStore
	vectorizer *tfidf.Vectorizer
}

// NewSearchService creates a new search service.
func NewSearchService(docStore driven.DocumentStore) *SearchService {
	return &SearchService{
		docStore:   docStore,
		vectorizer: tfidf.NewVectorizer(),
	}
}

// Search runs one full retrieval pass: corpus snapshot, vector space
// build, threshold + top-k ranking, answer composition. A store failure
// aborts the whole call; partial results are never returned.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	opts = opts.Normalized()
	query = strings.TrimSpace(query)

	chunks, err := s.docStore.AllChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	logger.Debug("Corpus: %d chunks", len(chunks))

	if len(chunks) == 0 || query == "" {
		return &domain.SearchResponse{
			Query:   query,
			Results: []domain.SearchResult{},
			Answer:  NoContentAnswer,
		}, nil
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}

	scores := s.vectorizer.Score(texts, query)
	ranked := rank(scores, opts.Limit, opts.Threshold)
	logger.Debug("Ranked: %d of %d chunks above threshold %.2f (limit %d)",
		len(ranked), len(chunks), opts.Threshold, opts.Limit)

	results, err := s.hydrateResults(ctx, chunks, ranked)
	if err != nil {
		return nil, fmt.Errorf("hydrating results: %w", err)
	}

	answerLimit := opts.AnswerLimit
	if answerLimit > len(results) {
		answerLimit = len(results)
	}
	answer := ComposeAnswer(results[:answerLimit], opts.MaxAnswerLength)

	logger.Info("Final results: %d", len(results))
	return &domain.SearchResponse{
		Query:   query,
		Results: results,
		Answer:  answer,
	}, nil
}

// rank filters scores by the relevance threshold and returns up to limit
// entries sorted by descending score. The sort is stable, so equal
// scores keep the corpus snapshot order (ascending chunk insertion
// order), which makes the output deterministic. Below-threshold chunks
// are never used as padding.
func rank(scores []float64, limit int, threshold float64) []scoredChunk {
	eligible := make([]scoredChunk, 0, len(scores))
	for i, score := range scores {
		if score >= threshold {
			eligible = append(eligible, scoredChunk{index: i, score: score})
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}

// hydrateResults attaches parent documents to the ranked chunks.
// Documents are fetched once each; a chunk whose document vanished
// mid-call is skipped rather than failing the search.
func (s *SearchService) hydrateResults(
	ctx context.Context, chunks []domain.Chunk, ranked []scoredChunk,
) ([]domain.SearchResult, error) {
	docs := make(map[string]*domain.Document)

	results := make([]domain.SearchResult, 0, len(ranked))
	for _, sc := range ranked {
		chunk := chunks[sc.index]

		doc, ok := docs[chunk.DocumentID]
		if !ok {
			var err error
			doc, err = s.docStore.GetDocument(ctx, chunk.DocumentID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("getting document %s: %w", chunk.DocumentID, err)
			}
			docs[chunk.DocumentID] = doc
		}

		results = append(results, domain.SearchResult{
			Document: *doc,
			Chunk:    chunk,
			Score:    sc.score,
		})
	}

	return results, nil
}
