package driving

import (
	"context"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// SearchService retrieves relevant passages and composes answers.
type SearchService interface {
	// Search scores every stored chunk against the query, filters by
	// the relevance threshold, ranks the survivors and composes the
	// extractive answer. An empty corpus yields an empty result set
	// and the no-content answer, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}
