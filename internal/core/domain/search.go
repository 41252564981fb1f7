package domain

// Default search and ingestion parameters. The config file can override
// them; CLI flags override per invocation.
const (
	// DefaultChunkSize is the window size in words per chunk.
	DefaultChunkSize = 500

	// DefaultChunkOverlap is the number of words shared between
	// consecutive chunks.
	DefaultChunkOverlap = 50

	// DefaultSearchLimit is the maximum number of ranked chunks returned.
	DefaultSearchLimit = 5

	// DefaultThreshold is the minimum cosine similarity a chunk must
	// reach to be eligible for return.
	DefaultThreshold = 0.1

	// DefaultAnswerLimit is the number of top chunks the responder
	// aggregates into the answer.
	DefaultAnswerLimit = 3

	// DefaultMaxAnswerLength caps the composed answer in characters.
	DefaultMaxAnswerLength = 2000
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results (top-k).
	Limit int

	// Threshold is the minimum relevance score; chunks scoring below
	// it are never returned.
	Threshold float64

	// AnswerLimit is how many top results feed the extractive answer.
	AnswerLimit int

	// MaxAnswerLength caps the answer text in characters.
	MaxAnswerLength int
}

// Normalized returns a copy with zero values replaced by defaults.
func (o SearchOptions) Normalized() SearchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.Threshold < 0 {
		o.Threshold = DefaultThreshold
	}
	if o.AnswerLimit <= 0 {
		o.AnswerLimit = DefaultAnswerLimit
	}
	if o.MaxAnswerLength <= 0 {
		o.MaxAnswerLength = DefaultMaxAnswerLength
	}
	return o
}

// SearchResult represents a single ranked chunk.
// It holds a non-owning snapshot of the chunk it was scored against
// and is only meaningful within the search call that produced it.
type SearchResult struct {
	// Document is the parent of the matched chunk.
	Document Document

	// Chunk is the specific chunk that matched.
	Chunk Chunk

	// Score is the cosine similarity against the query vector,
	// in [0,1]. Scores are comparable only within one search call.
	Score float64
}

// SearchResponse is the full outcome of one search invocation:
// the ranked results plus the extractive answer composed from them.
type SearchResponse struct {
	// Query is the original query text.
	Query string

	// Results are the ranked chunks, best first.
	Results []SearchResult

	// Answer is the extractive answer text. When no chunk clears the
	// relevance threshold it carries the fixed no-content message.
	Answer string
}
