// Package chunker provides a fixed-size overlapping word-window chunker.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// DefaultWindowSize is the default number of words per chunk.
const DefaultWindowSize = domain.DefaultChunkSize

// DefaultOverlap is the default number of words shared between
// consecutive chunks.
const DefaultOverlap = domain.DefaultChunkOverlap

// Chunker splits document text into fixed-size overlapping word windows.
type Chunker struct {
	windowSize int
	overlap    int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithWindowSize sets the window size in words.
func WithWindowSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.windowSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		windowSize: DefaultWindowSize,
		overlap:    DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must stay strictly below the window size or the
	// window never advances.
	if c.overlap >= c.windowSize {
		c.overlap = c.windowSize / 4
	}

	return c
}

// WindowSize returns the configured window size in words.
func (c *Chunker) WindowSize() int { return c.windowSize }

// Overlap returns the configured overlap in words.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits the document's content into an ordered sequence of
// overlapping word windows. The final window may be shorter than the
// window size; it is still emitted so the union of word spans covers
// the whole document. Empty content produces no chunks.
//
// The split is deterministic for identical input, which re-ingestion
// detection and the tests rely on. Chunk IDs are freshly generated.
func (c *Chunker) Chunk(doc *domain.Document) []domain.Chunk {
	words := strings.Fields(doc.Content)
	if len(words) == 0 {
		return nil
	}

	step := c.windowSize - c.overlap

	estimated := (len(words) / step) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	for start := 0; start < len(words); start += step {
		end := start + c.windowSize
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    strings.Join(words[start:end], " "),
			Position:   position,
			StartWord:  start,
			EndWord:    end,
		})
		position++
	}

	return chunks
}
