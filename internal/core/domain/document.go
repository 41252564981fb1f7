package domain

import "time"

// Document represents a stored piece of personal knowledge.
// It is immutable after ingestion.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title.
	Title string

	// Content is the raw submitted text.
	Content string

	// ContentHash is the fingerprint of the normalized content.
	// No two stored documents share a ContentHash.
	ContentHash string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk represents a searchable unit within a document.
// Documents are split into fixed-size overlapping word windows
// so that retrieval works at passage granularity.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the word-window text of this chunk.
	Content string

	// Position is the 0-based ordinal position within the document.
	Position int

	// StartWord and EndWord delimit the chunk's word span in the
	// source document, inclusive-exclusive.
	StartWord int
	EndWord   int
}

// WordCount returns the number of words covered by the chunk's span.
func (c Chunk) WordCount() int {
	return c.EndWord - c.StartWord
}
