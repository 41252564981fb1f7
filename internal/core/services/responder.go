package services

import (
	"fmt"
	"strings"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

// NoContentAnswer is the fixed answer emitted when no chunk clears the
// relevance threshold. It is a valid, testable state, not an error.
const NoContentAnswer = "No relevant content found in your vault for this query."

// answerHeader is the fixed framing that precedes the extracted passages.
const answerHeader = "Based on your vault, here's what I found:"

// ComposeAnswer builds the extractive answer from the top-ranked results.
// The output is strictly composed of stored chunk text plus fixed framing;
// nothing is generated. The result is capped at maxLength characters and
// is deterministic for identical input.
func ComposeAnswer(results []domain.SearchResult, maxLength int) string {
	if len(results) == 0 {
		return NoContentAnswer
	}
	if maxLength <= 0 {
		maxLength = domain.DefaultMaxAnswerLength
	}

	var b strings.Builder
	b.WriteString(answerHeader)
	for _, r := range results {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("From %q: %s", r.Document.Title, r.Chunk.Content))
	}

	return truncate(b.String(), maxLength)
}

// truncate caps s at max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
