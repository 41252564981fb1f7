package chunker

import (
	"strings"
	"testing"

	"github.com/mindvault-labs/mindvault-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := New()
		if c.windowSize != DefaultWindowSize {
			t.Errorf("expected windowSize %d, got %d", DefaultWindowSize, c.windowSize)
		}
		if c.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, c.overlap)
		}
	})

	t.Run("custom window size", func(t *testing.T) {
		c := New(WithWindowSize(100))
		if c.windowSize != 100 {
			t.Errorf("expected windowSize 100, got %d", c.windowSize)
		}
	})

	t.Run("overlap reduced when it reaches window size", func(t *testing.T) {
		c := New(WithWindowSize(10), WithOverlap(10))
		if c.overlap >= c.windowSize {
			t.Error("overlap should be reduced below window size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		c := New(WithWindowSize(0), WithOverlap(-1))
		if c.windowSize != DefaultWindowSize {
			t.Errorf("expected default windowSize, got %d", c.windowSize)
		}
		if c.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", c.overlap)
		}
	})
}

func TestChunk_EmptyContent(t *testing.T) {
	c := New()
	doc := &domain.Document{ID: "doc-1", Content: "   \n\t  "}

	chunks := c.Chunk(doc)
	if len(chunks) != 0 {
		t.Errorf("expected 0 chunks for whitespace-only content, got %d", len(chunks))
	}
}

func TestChunk_ShorterThanWindow(t *testing.T) {
	c := New(WithWindowSize(100), WithOverlap(20))
	doc := &domain.Document{ID: "doc-1", Content: "just a few words here"}

	chunks := c.Chunk(doc)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != "just a few words here" {
		t.Errorf("unexpected chunk content: %q", chunks[0].Content)
	}
	if chunks[0].StartWord != 0 || chunks[0].EndWord != 5 {
		t.Errorf("expected span [0,5), got [%d,%d)", chunks[0].StartWord, chunks[0].EndWord)
	}
}

// Ten words with a 5-word window and 1-word overlap slide in steps of 4,
// producing windows of 5, 5 and 2 words.
func TestChunk_TenWordScenario(t *testing.T) {
	c := New(WithWindowSize(5), WithOverlap(1))
	doc := &domain.Document{
		ID:      "doc-1",
		Content: "the cat sat on the mat the dog ran around",
	}

	chunks := c.Chunk(doc)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	wantSpans := [][2]int{{0, 5}, {4, 9}, {8, 10}}
	for i, want := range wantSpans {
		if chunks[i].StartWord != want[0] || chunks[i].EndWord != want[1] {
			t.Errorf("chunk %d: expected span [%d,%d), got [%d,%d)",
				i, want[0], want[1], chunks[i].StartWord, chunks[i].EndWord)
		}
		if chunks[i].Position != i {
			t.Errorf("chunk %d: expected position %d, got %d", i, i, chunks[i].Position)
		}
	}
}

func TestChunk_CoverageAndOverlap(t *testing.T) {
	c := New(WithWindowSize(7), WithOverlap(2))

	words := make([]string, 53)
	for i := range words {
		words[i] = "w"
	}
	doc := &domain.Document{ID: "doc-1", Content: strings.Join(words, " ")}

	chunks := c.Chunk(doc)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}

	// Coverage: spans must tile [0, 53) with no gap.
	if chunks[0].StartWord != 0 {
		t.Errorf("first chunk must start at 0, got %d", chunks[0].StartWord)
	}
	if chunks[len(chunks)-1].EndWord != 53 {
		t.Errorf("last chunk must end at 53, got %d", chunks[len(chunks)-1].EndWord)
	}
	for i := 1; i < len(chunks); i++ {
		overlap := chunks[i-1].EndWord - chunks[i].StartWord
		if overlap < 0 {
			t.Fatalf("gap between chunk %d and %d", i-1, i)
		}
		// Every consecutive pair except possibly the final one
		// overlaps by exactly the configured amount.
		if i < len(chunks)-1 && overlap != 2 {
			t.Errorf("chunks %d/%d: expected overlap 2, got %d", i-1, i, overlap)
		}
	}
}

func TestChunk_Deterministic(t *testing.T) {
	c := New(WithWindowSize(4), WithOverlap(1))
	doc := &domain.Document{ID: "doc-1", Content: "a b c d e f g h i j k"}

	first := c.Chunk(doc)
	second := c.Chunk(doc)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Content != second[i].Content ||
			first[i].StartWord != second[i].StartWord ||
			first[i].EndWord != second[i].EndWord {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestChunk_UniqueIDs(t *testing.T) {
	c := New(WithWindowSize(3), WithOverlap(1))
	doc := &domain.Document{ID: "doc-1", Content: "a b c d e f g h"}

	chunks := c.Chunk(doc)
	seen := make(map[string]bool)
	for _, chunk := range chunks {
		if seen[chunk.ID] {
			t.Errorf("duplicate chunk ID: %s", chunk.ID)
		}
		seen[chunk.ID] = true
		if chunk.DocumentID != doc.ID {
			t.Errorf("expected DocumentID %q, got %q", doc.ID, chunk.DocumentID)
		}
	}
}
