package rag

import (
	"strings"
	"testing"
)

func TestSplitChunksShortTextIsOnePiece(t *testing.T) {
	chunks := splitChunks("opening hours are 9 to 5", 100, 10)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if splitChunks("   ", 100, 10) != nil {
		t.Fatal("blank text should yield no chunks")
	}
}

func TestSplitChunksRespectsSizeAndOverlap(t *testing.T) {
	text := strings.Repeat("appointments can be rescheduled up to a day ahead ", 20)
	chunks := splitChunks(text, 120, 30)

	if len(chunks) < 2 {
		t.Fatalf("long text should split, got %d chunks", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 120+30 {
			t.Fatalf("chunk %d length %d exceeds size plus overlap", i, len(c))
		}
	}
	// Each boundary repeats the tail of the previous chunk.
	prevTail := chunks[0][len(chunks[0])-30:]
	if !strings.HasPrefix(chunks[1], prevTail) {
		t.Fatalf("chunk 1 should start with the previous tail %q", prevTail)
	}
}
