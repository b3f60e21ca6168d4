// Package schema defines the document and segment types shared across the
// hebsent pipeline.
package schema

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// Document is a unit of source text to be segmented.
type Document struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewDocument creates a Document with a generated ID.
func NewDocument(text string) Document {
	return Document{
		ID:       uuid.New().String(),
		Text:     text,
		Metadata: map[string]string{},
	}
}

// Segment is one sentence (or sentence group, when chunked) extracted from
// a document.
type Segment struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	// Index is the zero-based position of the segment within its document.
	Index int    `json:"index"`
	Text  string `json:"text"`
	// Start and End are byte offsets of the trimmed text within the source
	// document. Both are zero when offsets are unavailable, e.g. for
	// chunked segments whose joined text no longer appears verbatim.
	Start     int               `json:"start,omitempty"`
	End       int               `json:"end,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Embedding []float32         `json:"embedding,omitempty"`
}

// NewSegment creates a Segment with a generated ID.
func NewSegment(documentID string, index int, text string) Segment {
	return Segment{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		Index:      index,
		Text:       text,
		Metadata:   map[string]string{},
	}
}

// Hash returns a stable content hash of the segment text, usable for
// dedup and cache keys downstream.
func (s Segment) Hash() string {
	sum := sha256.Sum256([]byte(s.Text))
	return hex.EncodeToString(sum[:])
}
