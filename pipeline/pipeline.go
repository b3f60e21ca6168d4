// Package pipeline turns documents into ordered sentence segments, ready
// for downstream indexing or translation stages.
package pipeline

import (
	"errors"
	"strings"

	"github.com/hebnlp/hebsent/chunker"
	"github.com/hebnlp/hebsent/schema"
	"github.com/hebnlp/hebsent/segment"
)

// ErrNilSplitter is returned by New when no sentence splitter is given.
var ErrNilSplitter = errors.New("pipeline: sentence splitter must not be nil")

// Parser splits documents into segments. A Parser is stateless across
// calls and safe for concurrent use once constructed.
type Parser struct {
	splitter segment.SentenceSplitter
	chunker  *chunker.Chunker

	onDocumentStart func(docID string)
	onDocumentEnd   func(docID string, segments int)
}

// Option configures a Parser.
type Option func(*Parser)

// WithChunker groups each document's sentences into token-budgeted chunks;
// segments then carry chunk text and no source offsets.
func WithChunker(c *chunker.Chunker) Option {
	return func(p *Parser) {
		p.chunker = c
	}
}

// WithOnDocumentStart sets a callback invoked before a document is parsed.
func WithOnDocumentStart(fn func(docID string)) Option {
	return func(p *Parser) {
		p.onDocumentStart = fn
	}
}

// WithOnDocumentEnd sets a callback invoked after a document is parsed,
// with the number of segments produced.
func WithOnDocumentEnd(fn func(docID string, segments int)) Option {
	return func(p *Parser) {
		p.onDocumentEnd = fn
	}
}

// New creates a Parser around a sentence splitter.
func New(splitter segment.SentenceSplitter, opts ...Option) (*Parser, error) {
	if splitter == nil {
		return nil, ErrNilSplitter
	}
	p := &Parser{splitter: splitter}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse segments the documents in order. Each segment carries its source
// document ID both as a field and under the "source_doc_id" metadata key,
// plus any document metadata.
func (p *Parser) Parse(docs []schema.Document) ([]schema.Segment, error) {
	var all []schema.Segment

	for _, doc := range docs {
		if p.onDocumentStart != nil {
			p.onDocumentStart(doc.ID)
		}

		sents, err := p.splitter.Sentences(doc.Text)
		if err != nil {
			return nil, err
		}

		withOffsets := true
		if p.chunker != nil {
			sents = p.chunker.Chunk(sents)
			withOffsets = false
		}

		segments := p.buildSegments(doc, sents, withOffsets)
		all = append(all, segments...)

		if p.onDocumentEnd != nil {
			p.onDocumentEnd(doc.ID, len(segments))
		}
	}

	return all, nil
}

func (p *Parser) buildSegments(doc schema.Document, texts []string, withOffsets bool) []schema.Segment {
	segments := make([]schema.Segment, 0, len(texts))
	cursor := 0

	for i, text := range texts {
		seg := schema.NewSegment(doc.ID, i, text)

		if withOffsets {
			// Sentences appear in source order, so a forward scan finds
			// each one past the previous match.
			if at := strings.Index(doc.Text[cursor:], text); at >= 0 {
				seg.Start = cursor + at
				seg.End = seg.Start + len(text)
				cursor = seg.End
			}
		}

		for k, v := range doc.Metadata {
			seg.Metadata[k] = v
		}
		seg.Metadata["source_doc_id"] = doc.ID

		segments = append(segments, seg)
	}
	return segments
}
