// Package store persists segments in a chromem-go vector collection so
// downstream consumers can retrieve sentences by similarity.
package store

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/hebnlp/hebsent/embedding"
	"github.com/hebnlp/hebsent/schema"
)

// ErrNilEmbedder is returned by New when no embedder is given.
var ErrNilEmbedder = errors.New("store: embedder must not be nil")

// SegmentStore is a segment index backed by chromem-go.
type SegmentStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	embedder   embedding.Embedder
}

// Result is one similarity hit.
type Result struct {
	ID         string
	Text       string
	DocumentID string
	Similarity float32
	Metadata   map[string]string
}

// New creates a SegmentStore. An empty persistPath keeps the store
// in-memory only.
func New(persistPath, collectionName string, embedder embedding.Embedder) (*SegmentStore, error) {
	if embedder == nil {
		return nil, ErrNilEmbedder
	}

	var db *chromem.DB
	if persistPath != "" {
		var err error
		db, err = chromem.NewPersistentDB(persistPath, false)
		if err != nil {
			return nil, fmt.Errorf("store: create persistent db: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	// Embeddings are computed by the injected embedder and passed in
	// explicitly, so the collection gets no embedding function.
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("store: get or create collection: %w", err)
	}

	return &SegmentStore{
		db:         db,
		collection: collection,
		embedder:   embedder,
	}, nil
}

// Add indexes segments. Segments without an embedding are embedded in one
// batch; segments that already carry one keep it.
func (s *SegmentStore) Add(ctx context.Context, segments []schema.Segment) error {
	if len(segments) == 0 {
		return nil
	}

	var missing []int
	var texts []string
	for i, seg := range segments {
		if len(seg.Embedding) == 0 {
			missing = append(missing, i)
			texts = append(texts, seg.Text)
		}
	}
	if len(missing) > 0 {
		vecs, err := s.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("store: embed %d segments: %w", len(texts), err)
		}
		for j, i := range missing {
			segments[i].Embedding = vecs[j]
		}
	}

	docs := make([]chromem.Document, len(segments))
	for i, seg := range segments {
		meta := make(map[string]string, len(seg.Metadata)+2)
		for k, v := range seg.Metadata {
			meta[k] = v
		}
		meta["document_id"] = seg.DocumentID
		meta["segment_index"] = strconv.Itoa(seg.Index)

		docs[i] = chromem.Document{
			ID:        seg.ID,
			Content:   seg.Text,
			Metadata:  meta,
			Embedding: seg.Embedding,
		}
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("store: add documents: %w", err)
	}
	return nil
}

// Search returns the k segments most similar to the query text. k is
// capped at the collection size.
func (s *SegmentStore) Search(ctx context.Context, query string, k int) ([]Result, error) {
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}
	if k <= 0 {
		return nil, fmt.Errorf("store: k must be positive, got %d", k)
	}

	vecs, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("store: embed query: %w", err)
	}

	hits, err := s.collection.QueryEmbedding(ctx, vecs[0], k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}

	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = Result{
			ID:         h.ID,
			Text:       h.Content,
			DocumentID: h.Metadata["document_id"],
			Similarity: h.Similarity,
			Metadata:   h.Metadata,
		}
	}
	return results, nil
}

// Count returns the number of indexed segments.
func (s *SegmentStore) Count() int {
	return s.collection.Count()
}
