// Package embedding computes vector embeddings for segments bound for the
// vector store.
package embedding

import "context"

// Embedder embeds a batch of texts, one vector per input in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Static is a deterministic Embedder for tests and offline runs: every
// text maps to a fixed-dimension vector derived from its bytes.
type Static struct {
	Dim int
}

// Embed implements Embedder.
func (s Static) Embed(_ context.Context, texts []string) ([][]float32, error) {
	dim := s.Dim
	if dim <= 0 {
		dim = 8
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, dim)
		for j, b := range []byte(text) {
			vec[j%dim] += float32(b) / 255
		}
		// A zero vector has no direction; give empty text a fixed one.
		if text == "" {
			vec[0] = 1
		}
		out[i] = vec
	}
	return out, nil
}
