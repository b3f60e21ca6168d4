// Package chunker groups sentences into chunks under a token budget, for
// downstream consumers whose context is token-limited.
package chunker

import (
	"strings"

	"github.com/hebnlp/hebsent/validation"
)

const (
	DefaultMaxTokens = 256
	DefaultOverlap   = 0
)

// Chunker packs whole sentences into chunks of at most MaxTokens tokens.
// Sentences are never split; a single sentence over the budget is emitted
// as its own chunk. Overlap re-includes trailing sentences of the previous
// chunk whose combined size fits the overlap budget.
type Chunker struct {
	MaxTokens int
	Overlap   int
	Tokenizer Tokenizer
}

// New creates a Chunker. Pass 0 for maxTokens to use DefaultMaxTokens; a
// nil tokenizer defaults to SimpleTokenizer.
func New(maxTokens, overlap int, tok Tokenizer) (*Chunker, error) {
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	if tok == nil {
		tok = NewSimpleTokenizer()
	}

	if err := validation.ValidateChunkerConfig(validation.ChunkerConfig{
		MaxTokens: maxTokens,
		Overlap:   overlap,
	}); err != nil {
		return nil, err
	}

	return &Chunker{
		MaxTokens: maxTokens,
		Overlap:   overlap,
		Tokenizer: tok,
	}, nil
}

// Chunk groups sentences, in order, into token-budgeted chunks. Sentences
// within a chunk are joined with a single space.
func (c *Chunker) Chunk(sentences []string) []string {
	if len(sentences) == 0 {
		return nil
	}

	sizes := make([]int, len(sentences))
	for i, sent := range sentences {
		sizes[i] = len(c.Tokenizer.Encode(sent))
	}

	var chunks []string
	start := 0
	for start < len(sentences) {
		end := start
		total := 0
		for end < len(sentences) {
			if total > 0 && total+sizes[end] > c.MaxTokens {
				break
			}
			total += sizes[end]
			end++
		}
		// The first sentence always joins, even when over budget.
		if end == start {
			end = start + 1
		}

		chunks = append(chunks, strings.Join(sentences[start:end], " "))

		if end >= len(sentences) {
			break
		}
		start = end - c.overlapCount(sizes, start, end)
	}
	return chunks
}

// overlapCount walks backwards from end to find how many trailing
// sentences fit the overlap budget. At least one sentence of progress past
// start is guaranteed.
func (c *Chunker) overlapCount(sizes []int, start, end int) int {
	if c.Overlap <= 0 {
		return 0
	}
	count := 0
	budget := 0
	for i := end - 1; i > start; i-- {
		if budget+sizes[i] > c.Overlap {
			break
		}
		budget += sizes[i]
		count++
	}
	return count
}
