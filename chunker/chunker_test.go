package chunker

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ChunkerTestSuite struct {
	suite.Suite
}

func TestChunkerTestSuite(t *testing.T) {
	suite.Run(t, new(ChunkerTestSuite))
}

func (s *ChunkerTestSuite) TestChunk_AllFit() {
	c, err := New(100, 0, nil)
	s.Require().NoError(err)

	chunks := c.Chunk([]string{"שלום עולם.", "מה שלומך?"})
	s.Equal([]string{"שלום עולם. מה שלומך?"}, chunks)
}

func (s *ChunkerTestSuite) TestChunk_SplitsOnBudget() {
	// Each sentence is two whitespace tokens.
	c, err := New(4, 0, nil)
	s.Require().NoError(err)

	chunks := c.Chunk([]string{"One two.", "Three four.", "Five six."})
	s.Equal([]string{"One two. Three four.", "Five six."}, chunks)
}

func (s *ChunkerTestSuite) TestChunk_OversizedSentenceEmittedAlone() {
	c, err := New(2, 0, nil)
	s.Require().NoError(err)

	chunks := c.Chunk([]string{"a very long sentence here.", "ok."})
	s.Equal([]string{"a very long sentence here.", "ok."}, chunks)
}

func (s *ChunkerTestSuite) TestChunk_Overlap() {
	c, err := New(2, 1, nil)
	s.Require().NoError(err)

	chunks := c.Chunk([]string{"A.", "B.", "C."})
	s.Equal([]string{"A. B.", "B. C."}, chunks)
}

func (s *ChunkerTestSuite) TestChunk_Empty() {
	c, err := New(0, 0, nil)
	s.Require().NoError(err)
	s.Nil(c.Chunk(nil))
	s.Equal(DefaultMaxTokens, c.MaxTokens)
}

func (s *ChunkerTestSuite) TestNew_InvalidConfig() {
	_, err := New(-1, 0, nil)
	s.Error(err)

	_, err = New(2, 2, nil)
	s.Error(err)

	_, err = New(2, -1, nil)
	s.Error(err)
}

func (s *ChunkerTestSuite) TestTikTokenTokenizer_Error() {
	_, err := NewTikTokenTokenizer("invalid-model-name-12345")
	s.Error(err)
}

func (s *ChunkerTestSuite) TestSimpleTokenizer() {
	tok := NewSimpleTokenizer()
	s.Len(tok.Encode("שלום עולם gadol"), 3)
	s.Empty(tok.Encode("   "))
}
