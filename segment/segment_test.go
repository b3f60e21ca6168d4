package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SegmenterTestSuite struct {
	suite.Suite
}

func TestSegmenterTestSuite(t *testing.T) {
	suite.Run(t, new(SegmenterTestSuite))
}

func (s *SegmenterTestSuite) newSegmenter(opts ...Option) *Segmenter {
	seg, err := New(opts...)
	s.Require().NoError(err)
	return seg
}

func (s *SegmenterTestSuite) TestSentences_Basic() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("Cats run fast. Dogs jump high!")
	s.NoError(err)
	s.Equal([]string{"Cats run fast.", "Dogs jump high!"}, sents)
}

func (s *SegmenterTestSuite) TestSentences_Hebrew() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("שלום עולם. מה שלומך? הכל בסדר!")
	s.NoError(err)
	s.Equal([]string{"שלום עולם.", "מה שלומך?", "הכל בסדר!"}, sents)
}

func (s *SegmenterTestSuite) TestSentences_ParagraphBreak() {
	// A blank line is a boundary even without terminal punctuation, and the
	// break itself is consumed.
	seg := s.newSegmenter()
	sents, err := seg.Sentences("Hello world.\n\n  Second part?")
	s.NoError(err)
	s.Equal([]string{"Hello world.", "Second part?"}, sents)
}

func (s *SegmenterTestSuite) TestSentences_ParagraphBreakWithoutPunctuation() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("כותרת ראשונה\n\nגוף הטקסט כאן.")
	s.NoError(err)
	s.Equal([]string{"כותרת ראשונה", "גוף הטקסט כאן."}, sents)
}

func (s *SegmenterTestSuite) TestSentences_QuotedPunctuation() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences(`He said "stop." Then left.`)
	s.NoError(err)
	s.Equal([]string{`He said "stop."`, "Then left."}, sents)
}

func (s *SegmenterTestSuite) TestSentences_NoiseOnly() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("... !!! ???")
	s.NoError(err)
	s.Empty(sents)
}

func (s *SegmenterTestSuite) TestSentences_EmptyInput() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("")
	s.NoError(err)
	s.Empty(sents)
}

func (s *SegmenterTestSuite) TestSentences_OrderAndDuplicatesPreserved() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("כן. כן. כן.")
	s.NoError(err)
	s.Equal([]string{"כן.", "כן.", "כן."}, sents)
}

func (s *SegmenterTestSuite) TestSentences_OutputTrimmed() {
	seg := s.newSegmenter()
	sents, err := seg.Sentences("  First one.   Second one!  ")
	s.NoError(err)
	for _, sent := range sents {
		s.Equal(strings.TrimSpace(sent), sent)
	}
	s.Equal([]string{"First one.", "Second one!"}, sents)
}

func (s *SegmenterTestSuite) TestMarkBoundaries_SingleLetterException() {
	// The lone letter before the stop gets its own boundary, distinct from
	// the one the terminal-punctuation rule places after the whitespace.
	// The empty middle fragment is discarded during cleanup.
	seg := s.newSegmenter()
	marked, err := seg.MarkBoundaries(" A. Rest follows.")
	s.NoError(err)
	s.Equal(" A.\x01 \x01Rest follows.", marked)

	sents, err := seg.Sentences(" A. Rest follows.")
	s.NoError(err)
	s.Equal([]string{"A.", "Rest follows."}, sents)
}

func (s *SegmenterTestSuite) TestMarkBoundaries_PreservesText() {
	seg := s.newSegmenter()
	text := "שלום עולם. מה שלומך?"
	marked, err := seg.MarkBoundaries(text)
	s.NoError(err)
	s.Equal(text, strings.ReplaceAll(marked, "\x01", ""))
}

func (s *SegmenterTestSuite) TestMarkBoundaries_Collision() {
	seg := s.newSegmenter()
	_, err := seg.MarkBoundaries("before\x01after")
	s.ErrorIs(err, ErrMarkerCollision)

	_, err = seg.Sentences("before\x01after")
	s.ErrorIs(err, ErrMarkerCollision)
}

func (s *SegmenterTestSuite) TestMarker_RoundTrip() {
	seg := s.newSegmenter()
	s.Equal(rune(DefaultMarker), seg.Marker())

	m, err := seg.SetMarker('\x02')
	s.NoError(err)
	s.Equal('\x02', m)
	s.Equal('\x02', seg.Marker())
}

func (s *SegmenterTestSuite) TestSetMarker_ZeroRefused() {
	seg := s.newSegmenter()
	prev, err := seg.SetMarker('\x03')
	s.NoError(err)

	got, err := seg.SetMarker(0)
	s.ErrorIs(err, ErrNoMarker)
	s.Equal(prev, got)
	s.Equal('\x03', seg.Marker())
}

func (s *SegmenterTestSuite) TestNew_InvalidMarker() {
	_, err := New(WithMarker(' '))
	s.Error(err)

	// A word character of the script cannot be the marker.
	_, err = New(WithMarker('A'))
	s.Error(err)
}

func (s *SegmenterTestSuite) TestWithScript_Universal() {
	seg := s.newSegmenter(WithScript(Universal))
	sents, err := seg.Sentences("Привет мир. Как дела?")
	s.NoError(err)
	s.Equal([]string{"Привет мир.", "Как дела?"}, sents)
}

func (s *SegmenterTestSuite) TestHebrewScript_WordChars() {
	s.True(Hebrew.IsWordChar('א'))
	s.True(Hebrew.IsWordChar('ת'))
	s.True(Hebrew.IsWordChar('7'))
	s.True(Hebrew.IsWordChar('x'))
	s.False(Hebrew.IsWordChar('.'))
	s.False(Hebrew.IsWordChar(' '))
	s.False(Hebrew.IsWordChar('\x01'))
}
