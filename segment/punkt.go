package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// PunktSplitter is a statistical sentence splitter backed by
// neurosnap/sentences, for pipelines that also see Latin-script documents.
// The rule-based Segmenter remains the default for Hebrew text.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter creates a splitter from Punkt JSON training data.
// If trainingData is empty, the bundled english training data is used.
func NewPunktSplitter(trainingData []byte) (*PunktSplitter, error) {
	if len(trainingData) == 0 {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			return nil, fmt.Errorf("segment: load bundled punkt data: %w", err)
		}
		trainingData = b
	}

	training, err := sentences.LoadTraining(trainingData)
	if err != nil {
		return nil, fmt.Errorf("segment: parse punkt training data: %w", err)
	}
	return &PunktSplitter{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

// Sentences implements SentenceSplitter.
func (p *PunktSplitter) Sentences(text string) ([]string, error) {
	raw := p.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		t := strings.TrimSpace(s.Text)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
