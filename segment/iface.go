package segment

// SentenceSplitter splits text into an ordered list of sentences.
// Segmenter and PunktSplitter both implement it.
type SentenceSplitter interface {
	Sentences(text string) ([]string, error)
}
