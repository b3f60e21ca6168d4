// Package segment implements rule-based sentence boundary detection for
// Hebrew text. A Segmenter scans text with an ordered set of punctuation
// and whitespace heuristics, inserts a reserved marker rune at every
// detected boundary, and splits on that marker to produce a clean,
// ordered list of sentences.
//
// The rule set is deliberately shallow: there is no abbreviation or
// honorific exception list and no statistical model. For Latin-script
// corpora a Punkt-based alternative is available, see PunktSplitter.
package segment

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hebnlp/hebsent/validation"
)

// DefaultMarker is the reserved boundary rune inserted by MarkBoundaries.
// It is a non-printable control character that must not occur in input text.
const DefaultMarker = '\x01'

var (
	// ErrNoMarker is returned by SetMarker when given the zero rune.
	// The previous marker is retained.
	ErrNoMarker = errors.New("segment: no marker rune provided")

	// ErrMarkerCollision is returned when input text already contains the
	// configured marker rune. Proceeding would silently corrupt boundaries,
	// so the call fails instead.
	ErrMarkerCollision = errors.New("segment: input text contains the boundary marker")
)

// Segmenter detects sentence boundaries in text.
// It is safe for concurrent use; the marker is per-instance configuration,
// and SetMarker serializes against in-flight calls.
type Segmenter struct {
	mu     sync.RWMutex
	marker rune
	script Script
	rules  []rule
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithMarker sets the boundary marker rune.
func WithMarker(m rune) Option {
	return func(s *Segmenter) {
		s.marker = m
	}
}

// WithScript sets the script whose word characters decide which fragments
// count as sentences.
func WithScript(sc Script) Option {
	return func(s *Segmenter) {
		s.script = sc
	}
}

// New creates a Segmenter. Defaults: DefaultMarker and the Hebrew script.
func New(opts ...Option) (*Segmenter, error) {
	s := &Segmenter{
		marker: DefaultMarker,
		script: Hebrew,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := validation.ValidateSegmenterConfig(validation.SegmenterConfig{
		Marker:     s.marker,
		ScriptName: s.script.Name,
		WordClass:  s.script.WordClass,
	}); err != nil {
		return nil, err
	}
	if s.script.IsWordChar(s.marker) {
		return nil, fmt.Errorf("segment: marker %q is a word character of script %s", s.marker, s.script.Name)
	}

	rules, err := compileRules(s.script)
	if err != nil {
		return nil, err
	}
	s.rules = rules
	return s, nil
}

// Marker returns the current boundary marker rune.
func (s *Segmenter) Marker() rune {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marker
}

// SetMarker replaces the boundary marker and returns the now-current value.
// Passing the zero rune is refused: the previous marker is retained and
// returned together with ErrNoMarker.
func (s *Segmenter) SetMarker(m rune) (rune, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == 0 {
		return s.marker, ErrNoMarker
	}
	s.marker = m
	return s.marker, nil
}

// MarkBoundaries returns text with the marker rune inserted at every
// detected sentence boundary. Apart from inserted markers (and paragraph
// breaks, which are replaced by a marker) the text is unchanged.
//
// If the input already contains the marker, ErrMarkerCollision is returned.
func (s *Segmenter) MarkBoundaries(text string) (string, error) {
	s.mu.RLock()
	marker := s.marker
	rules := s.rules
	s.mu.RUnlock()
	return markBoundaries(text, marker, rules)
}

// Sentences splits text into an ordered list of sentences. Fragments with
// no word character of the configured script are dropped; survivors are
// trimmed of surrounding whitespace. Empty input yields an empty list.
func (s *Segmenter) Sentences(text string) ([]string, error) {
	s.mu.RLock()
	marker := s.marker
	rules := s.rules
	script := s.script
	s.mu.RUnlock()

	if text == "" {
		return nil, nil
	}

	marked, err := markBoundaries(text, marker, rules)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, frag := range strings.Split(marked, string(marker)) {
		if !containsWordChar(frag, script) {
			continue
		}
		out = append(out, strings.TrimSpace(frag))
	}
	return out, nil
}

func markBoundaries(text string, marker rune, rules []rule) (string, error) {
	if err := validation.CheckMarkerFree(text, marker); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkerCollision, err)
	}
	for _, r := range rules {
		text = r.apply(text, string(marker))
	}
	return text, nil
}

func containsWordChar(s string, sc Script) bool {
	for _, r := range s {
		if sc.IsWordChar(r) {
			return true
		}
	}
	return false
}
