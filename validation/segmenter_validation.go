package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// SegmenterConfig holds configuration for Segmenter validation.
type SegmenterConfig struct {
	Marker     rune
	ScriptName string
	WordClass  string
}

// ValidateSegmenterConfig validates Segmenter configuration.
func ValidateSegmenterConfig(cfg SegmenterConfig) error {
	v := NewValidator()

	v.Require(cfg.Marker != 0, "marker", "must not be the zero rune")
	if cfg.Marker != 0 && unicode.IsSpace(cfg.Marker) {
		// Whitespace markers collide with the rules' own whitespace matching.
		v.AddError("marker", "must not be a whitespace rune", cfg.Marker)
	}

	v.RequireNotEmpty(cfg.ScriptName, "script_name")
	v.RequireNotEmpty(cfg.WordClass, "word_class")
	if cfg.WordClass != "" {
		if _, err := regexp.Compile(cfg.WordClass); err != nil {
			v.AddError("word_class", fmt.Sprintf("must be a valid regexp class: %v", err), cfg.WordClass)
		}
	}

	return v.Error()
}

// ChunkerConfig holds configuration for Chunker validation.
type ChunkerConfig struct {
	MaxTokens int
	Overlap   int
}

// ValidateChunkerConfig validates Chunker configuration.
func ValidateChunkerConfig(cfg ChunkerConfig) error {
	v := NewValidator()

	v.RequirePositive(cfg.MaxTokens, "max_tokens")
	v.RequireNonNegative(cfg.Overlap, "overlap")

	if cfg.Overlap >= cfg.MaxTokens && cfg.MaxTokens > 0 {
		v.AddError("overlap",
			fmt.Sprintf("must be less than max_tokens (%d)", cfg.MaxTokens),
			cfg.Overlap)
	}

	return v.Error()
}

// CheckMarkerFree reports an error if text contains the marker rune.
func CheckMarkerFree(text string, marker rune) error {
	if i := strings.IndexRune(text, marker); i >= 0 {
		return fmt.Errorf("input contains reserved marker %q at byte %d", marker, i)
	}
	return nil
}
