package segment

import (
	"fmt"
	"regexp"
)

// ruleKind selects the replace semantics of a boundary rule.
type ruleKind int

const (
	// replaceMatch substitutes the marker for the whole match. The matched
	// characters are consumed.
	replaceMatch ruleKind = iota
	// appendMarker re-emits the match and places the marker right after it.
	appendMarker
)

// rule is one stage of the boundary pipeline. Rules run in order over the
// then-current text, so later rules see markers inserted by earlier ones.
type rule struct {
	name string
	re   *regexp.Regexp
	kind ruleKind
}

func (r rule) apply(text, marker string) string {
	if r.kind == replaceMatch {
		return r.re.ReplaceAllString(text, marker)
	}
	return r.re.ReplaceAllStringFunc(text, func(m string) string {
		return m + marker
	})
}

// compileRules builds the boundary pipeline for a script. The order is
// load-bearing:
//
//  1. A blank line (newline, optional whitespace, newline) is a boundary
//     even without terminal punctuation. The whitespace run itself is
//     replaced by the marker.
//  2. Terminal punctuation (. ! ?), optionally followed by one closing
//     quote or bracket, then whitespace, gets a marker after the
//     whitespace. The match is preserved.
//  3. Whitespace, a single word character, then terminal punctuation gets
//     a marker directly after the punctuation: a lone letter before the
//     stop (an initial, a single-letter token) ends a sentence on its
//     own. This can double-mark next to rule 2; adjacent markers produce
//     empty fragments that cleanup discards.
func compileRules(sc Script) ([]rule, error) {
	singleLetter := `\s` + sc.WordClass + `[.!?]`
	re, err := regexp.Compile(singleLetter)
	if err != nil {
		return nil, fmt.Errorf("segment: script %s word class %q: %w", sc.Name, sc.WordClass, err)
	}
	return []rule{
		{name: "paragraph-break", re: paragraphBreakRe, kind: replaceMatch},
		{name: "terminal-punctuation", re: terminalPunctRe, kind: appendMarker},
		{name: "single-letter", re: re, kind: appendMarker},
	}, nil
}

var (
	paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)
	terminalPunctRe  = regexp.MustCompile(`[.!?]['")\]}]?\s`)
)
