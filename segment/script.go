package segment

import "unicode"

// Script configures the word-character test for a target alphabet. A
// fragment with no word character is punctuation or whitespace noise and
// is dropped from the sentence list; the single-letter boundary rule also
// matches against the script's word class.
type Script struct {
	// Name identifies the script in errors.
	Name string
	// WordClass is a regexp character class matching exactly one word
	// character of the script.
	WordClass string
	// IsWordChar reports whether r is a word character of the script.
	IsWordChar func(r rune) bool
}

// Hebrew covers the Hebrew block plus ASCII letters and digits, matching
// the character repertoire of the legacy single-byte Hebrew code pages
// (windows-1255, ISO-8859-8) after decoding.
var Hebrew = Script{
	Name:      "hebrew",
	WordClass: `[\p{Hebrew}A-Za-z0-9]`,
	IsWordChar: func(r rune) bool {
		return unicode.Is(unicode.Hebrew, r) ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
	},
}

// Universal treats any Unicode letter or digit as a word character, for
// mixed-script corpora.
var Universal = Script{
	Name:      "universal",
	WordClass: `[\p{L}\p{N}]`,
	IsWordChar: func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	},
}
