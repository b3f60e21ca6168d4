// Package reader acquires source text and hands it to the pipeline as
// documents. Decoding of legacy single-byte Hebrew encodings happens here,
// so the segmenter always sees UTF-8.
package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/hebnlp/hebsent/schema"
)

// TextReader reads plain-text files into documents.
type TextReader struct {
	// Encoding names the source encoding. Empty means UTF-8 input.
	// Supported legacy encodings: "windows-1255", "iso-8859-8".
	Encoding string
}

// NewTextReader creates a TextReader for UTF-8 input.
func NewTextReader() *TextReader {
	return &TextReader{}
}

// NewTextReaderWithEncoding creates a TextReader that transcodes from the
// named legacy encoding. The encoding name is validated on first read.
func NewTextReaderWithEncoding(name string) *TextReader {
	return &TextReader{Encoding: strings.ToLower(name)}
}

// Read reads all of r into a document.
func (t *TextReader) Read(r io.Reader) (schema.Document, error) {
	dec, err := decoderFor(t.Encoding)
	if err != nil {
		return schema.Document{}, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec.NewDecoder())
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return schema.Document{}, fmt.Errorf("reader: read text: %w", err)
	}

	doc := schema.NewDocument(string(b))
	if t.Encoding != "" {
		doc.Metadata["source_encoding"] = t.Encoding
	}
	return doc, nil
}

// ReadFile reads a file into a document, recording the file name in the
// document metadata.
func (t *TextReader) ReadFile(path string) (schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return schema.Document{}, fmt.Errorf("reader: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := t.Read(f)
	if err != nil {
		return schema.Document{}, fmt.Errorf("reader: %s: %w", path, err)
	}
	doc.Metadata["file_name"] = filepath.Base(path)
	return doc, nil
}

func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1255", "cp1255":
		return charmap.Windows1255, nil
	case "iso-8859-8", "iso8859-8":
		return charmap.ISO8859_8, nil
	default:
		return nil, fmt.Errorf("reader: unsupported encoding %q", name)
	}
}
