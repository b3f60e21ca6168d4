package reader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hebnlp/hebsent/schema"
)

// PDFReader extracts text from PDF files into documents.
type PDFReader struct {
	// SplitByPage yields one document per page instead of one per file.
	SplitByPage bool
}

// NewPDFReader creates a PDFReader.
func NewPDFReader() *PDFReader {
	return &PDFReader{}
}

// WithSplitByPage enables one document per page.
func (r *PDFReader) WithSplitByPage(split bool) *PDFReader {
	r.SplitByPage = split
	return r
}

// ReadFile extracts the text of a PDF file. Pages that fail extraction or
// contain no text are skipped.
func (r *PDFReader) ReadFile(path string) ([]schema.Document, error) {
	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open pdf %s: %w", path, err)
	}
	defer f.Close()

	numPages := pdfReader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("reader: pdf %s has no pages", path)
	}

	var docs []schema.Document
	var whole strings.Builder

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if r.SplitByPage {
			doc := schema.NewDocument(text)
			r.stampMetadata(&doc, path, numPages)
			doc.Metadata["page_number"] = strconv.Itoa(pageNum)
			docs = append(docs, doc)
			continue
		}

		if whole.Len() > 0 {
			whole.WriteString("\n\n")
		}
		whole.WriteString(text)
	}

	if !r.SplitByPage {
		if whole.Len() == 0 {
			return nil, fmt.Errorf("reader: pdf %s has no extractable text", path)
		}
		doc := schema.NewDocument(whole.String())
		r.stampMetadata(&doc, path, numPages)
		docs = append(docs, doc)
	}

	return docs, nil
}

func (r *PDFReader) stampMetadata(doc *schema.Document, path string, numPages int) {
	doc.Metadata["file_name"] = filepath.Base(path)
	doc.Metadata["file_type"] = "pdf"
	doc.Metadata["total_pages"] = strconv.Itoa(numPages)
}
