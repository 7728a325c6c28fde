// Package pdftext extracts plain text from local PDF files, page by page.
//
// Extraction is best-effort: the underlying library reconstructs text from
// the content stream and may omit whitespace between words for some inputs.
// Pages that cannot be decoded are skipped, not fatal.
package pdftext

import (
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
)

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int    // 1-based page number
	Text   string // Plain text of the page, best-effort
}

// Extractor reads local PDF files and exposes page count and per-page text.
type Extractor struct {
	log *slog.Logger
}

// NewExtractor creates a new PDF text extractor.
func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// PageCount returns the number of pages in the PDF at path.
func (e *Extractor) PageCount(path string) (int, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	return reader.NumPage(), nil
}

// Extract opens the PDF at path and returns the plain text of every page.
// Pages that fail to decode are logged and skipped.
func (e *Extractor) Extract(path string) ([]Page, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	total := reader.NumPage()
	pages := make([]Page, 0, total)

	for num := 1; num <= total; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			e.log.Warn("Skipping missing PDF page", "path", path, "page", num)
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.log.Warn("Failed to extract text from PDF page", "path", path, "page", num, "error", err)
			continue
		}

		pages = append(pages, Page{Number: num, Text: text})
	}

	return pages, nil
}
