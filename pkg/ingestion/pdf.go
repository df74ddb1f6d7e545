// Package ingestion pulls source documents into plain text: PDF resumes,
// Medium feeds and GitHub repositories.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFPage is the extracted text of a single page.
type PDFPage struct {
	PageNumber int
	Content    string
}

// ExtractPDFPages pulls plain text out of a PDF, one entry per non-empty
// page, in page order.
func ExtractPDFPages(reader io.Reader) ([]PDFPage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	content, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	var pages []PDFPage
	for pageIndex := 1; pageIndex <= content.NumPage(); pageIndex++ {
		page := content.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", pageIndex, err)
		}

		clean := strings.TrimSpace(text)
		if clean != "" {
			pages = append(pages, PDFPage{PageNumber: pageIndex, Content: clean})
		}
	}

	return pages, nil
}

// ExtractPDFText joins all pages into one document, separated by blank
// lines so the chunker sees page breaks as paragraph boundaries.
func ExtractPDFText(reader io.Reader) (string, error) {
	pages, err := ExtractPDFPages(reader)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(pages))
	for i, page := range pages {
		parts[i] = page.Content
	}
	return strings.Join(parts, "\n\n"), nil
}
