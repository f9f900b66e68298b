// Package document extracts plain text from uploaded documents.
package document

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pep299/media-digest/internal/model"
)

// ExtractText extracts the plain text of an uploaded document. The format is
// chosen by file extension; only PDF is supported.
func ExtractText(filename string, r io.ReaderAt, size int64) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return extractPDF(r, size)
	default:
		return "", fmt.Errorf("%w: unsupported document type %q", model.ErrInvalidInput, ext)
	}
}

// extractPDF reads every page of the PDF and concatenates its text content.
func extractPDF(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", model.ErrFetch, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extracting PDF text: %v", model.ErrFetch, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", fmt.Errorf("%w: reading PDF text: %v", model.ErrFetch, err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("%w: no text content in PDF", model.ErrFetch)
	}
	return text, nil
}
