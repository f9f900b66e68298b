package document

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pep299/media-digest/internal/model"
)

func TestExtractText_UnsupportedType(t *testing.T) {
	tests := []string{"notes.txt", "slides.pptx", "archive", "report.PDF.bak"}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			data := []byte("irrelevant")
			_, err := ExtractText(filename, bytes.NewReader(data), int64(len(data)))
			if !errors.Is(err, model.ErrInvalidInput) {
				t.Errorf("ExtractText(%q) error = %v, expected invalid input", filename, err)
			}
		})
	}
}

func TestExtractText_MalformedPDF(t *testing.T) {
	data := []byte("this is not a pdf document")
	_, err := ExtractText("upload.pdf", bytes.NewReader(data), int64(len(data)))
	if err == nil {
		t.Fatal("expected error for malformed PDF")
	}
	if !errors.Is(err, model.ErrFetch) {
		t.Errorf("expected fetch error, got: %v", err)
	}
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	data := []byte("still not a pdf")
	_, err := ExtractText("REPORT.PDF", bytes.NewReader(data), int64(len(data)))
	// Reaches the PDF parser rather than being rejected as unsupported.
	if errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("uppercase .PDF should be routed to the PDF parser, got: %v", err)
	}
}
