package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pep299/media-digest/internal/export"
	"github.com/pep299/media-digest/internal/model"
	"github.com/pep299/media-digest/internal/transport/response"
)

// Export renders an already-computed digest as a downloadable Word document.
// It takes the digest JSON back from the client so nothing is stored
// server-side between requests.
type Export struct{}

func NewExport() *Export {
	return &Export{}
}

func (h *Export) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var digest model.Digest
	if err := json.NewDecoder(r.Body).Decode(&digest); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if digest.Summary == "" {
		response.WriteBadRequest(w, "summary is required")
		return
	}

	tmpDir, err := os.MkdirTemp("", "media-digest-export")
	if err != nil {
		response.WriteInternalError(w, "Could not create export file")
		return
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "digest.docx")
	if err := export.WriteDocx(&digest, path); err != nil {
		log.Printf("Error writing docx export: %v", err)
		response.WriteInternalError(w, "Could not render document")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		response.WriteInternalError(w, "Could not read export file")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="digest.docx"`)
	w.Write(data)
}
