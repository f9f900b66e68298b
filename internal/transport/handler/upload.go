package handler

import (
	"net/http"

	"github.com/pep299/media-digest/internal/transport/response"
)

// maxUploadBytes bounds in-memory parsing of uploaded documents.
const maxUploadBytes = 32 << 20

// Upload digests an uploaded document.
type Upload struct {
	digestService DigestService
}

func NewUpload(digestService DigestService) *Upload {
	return &Upload{digestService: digestService}
}

func (h *Upload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.WriteBadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	digest, err := h.digestService.AnalyzeDocument(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		writeDigestError(w, err)
		return
	}

	response.WriteSuccess(w, "Digest created", newDigestView(digest))
}
