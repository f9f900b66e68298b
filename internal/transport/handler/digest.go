package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/pep299/media-digest/internal/model"
	"github.com/pep299/media-digest/internal/transport/response"
)

// DigestService runs the analysis pipeline for one submission.
type DigestService interface {
	AnalyzeVideoURL(ctx context.Context, rawURL string) (*model.Digest, error)
	AnalyzeText(ctx context.Context, text string) (*model.Digest, error)
	AnalyzeDocument(ctx context.Context, filename string, r io.ReaderAt, size int64) (*model.Digest, error)
}

// digestView is the rendered digest returned to the user: the analysis plus
// a static explanation for each metric that is present.
type digestView struct {
	Summary      string               `json:"summary"`
	Tags         []string             `json:"tags"`
	Industries   []string             `json:"industries"`
	Metrics      model.AccessibilityMetrics `json:"metrics"`
	Explanations map[string]string    `json:"explanations"`
	ProcessedAt  time.Time            `json:"processed_at"`
}

func newDigestView(d *model.Digest) digestView {
	explanations := make(map[string]string)
	if d.Metrics.WordsPerMinute != nil {
		explanations["words_per_minute"] = model.WPMExplanation
	}
	if d.Metrics.JargonScore != nil {
		explanations["jargon_score"] = model.JargonExplanation
	}
	if d.Metrics.ReadingLevel != "" {
		explanations["reading_level"] = model.ReadingLevelExplanation
	}

	return digestView{
		Summary:      d.Summary,
		Tags:         d.Tags,
		Industries:   d.Industries,
		Metrics:      d.Metrics,
		Explanations: explanations,
		ProcessedAt:  d.ProcessedAt,
	}
}

// writeDigestError maps pipeline error kinds to HTTP status codes.
func writeDigestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		response.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrFetch), errors.Is(err, model.ErrInference):
		response.WriteBadGateway(w, err.Error())
	default:
		response.WriteInternalError(w, err.Error())
	}
}

// URL digests a video link.
type URL struct {
	digestService DigestService
}

func NewURL(digestService DigestService) *URL {
	return &URL{digestService: digestService}
}

type urlRequest struct {
	URL string `json:"url"`
}

func (h *URL) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.URL == "" {
		response.WriteBadRequest(w, "url is required")
		return
	}

	digest, err := h.digestService.AnalyzeVideoURL(r.Context(), req.URL)
	if err != nil {
		writeDigestError(w, err)
		return
	}

	response.WriteSuccess(w, "Digest created", newDigestView(digest))
}

// Text digests pasted raw text.
type Text struct {
	digestService DigestService
}

func NewText(digestService DigestService) *Text {
	return &Text{digestService: digestService}
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Text) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Text == "" {
		response.WriteBadRequest(w, "text is required")
		return
	}

	digest, err := h.digestService.AnalyzeText(r.Context(), req.Text)
	if err != nil {
		writeDigestError(w, err)
		return
	}

	response.WriteSuccess(w, "Digest created", newDigestView(digest))
}
