package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/pep299/media-digest/internal/document"
	"github.com/pep299/media-digest/internal/llmjson"
	"github.com/pep299/media-digest/internal/model"
	"github.com/pep299/media-digest/internal/repository"
	"github.com/pep299/media-digest/internal/youtube"
)

// Digest runs the analysis pipeline: resolve input to a transcript, then
// three sequential completion calls (summary, semantics, structure).
type Digest struct {
	inference   repository.InferenceRepository
	transcripts repository.TranscriptRepository
}

func NewDigest(
	inference repository.InferenceRepository,
	transcripts repository.TranscriptRepository,
) *Digest {
	return &Digest{
		inference:   inference,
		transcripts: transcripts,
	}
}

// AnalyzeVideoURL digests a video link.
func (d *Digest) AnalyzeVideoURL(ctx context.Context, rawURL string) (*model.Digest, error) {
	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: no video identifier in URL %q", model.ErrInvalidInput, rawURL)
	}

	transcript, err := d.transcripts.FetchVideoTranscript(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetching transcript for %s: %w", videoID, err)
	}

	return d.Analyze(ctx, transcript)
}

// AnalyzeText digests pasted raw text.
func (d *Digest) AnalyzeText(ctx context.Context, text string) (*model.Digest, error) {
	transcript, err := model.NewTextTranscript(text, model.SourceText)
	if err != nil {
		return nil, err
	}
	return d.Analyze(ctx, transcript)
}

// AnalyzeDocument digests an uploaded document.
func (d *Digest) AnalyzeDocument(ctx context.Context, filename string, r io.ReaderAt, size int64) (*model.Digest, error) {
	text, err := document.ExtractText(filename, r, size)
	if err != nil {
		return nil, fmt.Errorf("extracting document text: %w", err)
	}

	transcript, err := model.NewTextTranscript(text, model.SourceDocument)
	if err != nil {
		return nil, err
	}
	return d.Analyze(ctx, transcript)
}

// Analyze runs the three completion calls against a resolved transcript.
// A summary failure fails the whole digest; unparseable semantics or
// structure replies are logged and yield absent fields instead.
func (d *Digest) Analyze(ctx context.Context, transcript *model.Transcript) (*model.Digest, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	logger.Printf("Digest started source=%s words=%d", transcript.Source, transcript.WordCount)

	// Summary phase
	summaryStart := time.Now()
	summary, err := d.inference.Summarize(ctx, transcript.Text)
	if err != nil {
		logger.Printf("Error summarizing transcript: %v", err)
		return nil, err
	}
	summaryDuration := time.Since(summaryStart)

	// Semantics phase consumes the summary, not the raw transcript
	semanticsStart := time.Now()
	var semantics model.Semantics
	semanticsReply, err := d.inference.AnalyzeSemantics(ctx, summary)
	if err != nil {
		logger.Printf("Error analyzing semantics: %v", err)
		return nil, err
	}
	if parsed, ok, parseErr := llmjson.Decode[model.Semantics](semanticsReply); parseErr != nil || !ok {
		logger.Printf("Failed to parse semantics reply err=%v raw=%q", parseErr, semanticsReply)
	} else {
		semantics = parsed
	}
	semanticsDuration := time.Since(semanticsStart)

	// Structure phase
	structureStart := time.Now()
	var structure model.Structure
	structureReply, err := d.inference.AnalyzeStructure(ctx, transcript.Text)
	if err != nil {
		logger.Printf("Error analyzing structure: %v", err)
		return nil, err
	}
	if parsed, ok, parseErr := llmjson.Decode[model.Structure](structureReply); parseErr != nil || !ok {
		logger.Printf("Failed to parse structure reply err=%v raw=%q", parseErr, structureReply)
	} else {
		structure = parsed
	}
	structureDuration := time.Since(structureStart)

	metrics := model.AccessibilityMetrics{
		JargonScore:  structure.JargonScore,
		ReadingLevel: structure.ReadingLevel,
	}
	if wpm, ok := transcript.WordsPerMinute(); ok {
		metrics.WordsPerMinute = &wpm
	}

	totalDuration := time.Since(startTime)
	logger.Printf("Digest completed source=%s total_duration_ms=%d summary_duration_ms=%d semantics_duration_ms=%d structure_duration_ms=%d",
		transcript.Source, totalDuration.Milliseconds(), summaryDuration.Milliseconds(),
		semanticsDuration.Milliseconds(), structureDuration.Milliseconds())

	return &model.Digest{
		Summary:     summary,
		Tags:        semantics.Tags,
		Industries:  semantics.Industries,
		Metrics:     metrics,
		ProcessedAt: time.Now(),
	}, nil
}
