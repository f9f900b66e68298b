package model

import (
	"fmt"
	"strings"
)

// Source identifies where a transcript came from.
type Source string

const (
	SourceVideo    Source = "video"
	SourceDocument Source = "document"
	SourceText     Source = "text"
)

// Segment is a single timed caption unit from a video transcript.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is the plain-text input to the digest pipeline.
// DurationSeconds is only meaningful for video transcripts.
type Transcript struct {
	Source          Source  `json:"source"`
	Text            string  `json:"text"`
	WordCount       int     `json:"word_count"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// NewVideoTranscript builds a transcript from timed caption segments.
// Segment texts are joined with single spaces; the total duration is the
// last segment's start offset plus its duration.
func NewVideoTranscript(segments []Segment) (*Transcript, error) {
	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Text != "" {
			texts = append(texts, s.Text)
		}
	}
	text := strings.Join(texts, " ")
	if text == "" {
		return nil, fmt.Errorf("%w: transcript has no text", ErrFetch)
	}

	last := segments[len(segments)-1]
	return &Transcript{
		Source:          SourceVideo,
		Text:            text,
		WordCount:       len(strings.Fields(text)),
		DurationSeconds: last.Start + last.Duration,
	}, nil
}

// NewTextTranscript wraps already-extracted plain text.
func NewTextTranscript(text string, source Source) (*Transcript, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty transcript", ErrInvalidInput)
	}
	return &Transcript{
		Source:    source,
		Text:      text,
		WordCount: len(strings.Fields(text)),
	}, nil
}

// WordsPerMinute returns the speaking rate for video transcripts.
// The second return value is false when the transcript has no duration.
func (t *Transcript) WordsPerMinute() (float64, bool) {
	if t.Source != SourceVideo || t.DurationSeconds <= 0 {
		return 0, false
	}
	return float64(t.WordCount) / (t.DurationSeconds / 60), true
}
