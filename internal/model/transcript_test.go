package model

import (
	"errors"
	"testing"
)

func TestNewVideoTranscript(t *testing.T) {
	segments := []Segment{
		{Text: "one two three four five", Start: 0, Duration: 5},
		{Text: "six seven eight nine ten", Start: 5, Duration: 5},
	}

	transcript, err := NewVideoTranscript(segments)
	if err != nil {
		t.Fatalf("NewVideoTranscript returned error: %v", err)
	}

	if transcript.DurationSeconds != 10 {
		t.Errorf("DurationSeconds = %f, expected 10", transcript.DurationSeconds)
	}
	if transcript.WordCount != 10 {
		t.Errorf("WordCount = %d, expected 10", transcript.WordCount)
	}
	if transcript.Text != "one two three four five six seven eight nine ten" {
		t.Errorf("unexpected joined text: %q", transcript.Text)
	}
	if transcript.Source != SourceVideo {
		t.Errorf("Source = %q, expected %q", transcript.Source, SourceVideo)
	}
}

func TestNewVideoTranscript_Empty(t *testing.T) {
	_, err := NewVideoTranscript([]Segment{{Text: "", Start: 0, Duration: 2}})
	if !errors.Is(err, ErrFetch) {
		t.Errorf("expected fetch error for empty segments, got: %v", err)
	}
}

func TestNewTextTranscript(t *testing.T) {
	transcript, err := NewTextTranscript("just some pasted text", SourceText)
	if err != nil {
		t.Fatalf("NewTextTranscript returned error: %v", err)
	}
	if transcript.WordCount != 4 {
		t.Errorf("WordCount = %d, expected 4", transcript.WordCount)
	}
	if _, ok := transcript.WordsPerMinute(); ok {
		t.Error("words-per-minute should be unavailable for text input")
	}
}

func TestNewTextTranscript_Empty(t *testing.T) {
	_, err := NewTextTranscript("   \n\t", SourceDocument)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected invalid input error, got: %v", err)
	}
}

func TestWordsPerMinute(t *testing.T) {
	transcript := &Transcript{
		Source:          SourceVideo,
		WordCount:       150,
		DurationSeconds: 60,
	}

	wpm, ok := transcript.WordsPerMinute()
	if !ok {
		t.Fatal("expected words-per-minute to be available")
	}
	if wpm != 150.0 {
		t.Errorf("WordsPerMinute = %f, expected 150.0", wpm)
	}
}

func TestWordsPerMinute_ZeroDuration(t *testing.T) {
	transcript := &Transcript{Source: SourceVideo, WordCount: 100}
	if _, ok := transcript.WordsPerMinute(); ok {
		t.Error("words-per-minute should be unavailable with zero duration")
	}
}
