package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pep299/media-digest/internal/model"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		found    bool
	}{
		{
			name:     "standard watch URL",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			found:    true,
		},
		{
			name:     "short youtu.be URL",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
			found:    true,
		},
		{
			name:     "watch URL with extra parameters",
			url:      "https://www.youtube.com/watch?v=abc123DEF-_&t=120s",
			expected: "abc123DEF-_",
			found:    true,
		},
		{
			name:     "embed URL",
			url:      "https://www.youtube.com/embed/abc123DEF-_",
			expected: "abc123DEF-_",
			found:    true,
		},
		{
			name:  "URL without an identifier",
			url:   "https://www.youtube.com/feed/trending",
			found: false,
		},
		{
			name:  "not a URL",
			url:   "hello world",
			found: false,
		},
		{
			name:  "identifier too short",
			url:   "https://youtu.be/short",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := ExtractVideoID(tt.url)
			if found != tt.found {
				t.Fatalf("ExtractVideoID(%q) found = %v, expected %v", tt.url, found, tt.found)
			}
			if found && id != tt.expected {
				t.Errorf("ExtractVideoID(%q) = %q, expected %q", tt.url, id, tt.expected)
			}
		})
	}
}

func TestPickTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "de"},
		{BaseURL: "u2", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u3", LanguageCode: "en"},
	}
	if got := pickTrack(tracks); got.BaseURL != "u3" {
		t.Errorf("expected manual English track u3, got %s", got.BaseURL)
	}

	auto := []captionTrack{
		{BaseURL: "u1", LanguageCode: "de"},
		{BaseURL: "u2", LanguageCode: "en", Kind: "asr"},
	}
	if got := pickTrack(auto); got.BaseURL != "u2" {
		t.Errorf("expected auto English track u2, got %s", got.BaseURL)
	}

	other := []captionTrack{{BaseURL: "u1", LanguageCode: "ja"}}
	if got := pickTrack(other); got.BaseURL != "u1" {
		t.Errorf("expected first track u1, got %s", got.BaseURL)
	}
}

func TestClient_FetchTranscript(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="5">one two three four five</text>
  <text start="5" dur="5">six seven eight nine ten</text>
</transcript>`)
	})
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "abc123DEF-_" {
			http.NotFound(w, r)
			return
		}
		page := fmt.Sprintf(`<html><script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":%q,"languageCode":"en"}]}}};</script></html>`,
			server.URL+"/timedtext")
		fmt.Fprint(w, page)
	})

	client := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		watchURL:   server.URL + "/watch",
	}

	transcript, err := client.FetchTranscript(context.Background(), "abc123DEF-_")
	if err != nil {
		t.Fatalf("FetchTranscript returned error: %v", err)
	}

	if transcript.Text != "one two three four five six seven eight nine ten" {
		t.Errorf("unexpected transcript text: %q", transcript.Text)
	}
	if transcript.WordCount != 10 {
		t.Errorf("WordCount = %d, expected 10", transcript.WordCount)
	}
	if transcript.DurationSeconds != 10 {
		t.Errorf("DurationSeconds = %f, expected 10", transcript.DurationSeconds)
	}
	if _, ok := transcript.WordsPerMinute(); !ok {
		t.Error("expected words-per-minute to be available for a video transcript")
	}
}

func TestClient_FetchTranscript_NoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><script>var ytInitialPlayerResponse = {"playabilityStatus":{"reason":"This video is unavailable"}};</script></html>`)
	}))
	defer server.Close()

	client := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		watchURL:   server.URL,
	}

	_, err := client.FetchTranscript(context.Background(), "abc123DEF-_")
	if err == nil {
		t.Fatal("expected error for video without captions")
	}
	if !errors.Is(err, model.ErrFetch) {
		t.Errorf("expected fetch error, got: %v", err)
	}
}

func TestClient_FetchTranscript_WatchPageError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		watchURL:   server.URL,
	}

	_, err := client.FetchTranscript(context.Background(), "abc123DEF-_")
	if !errors.Is(err, model.ErrFetch) {
		t.Errorf("expected fetch error, got: %v", err)
	}
}
