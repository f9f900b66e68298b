// Package youtube resolves a YouTube link to a plain-text transcript built
// from the video's timed caption segments.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pep299/media-digest/internal/model"
)

// videoIDRe matches the 11-character video identifier after "v=" or "/".
var videoIDRe = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the video identifier out of a YouTube URL.
// Returns false when the URL does not contain one.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// playerResponseMarker precedes the player response JSON in watch page HTML.
const playerResponseMarker = "ytInitialPlayerResponse = "

// Client fetches caption tracks for a video by scraping the watch page.
type Client struct {
	httpClient *http.Client
	watchURL   string
}

// NewClient creates a YouTube transcript client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		watchURL: "https://www.youtube.com/watch",
	}
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Lines   []timedTextRow `xml:"text"`
}

type timedTextRow struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// FetchTranscript fetches the caption segments for a video and builds a
// transcript from them.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (*model.Transcript, error) {
	track, err := c.findCaptionTrack(ctx, videoID)
	if err != nil {
		return nil, err
	}

	segments, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no caption segments for video %s", model.ErrFetch, videoID)
	}

	return model.NewVideoTranscript(segments)
}

// findCaptionTrack scrapes the watch page and picks a caption track from
// ytInitialPlayerResponse. Manual tracks are preferred over auto-generated
// ones, English over other languages.
func (c *Client) findCaptionTrack(ctx context.Context, videoID string) (*captionTrack, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.watchURL+"?v="+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Media Digest Bot/1.0)")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching watch page: %v", model.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: watch page returned status %d", model.ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("reading watch page: %w", err)
	}

	idx := strings.Index(string(body), playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: player response not found in watch page", model.ErrFetch)
	}

	var player playerResponse
	dec := json.NewDecoder(strings.NewReader(string(body[idx+len(playerResponseMarker):])))
	if err := dec.Decode(&player); err != nil {
		return nil, fmt.Errorf("%w: decoding player response: %v", model.ErrFetch, err)
	}

	if player.Captions == nil {
		reason := "no captions available"
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			reason = player.PlayabilityStatus.Reason
		}
		return nil, fmt.Errorf("%w: %s", model.ErrFetch, reason)
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: no caption tracks", model.ErrFetch)
	}

	return pickTrack(tracks), nil
}

// pickTrack selects a manual English track when available, then any English
// track, then the first track.
func pickTrack(tracks []captionTrack) *captionTrack {
	for i, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") && t.Kind != "asr" {
			return &tracks[i]
		}
	}
	for i, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return &tracks[i]
		}
	}
	return &tracks[0]
}

// fetchTimedText fetches a caption track URL and parses the timedtext XML
// into segments.
func (c *Client) fetchTimedText(ctx context.Context, trackURL string) ([]model.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", trackURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Media Digest Bot/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching captions: %v", model.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: captions returned status %d", model.ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, fmt.Errorf("reading captions: %w", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("%w: parsing timedtext XML: %v", model.ErrFetch, err)
	}

	segments := make([]model.Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		segments = append(segments, model.Segment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Dur,
		})
	}
	return segments, nil
}
