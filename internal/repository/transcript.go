package repository

import (
	"context"

	"github.com/pep299/media-digest/internal/model"
	"github.com/pep299/media-digest/internal/youtube"
)

// TranscriptRepository fetches timed transcripts from an external provider.
type TranscriptRepository interface {
	FetchVideoTranscript(ctx context.Context, videoID string) (*model.Transcript, error)
}

type youtubeRepository struct {
	client *youtube.Client
}

func NewYouTubeRepository(client *youtube.Client) TranscriptRepository {
	return &youtubeRepository{
		client: client,
	}
}

func (y *youtubeRepository) FetchVideoTranscript(ctx context.Context, videoID string) (*model.Transcript, error) {
	return y.client.FetchTranscript(ctx, videoID)
}
