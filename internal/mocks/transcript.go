package mocks

import (
	"context"

	"github.com/pep299/media-digest/internal/model"
)

// Mock Transcript Repository
type MockTranscriptRepo struct {
	FetchVideoTranscriptFunc func(ctx context.Context, videoID string) (*model.Transcript, error)
}

func (m *MockTranscriptRepo) FetchVideoTranscript(ctx context.Context, videoID string) (*model.Transcript, error) {
	if m.FetchVideoTranscriptFunc != nil {
		return m.FetchVideoTranscriptFunc(ctx, videoID)
	}
	return &model.Transcript{
		Source:          model.SourceVideo,
		Text:            "test transcript",
		WordCount:       2,
		DurationSeconds: 60,
	}, nil
}
