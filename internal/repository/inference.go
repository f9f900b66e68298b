package repository

import (
	"context"

	"github.com/pep299/media-digest/internal/openrouter"
)

// InferenceRepository is the remote completion endpoint used by the digest
// pipeline. Each method returns the model's raw reply text.
type InferenceRepository interface {
	Summarize(ctx context.Context, transcript string) (string, error)
	AnalyzeSemantics(ctx context.Context, summary string) (string, error)
	AnalyzeStructure(ctx context.Context, transcript string) (string, error)
}

type openRouterRepository struct {
	client *openrouter.Client
}

func NewOpenRouterRepository(client *openrouter.Client) InferenceRepository {
	return &openRouterRepository{
		client: client,
	}
}

func (o *openRouterRepository) Summarize(ctx context.Context, transcript string) (string, error) {
	return o.client.Summarize(ctx, transcript)
}

func (o *openRouterRepository) AnalyzeSemantics(ctx context.Context, summary string) (string, error) {
	return o.client.AnalyzeSemantics(ctx, summary)
}

func (o *openRouterRepository) AnalyzeStructure(ctx context.Context, transcript string) (string, error) {
	return o.client.AnalyzeStructure(ctx, transcript)
}
