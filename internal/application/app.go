package application

import (
	"fmt"

	"github.com/pep299/media-digest/internal/infrastructure"
	"github.com/pep299/media-digest/internal/openrouter"
	"github.com/pep299/media-digest/internal/repository"
	"github.com/pep299/media-digest/internal/service"
	"github.com/pep299/media-digest/internal/transport/handler"
	"github.com/pep299/media-digest/internal/youtube"
)

// Application represents the application with all business logic components
type Application struct {
	Config *infrastructure.Config
	Digest *service.Digest

	IndexHandler  *handler.Index
	URLHandler    *handler.URL
	TextHandler   *handler.Text
	UploadHandler *handler.Upload
	ExportHandler *handler.Export
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Create clients for external collaborators
	openRouterClient := openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	youtubeClient := youtube.NewClient()

	// Create repositories
	inferenceRepo := repository.NewOpenRouterRepository(openRouterClient)
	transcriptRepo := repository.NewYouTubeRepository(youtubeClient)

	// Create services (business logic)
	digestService := service.NewDigest(inferenceRepo, transcriptRepo)

	// Create handlers (HTTP layer)
	return &Application{
		Config:        cfg,
		Digest:        digestService,
		IndexHandler:  handler.NewIndex(),
		URLHandler:    handler.NewURL(digestService),
		TextHandler:   handler.NewText(digestService),
		UploadHandler: handler.NewUpload(digestService),
		ExportHandler: handler.NewExport(),
	}, nil
}

// Close cleans up application resources
func (a *Application) Close() error {
	return nil
}
