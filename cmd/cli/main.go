package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pep299/media-digest/internal/application"
	"github.com/pep299/media-digest/internal/export"
	"github.com/pep299/media-digest/internal/model"
)

func main() {
	var (
		videoURL = flag.String("url", "", "Video link to analyze")
		filePath = flag.String("file", "", "Document file to analyze")
		rawText  = flag.String("text", "", "Raw text to analyze")
		docxPath = flag.String("docx", "", "Write the digest to a .docx file at this path")
	)
	flag.Parse()

	inputs := 0
	for _, v := range []string{*videoURL, *filePath, *rawText} {
		if v != "" {
			inputs++
		}
	}
	if inputs != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s (-url LINK | -file PATH | -text TEXT) [-docx OUT]\n", os.Args[0])
		os.Exit(2)
	}

	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	ctx := context.Background()

	var digest *model.Digest
	switch {
	case *videoURL != "":
		digest, err = app.Digest.AnalyzeVideoURL(ctx, *videoURL)
	case *filePath != "":
		digest, err = analyzeFile(ctx, app, *filePath)
	default:
		digest, err = app.Digest.AnalyzeText(ctx, *rawText)
	}
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printDigest(digest)

	if *docxPath != "" {
		if err := export.WriteDocx(digest, *docxPath); err != nil {
			log.Fatalf("Writing docx: %v", err)
		}
		fmt.Printf("\nDigest written to %s\n", *docxPath)
	}
}

func analyzeFile(ctx context.Context, app *application.Application, path string) (*model.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return app.Digest.AnalyzeDocument(ctx, filepath.Base(path), f, info.Size())
}

func printDigest(d *model.Digest) {
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Println(d.Summary)

	if len(d.Tags) > 0 {
		fmt.Printf("\nTags: %s\n", strings.Join(d.Tags, ", "))
	}
	if len(d.Industries) > 0 {
		fmt.Printf("Industries: %s\n", strings.Join(d.Industries, ", "))
	}

	fmt.Println("\nAccessibility")
	fmt.Println("-------------")
	if d.Metrics.WordsPerMinute != nil {
		fmt.Printf("Words per minute: %.1f\n  %s\n", *d.Metrics.WordsPerMinute, model.WPMExplanation)
	}
	if d.Metrics.JargonScore != nil {
		fmt.Printf("Jargon score: %.1f\n  %s\n", *d.Metrics.JargonScore, model.JargonExplanation)
	}
	if d.Metrics.ReadingLevel != "" {
		fmt.Printf("Reading level: %s\n  %s\n", d.Metrics.ReadingLevel, model.ReadingLevelExplanation)
	}

	fmt.Printf("\nProcessed at: %s\n", d.ProcessedAt.Format("2006-01-02 15:04:05"))
}
