// Package export renders a digest to a Word document for sharing.
package export

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/pep299/media-digest/internal/model"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx writes the digest as a styled .docx file at outputPath.
func WriteDocx(d *model.Digest, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), "Media Digest", true, 16)

	addStyledRun(doc.AddParagraph(""), "Summary", true, 14)
	for _, line := range strings.Split(d.Summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}

	if len(d.Tags) > 0 {
		addStyledRun(doc.AddParagraph(""), "Tags", true, 14)
		addStyledRun(doc.AddParagraph(""), strings.Join(d.Tags, ", "), false, fontSize)
	}

	if len(d.Industries) > 0 {
		addStyledRun(doc.AddParagraph(""), "Industries", true, 14)
		addStyledRun(doc.AddParagraph(""), strings.Join(d.Industries, ", "), false, fontSize)
	}

	addStyledRun(doc.AddParagraph(""), "Accessibility", true, 14)
	if d.Metrics.WordsPerMinute != nil {
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Words Per Minute: %.1f", *d.Metrics.WordsPerMinute), false, fontSize)
		addStyledRun(doc.AddParagraph(""), model.WPMExplanation, false, fontSize)
	}
	if d.Metrics.JargonScore != nil {
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Jargon Score: %.1f", *d.Metrics.JargonScore), false, fontSize)
		addStyledRun(doc.AddParagraph(""), model.JargonExplanation, false, fontSize)
	}
	if d.Metrics.ReadingLevel != "" {
		addStyledRun(doc.AddParagraph(""), "Reading Level: "+d.Metrics.ReadingLevel, false, fontSize)
		addStyledRun(doc.AddParagraph(""), model.ReadingLevelExplanation, false, fontSize)
	}

	addStyledRun(doc.AddParagraph(""), "Processed at "+d.ProcessedAt.Format("2006-01-02 15:04"), false, fontSize)

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
