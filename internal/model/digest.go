package model

import "time"

// Semantics is the JSON object requested by the tagging prompt.
type Semantics struct {
	Tags       []string `json:"tags"`
	Industries []string `json:"industries"`
}

// Structure is the JSON object requested by the structural-metrics prompt.
type Structure struct {
	JargonScore  *float64 `json:"jargon_score"`
	ReadingLevel string   `json:"reading_level"`
}

// AccessibilityMetrics are the derived readability values shown to the user.
// Nil pointers mean the value is unavailable (non-video input, or the model
// reply could not be parsed); display logic must treat them as absent.
type AccessibilityMetrics struct {
	WordsPerMinute *float64 `json:"words_per_minute,omitempty"`
	JargonScore    *float64 `json:"jargon_score,omitempty"`
	ReadingLevel   string   `json:"reading_level,omitempty"`
}

// Digest is the complete analysis of one submission. It lives for a single
// request/response cycle and is never persisted.
type Digest struct {
	Summary     string               `json:"summary"`
	Tags        []string             `json:"tags"`
	Industries  []string             `json:"industries"`
	Metrics     AccessibilityMetrics `json:"metrics"`
	ProcessedAt time.Time            `json:"processed_at"`
}

// Static explanations displayed next to each metric.
const (
	WPMExplanation = "Words Per Minute measures speaking speed. Too fast can be hard to follow, too slow can lose engagement. 120-150 WPM is considered comfortable for most listeners."

	JargonExplanation = "Jargon Score indicates how specialized the language is. Lower scores (0-5) mean more accessible content. Higher scores (6-10) indicate more technical content."

	ReadingLevelExplanation = "Reading Level, assessed based on sentence complexity and vocabulary, shows the education level needed to understand the content, from elementary to post-graduate."
)
