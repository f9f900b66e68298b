package openrouter

import "fmt"

// Character budgets per prompt type. The summary prompt sees more of the
// transcript than the structural one.
const (
	summaryPromptBudget   = 10000
	structurePromptBudget = 2000
)

// truncate limits text to max bytes.
func truncate(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}

// buildSummaryPrompt creates the summary request prompt.
func buildSummaryPrompt(transcript string) string {
	return fmt.Sprintf(`You are an expert NLP assistant. Analyze the following transcript:

Transcript:
"""
%s
"""

Return a concise summary of the transcript.
`, truncate(transcript, summaryPromptBudget))
}

// buildSemanticsPrompt creates the tagging/industry request prompt.
// It takes the summary produced by the summary call, not the raw transcript.
func buildSemanticsPrompt(summary string) string {
	return fmt.Sprintf(`You are an expert NLP assistant. Analyze the following transcript:

Transcript:
"""
%s
"""

Return a JSON object with the following fields:
- "tags": list of key content tags
- "industries": list of relevant industries

Return ONLY a valid JSON object with the following fields and NO extra text. Do not say anything else. Do not include markdown. Do not explain.

An example response is below:

{
  "tags": ["neural networks", "machine learning", "AI", "image recognition", "beginner-friendly"],
  "industries": ["finance", "healthcare", "technology"]
}
`, summary)
}

// buildStructurePrompt creates the structural-metrics request prompt.
func buildStructurePrompt(transcript string) string {
	return fmt.Sprintf(`You are an expert NLP assistant. Analyze the following transcript:

Transcript:
"""
%s...
"""

Return a JSON object with the following fields:
- "jargon_score": 1-10 rating of how technical it is
- "reading_level": (e.g., 8th grade, college)

Return ONLY a valid JSON object with the following fields and NO extra text. Do not say anything else. Do not include markdown. Do not explain.

An example response is below:

{
  "jargon_score": 4,
  "reading_level": "10th grade"
}
`, truncate(transcript, structurePromptBudget))
}
