package mocks

import "context"

// Mock Inference Repository
type MockInferenceRepo struct {
	SummarizeFunc        func(ctx context.Context, transcript string) (string, error)
	AnalyzeSemanticsFunc func(ctx context.Context, summary string) (string, error)
	AnalyzeStructureFunc func(ctx context.Context, transcript string) (string, error)
}

func (m *MockInferenceRepo) Summarize(ctx context.Context, transcript string) (string, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, transcript)
	}
	return "test summary", nil
}

func (m *MockInferenceRepo) AnalyzeSemantics(ctx context.Context, summary string) (string, error) {
	if m.AnalyzeSemanticsFunc != nil {
		return m.AnalyzeSemanticsFunc(ctx, summary)
	}
	return `{"tags":["test"],"industries":["testing"]}`, nil
}

func (m *MockInferenceRepo) AnalyzeStructure(ctx context.Context, transcript string) (string, error) {
	if m.AnalyzeStructureFunc != nil {
		return m.AnalyzeStructureFunc(ctx, transcript)
	}
	return `{"jargon_score":4,"reading_level":"10th grade"}`, nil
}
