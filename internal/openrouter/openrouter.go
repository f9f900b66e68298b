// Package openrouter is the client for the OpenRouter chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pep299/media-digest/internal/model"
)

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "deepseek/deepseek-chat:free"

// analyticTemperature biases the tagging and structural prompts toward
// deterministic structured output.
const analyticTemperature = 0.2

// Client handles OpenRouter API operations.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new OpenRouter API client. The key is the only
// credential the application uses; it is passed in explicitly, never read
// from ambient state.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://openrouter.ai/api/v1/chat/completions",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// chatRequest represents the request structure for the chat completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents the response structure from the chat completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Summarize asks the model for a concise summary of the transcript.
func (c *Client) Summarize(ctx context.Context, transcript string) (string, error) {
	return c.callChatAPI(ctx, buildSummaryPrompt(transcript), nil)
}

// AnalyzeSemantics asks the model for content tags and industries as a JSON
// object. It consumes the summary, not the raw transcript.
func (c *Client) AnalyzeSemantics(ctx context.Context, summary string) (string, error) {
	temp := analyticTemperature
	return c.callChatAPI(ctx, buildSemanticsPrompt(summary), &temp)
}

// AnalyzeStructure asks the model for a jargon score and reading level as a
// JSON object.
func (c *Client) AnalyzeStructure(ctx context.Context, transcript string) (string, error) {
	temp := analyticTemperature
	return c.callChatAPI(ctx, buildStructurePrompt(transcript), &temp)
}

// callChatAPI makes the actual API call and returns the raw reply text.
func (c *Client) callChatAPI(ctx context.Context, prompt string, temperature *float64) (string, error) {
	chatReq := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: sending request: %v", model.ErrInference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: API request failed with status %d: %s", model.ErrInference, resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", model.ErrInference, err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", model.ErrInference)
	}

	return chatResp.Choices[0].Message.Content, nil
}
