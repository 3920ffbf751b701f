package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// Package-level HTTP client for advisory calls; the upstream call is bounded
// by a fixed timeout and never retried.
var advisoryHTTPClient = &http.Client{Timeout: 30 * time.Second}

// OpenRouterModel talks to an OpenRouter-compatible chat completions API.
type OpenRouterModel struct {
	APIKey string
	Model  string
}

// NewOpenRouterModel creates the default advisory model backend.
func NewOpenRouterModel(apiKey, model string) *OpenRouterModel {
	return &OpenRouterModel{APIKey: apiKey, Model: model}
}

// Configured reports whether an API key is present.
func (m *OpenRouterModel) Configured() bool {
	return m.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Evaluate performs one chat completion call and returns the raw reply text.
func (m *OpenRouterModel) Evaluate(ctx context.Context, prompt AdvisoryPrompt) (string, error) {
	if !m.Configured() {
		return "", ErrConfigurationMissing
	}

	reqBody := chatCompletionRequest{Model: m.Model}
	if prompt.System != "" {
		reqBody.Messages = append(reqBody.Messages, chatMessage{Role: "system", Content: prompt.System})
	}
	if prompt.ImageB64 != "" {
		reqBody.Messages = append(reqBody.Messages, chatMessage{
			Role: "user",
			Content: []any{
				map[string]any{"type": "text", "text": prompt.User},
				map[string]any{"type": "image_url", "image_url": "data:image/jpeg;base64," + prompt.ImageB64},
			},
		})
	} else {
		reqBody.MaxTokens = 512
		reqBody.Messages = append(reqBody.Messages, chatMessage{Role: "user", Content: prompt.User})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal advisory request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build advisory request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := advisoryHTTPClient.Do(httpReq)
	if err != nil {
		return "", AdvisoryUnavailableError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", AdvisoryUnavailableError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return "", AdvisoryUnavailableError{StatusCode: resp.StatusCode, Detail: string(body)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", AdvisoryUnavailableError{StatusCode: resp.StatusCode, Detail: "malformed completion body: " + err.Error()}
	}
	if len(completion.Choices) == 0 {
		return "", AdvisoryUnavailableError{StatusCode: resp.StatusCode, Detail: "completion contained no choices"}
	}
	return completion.Choices[0].Message.Content, nil
}
