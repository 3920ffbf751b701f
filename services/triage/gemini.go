package triage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiModel is the alternate advisory backend over the Gemini API.
type GeminiModel struct {
	apiKey string
	model  *genai.GenerativeModel
}

// NewGeminiModel creates a Gemini-backed advisory model.
func NewGeminiModel(apiKey string) *GeminiModel {
	if apiKey == "" {
		return &GeminiModel{}
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiModel{apiKey: apiKey, model: model}
}

// Configured reports whether an API key is present.
func (g *GeminiModel) Configured() bool {
	return g.apiKey != ""
}

// Evaluate performs one generate-content call and returns the reply text.
func (g *GeminiModel) Evaluate(ctx context.Context, prompt AdvisoryPrompt) (string, error) {
	if !g.Configured() {
		return "", ErrConfigurationMissing
	}

	text := prompt.User
	if prompt.System != "" {
		text = prompt.System + "\n\n" + prompt.User
	}

	parts := []genai.Part{genai.Text(text)}
	if prompt.ImageB64 != "" {
		data, err := base64.StdEncoding.DecodeString(prompt.ImageB64)
		if err != nil {
			return "", fmt.Errorf("invalid image payload: %w", err)
		}
		parts = append(parts, genai.ImageData("jpeg", data))
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", AdvisoryUnavailableError{Detail: err.Error()}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", AdvisoryUnavailableError{Detail: "generation contained no candidates"}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
