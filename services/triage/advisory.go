package triage

import "context"

// AdvisoryClient wraps an AdvisoryModel with the platform's fixed prompts.
type AdvisoryClient struct {
	Model AdvisoryModel
}

// NewAdvisoryClient creates an advisory client over the given model backend.
func NewAdvisoryClient(model AdvisoryModel) *AdvisoryClient {
	return &AdvisoryClient{Model: model}
}

// Configured reports whether the underlying model has a credential.
func (c *AdvisoryClient) Configured() bool {
	return c.Model.Configured()
}

// AskText submits the user message under the platform support instruction and
// returns the model's raw reply.
func (c *AdvisoryClient) AskText(ctx context.Context, message string) (string, error) {
	return c.Model.Evaluate(ctx, AdvisoryPrompt{
		System: supportSystemPrompt,
		User:   message,
	})
}

// AskImage submits the fixed diagnostic prompt together with the image payload
// as a single user turn and returns the model's raw reply.
func (c *AdvisoryClient) AskImage(ctx context.Context, imageB64 string) (string, error) {
	return c.Model.Evaluate(ctx, AdvisoryPrompt{
		User:     imageDiagnosisPrompt,
		ImageB64: imageB64,
	})
}
