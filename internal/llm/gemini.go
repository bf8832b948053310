package llm

import (
	"context"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	// The genai client falls back to GEMINI_API_KEY from env when APIKey is empty.
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// Generate sends the prompt and returns the model's raw text. Errors that do
// not carry a transient signature are wrapped in PermanentError so retry
// middleware stops immediately.
func (g *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	temp := req.Temperature
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: req.Prompt}}}},
		&genai.GenerateContentConfig{
			Temperature:     &temp,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	)
	if err != nil {
		if IsTransient(err) {
			return "", err
		}
		return "", NewPermanentError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
