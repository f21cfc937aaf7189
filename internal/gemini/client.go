// Package gemini wraps the Google Gemini API behind a small capability
// interface so tool handlers (and their tests) never depend on the SDK
// or on API keys directly.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client is the minimal capability the tool layer needs from the
// upstream model: one prompt in, one text completion out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Builder returns the per-key construction function consumed by the
// rotation executor. Construction performs no network I/O; a bad key
// surfaces as an error on the first Generate call.
func Builder(model string) func(ctx context.Context, apiKey string) (Client, error) {
	return func(ctx context.Context, apiKey string) (Client, error) {
		c, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("building gemini client: %w", err)
		}
		return &genaiClient{client: c, model: model}, nil
	}
}

type genaiClient struct {
	client *genai.Client
	model  string
}

func (c *genaiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}
	return text, nil
}
