package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// GeminiClient generates text through the Gemini API. It implements the
// provider seam used by the shared pipeline; model selection comes from
// configuration, never from the request.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client for the given API key and model name.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string { return "gemini" }

// GenerateText runs a single generation call. Transport failures come back as
// *types.ProviderError and empty envelopes as *types.ExtractionError, so the
// fallback chain can act on the class without string matching; cancellation
// and deadline errors pass through untouched.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, opts GenOptions) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](opts.Temperature),
		MaxOutputTokens:  opts.MaxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", &types.ProviderError{Provider: c.Name(), Err: err}
	}

	if len(result.Candidates) == 0 {
		return "", &types.ExtractionError{Provider: c.Name(), Reason: "no candidates"}
	}
	content := result.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", &types.ExtractionError{Provider: c.Name(), Reason: "candidate has no content parts"}
	}

	var b strings.Builder
	for _, part := range content.Parts {
		b.WriteString(part.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", &types.ExtractionError{Provider: c.Name(), Reason: "candidate text is empty"}
	}
	return text, nil
}
