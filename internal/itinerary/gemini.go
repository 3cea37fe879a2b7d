package itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiModel = "gemini-2.0-flash"

	// systemPreamble frames every prompt. The JSON-only requirement is
	// repeated here because the extractor depends on it.
	systemPreamble = "You are a helpful travel assistant that creates detailed, practical road trip itineraries. You MUST respond with valid JSON only, no additional text or explanations."

	// Sampling settings: deterministic-leaning but not greedy, with an
	// output ceiling sized for multi-day group trips with itemized costs.
	geminiTemperature     = 0.7
	geminiMaxOutputTokens = 4096
)

// Generator produces raw text for a prompt. Satisfied by GeminiClient; test
// doubles stub it out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls Google's Gemini models through the official SDK.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient initializes a Gemini client with the itinerary generation
// settings. The caller owns the credential decision; an empty key is a
// programming error here, not a fallback trigger.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(geminiTemperature)
	model.SetMaxOutputTokens(geminiMaxOutputTokens)

	return &GeminiClient{client: client, model: model}, nil
}

// Close releases the underlying SDK resources.
func (c *GeminiClient) Close() {
	c.client.Close()
}

// Generate sends the prompt and returns the text of the first candidate.
// A single attempt per call; retry policy belongs to the caller.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	full := systemPreamble + "\n\n" + prompt

	resp, err := c.model.GenerateContent(ctx, genai.Text(full))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", ErrMalformedResponse
	}
	return text.String(), nil
}
