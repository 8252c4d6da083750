package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/chalinh/jobmatch/internal/capability"
)

// Generator adapts Gemini to the text-generation capability boundary used
// by the education resolver. Education answers are single short labels, so
// the lite tier is the default.
type Generator struct {
	client *genai.Client
	model  string
}

var _ capability.TextGenerator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator for the given tier.
func NewGenerator(ctx context.Context, apiKey string, cfg *Config, tier ModelTier) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	model := cfg.GetModel(tier)
	if model == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

// Generate produces free text for a prompt, capped at maxNewTokens.
func (g *Generator) Generate(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)
	if maxNewTokens > 0 {
		model.SetMaxOutputTokens(int32(maxNewTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &capability.CallError{Capability: "generator", Cause: err}
	}
	return extractText(resp)
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
