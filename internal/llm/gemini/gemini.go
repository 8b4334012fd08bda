// Package gemini generates text with the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

const DefaultModel = "gemini-2.0-flash"

type Config struct {
	APIKeyEnv string
	Model     string
}

type Generator struct {
	client *genai.Client
	model  string
}

func NewGenerator(ctx context.Context, cfg Config) (*Generator, error) {
	key := strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	if key == "" {
		return nil, fmt.Errorf("%w: env %s", domain.ErrMissingAPIKey, cfg.APIKeyEnv)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Generator{client: client, model: cfg.Model}, nil
}

func (g *Generator) Name() string { return "gemini" }

func (g *Generator) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		generateConfig(opts),
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini generate: %w", domain.ErrEmptyResponse)
	}
	return text, nil
}

func generateConfig(opts domain.GenerateOptions) *genai.GenerateContentConfig {
	if opts.MaxTokens <= 0 && opts.Temperature <= 0 {
		return nil
	}
	cfg := &genai.GenerateContentConfig{}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(opts.Temperature))
	}
	return cfg
}
