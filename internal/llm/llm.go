// Package llm builds the configured answer generator.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/llm/gemini"
	"github.com/Samarth-Subramani/RAG-Application/internal/llm/huggingface"
	"github.com/Samarth-Subramani/RAG-Application/internal/llm/openai"
)

// New returns the generator selected by cfg.Type.
func New(ctx context.Context, cfg config.GeneratorConfig) (domain.Generator, error) {
	switch cfg.Type {
	case "huggingface", "":
		hf := cfg.HuggingFace
		if hf == nil {
			hf = &config.HuggingFaceConfig{APIKeyEnv: "HUGGINGFACE_API_KEY"}
		}
		g, err := huggingface.NewGenerator(huggingface.Config{
			BaseURL:   hf.BaseURL,
			APIKeyEnv: hf.APIKeyEnv,
			Model:     hf.Model,
			Timeout:   time.Duration(hf.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	case "openai":
		if cfg.OpenAI == nil {
			return nil, fmt.Errorf("%w: openai generator config missing", domain.ErrInvalidInput)
		}
		g, err := openai.NewGenerator(openai.Config{
			BaseURL:   cfg.OpenAI.BaseURL,
			APIKeyEnv: cfg.OpenAI.APIKeyEnv,
			Model:     cfg.OpenAI.Model,
			Timeout:   time.Duration(cfg.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	case "gemini":
		if cfg.Gemini == nil {
			return nil, fmt.Errorf("%w: gemini generator config missing", domain.ErrInvalidInput)
		}
		g, err := gemini.NewGenerator(ctx, gemini.Config{
			APIKeyEnv: cfg.Gemini.APIKeyEnv,
			Model:     cfg.Gemini.Model,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: generator %q", domain.ErrUnknownBackend, cfg.Type)
	}
}

// Options maps the generator config onto per-call options.
func Options(cfg config.GeneratorConfig) domain.GenerateOptions {
	return domain.GenerateOptions{MaxTokens: cfg.MaxTokens, Temperature: cfg.Temperature}
}
