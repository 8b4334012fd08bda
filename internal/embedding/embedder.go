// Package embedding builds the configured text embedder.
package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/embedding/gemini"
	"github.com/Samarth-Subramani/RAG-Application/internal/embedding/hashing"
	"github.com/Samarth-Subramani/RAG-Application/internal/embedding/huggingface"
	"github.com/Samarth-Subramani/RAG-Application/internal/embedding/openai"
)

// New returns the embedder selected by cfg.Type.
func New(ctx context.Context, cfg config.EmbedderConfig) (domain.Embedder, error) {
	switch cfg.Type {
	case "huggingface", "":
		hf := cfg.HuggingFace
		if hf == nil {
			hf = &config.HuggingFaceConfig{APIKeyEnv: "HUGGINGFACE_API_KEY"}
		}
		c, err := huggingface.NewClient(huggingface.Config{
			BaseURL:   hf.BaseURL,
			APIKeyEnv: hf.APIKeyEnv,
			Model:     hf.Model,
			Timeout:   time.Duration(hf.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		if cfg.OpenAI == nil {
			return nil, fmt.Errorf("%w: openai embedder config missing", domain.ErrInvalidInput)
		}
		c, err := openai.NewClient(openai.Config{
			BaseURL:   cfg.OpenAI.BaseURL,
			APIKeyEnv: cfg.OpenAI.APIKeyEnv,
			Model:     cfg.OpenAI.Model,
			Timeout:   time.Duration(cfg.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case "gemini":
		if cfg.Gemini == nil {
			return nil, fmt.Errorf("%w: gemini embedder config missing", domain.ErrInvalidInput)
		}
		e, err := gemini.NewEmbedder(ctx, gemini.Config{
			APIKeyEnv: cfg.Gemini.APIKeyEnv,
			Model:     cfg.Gemini.Model,
		})
		if err != nil {
			return nil, err
		}
		return e, nil
	case "hashing":
		dim := 0
		if cfg.Hashing != nil {
			dim = cfg.Hashing.Dimension
		}
		return hashing.NewEmbedder(dim), nil
	default:
		return nil, fmt.Errorf("%w: embedder %q", domain.ErrUnknownBackend, cfg.Type)
	}
}
