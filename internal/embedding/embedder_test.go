package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func TestNew(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_KEY", "hf")
	t.Setenv("OPENAI_API_KEY", "sk")
	t.Setenv("GEMINI_API_KEY", "gm")

	tests := []struct {
		name string
		cfg  config.EmbedderConfig
		want string
	}{
		{name: "default", cfg: config.EmbedderConfig{}, want: "huggingface"},
		{name: "huggingface", cfg: config.Default().Embedder, want: "huggingface"},
		{name: "openai", cfg: config.EmbedderConfig{Type: "openai", OpenAI: &config.OpenAIConfig{APIKeyEnv: "OPENAI_API_KEY"}}, want: "openai"},
		{name: "gemini", cfg: config.EmbedderConfig{Type: "gemini", Gemini: &config.GeminiConfig{APIKeyEnv: "GEMINI_API_KEY"}}, want: "gemini"},
		{name: "hashing", cfg: config.EmbedderConfig{Type: "hashing"}, want: "hashing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(context.Background(), tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Name())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(context.Background(), config.EmbedderConfig{Type: "word2vec"})
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)

	_, err = New(context.Background(), config.EmbedderConfig{Type: "openai"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	t.Setenv("HUGGINGFACE_API_KEY", "")
	_, err = New(context.Background(), config.EmbedderConfig{})
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}
