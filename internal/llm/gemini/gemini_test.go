package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func TestNewGenerator(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "  ")
	_, err := NewGenerator(context.Background(), Config{APIKeyEnv: "TEST_GEMINI_KEY"})
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)

	t.Setenv("TEST_GEMINI_KEY", "key")
	g, err := NewGenerator(context.Background(), Config{APIKeyEnv: "TEST_GEMINI_KEY"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, g.model)
	assert.Equal(t, "gemini", g.Name())
}

func TestGenerateConfig(t *testing.T) {
	assert.Nil(t, generateConfig(domain.GenerateOptions{}))

	cfg := generateConfig(domain.GenerateOptions{MaxTokens: 128, Temperature: 0.5})
	require.NotNil(t, cfg)
	assert.Equal(t, int32(128), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.5, float64(*cfg.Temperature), 1e-6)

	cfg = generateConfig(domain.GenerateOptions{MaxTokens: 64})
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.Temperature)
}
