package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func TestNewEmbedder_MissingKey(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "")

	_, err := NewEmbedder(context.Background(), Config{APIKeyEnv: "TEST_GEMINI_KEY"})

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestNewEmbedder_Defaults(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "key")

	e, err := NewEmbedder(context.Background(), Config{APIKeyEnv: "TEST_GEMINI_KEY"})

	require.NoError(t, err)
	assert.Equal(t, DefaultModel, e.model)
	assert.Equal(t, "gemini", e.Name())
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, []float64{0.5, -2, 0}, toFloat64([]float32{0.5, -2, 0}))
	assert.Empty(t, toFloat64(nil))
}
