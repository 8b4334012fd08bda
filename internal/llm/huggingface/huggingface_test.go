package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("TEST_HF_KEY", "hf_test")
	g, err := NewGenerator(Config{BaseURL: srv.URL, APIKeyEnv: "TEST_HF_KEY"})
	require.NoError(t, err)
	return g
}

func TestNewGenerator_MissingKey(t *testing.T) {
	t.Setenv("TEST_HF_KEY", "")

	_, err := NewGenerator(Config{APIKeyEnv: "TEST_HF_KEY"})

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestGenerate_Request(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mistralai/Mistral-7B-Instruct-v0.3", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		var body generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "the prompt", body.Inputs)
		assert.Equal(t, 128, body.Parameters.MaxNewTokens)
		assert.InDelta(t, 0.5, body.Parameters.Temperature, 1e-9)
		assert.False(t, body.Parameters.ReturnFullText)
		assert.True(t, body.Options.WaitForModel)
		_, _ = w.Write([]byte(`[{"generated_text":"  four houses  "}]`))
	})

	out, err := g.Generate(context.Background(), "the prompt", domain.GenerateOptions{MaxTokens: 128, Temperature: 0.5})

	require.NoError(t, err)
	assert.Equal(t, "four houses", out)
	assert.Equal(t, "huggingface", g.Name())
}

func TestGenerate_ObjectShape(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"answer"}`))
	})

	out, err := g.Generate(context.Background(), "p", domain.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "answer", out)
}

func TestGenerate_EmptyList(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := g.Generate(context.Background(), "p", domain.GenerateOptions{})

	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestGenerate_ErrorStatus(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	_, err := g.Generate(context.Background(), "p", domain.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Invalid credentials")
}
