package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func writeConfig(t *testing.T, generatorURL string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "Data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	cfg := fmt.Sprintf(`data_path: %s
store_path: %s
log:
  level: error
embedder:
  type: hashing
  hashing:
    dimension: 64
generator:
  type: huggingface
  huggingface:
    base_url: %s
    api_key_env: TEST_APP_HF_KEY
    model: test/model
vector_store:
  type: bolt
`, data, filepath.Join(dir, "chroma"), generatorURL)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path, dir
}

func TestBuild_PopulateEmptyDataDir(t *testing.T) {
	path, dir := writeConfig(t, "http://unused")

	a, err := Build(context.Background(), path)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Populate(context.Background(), false)

	assert.ErrorIs(t, err, domain.ErrNoDocuments)
	assert.FileExists(t, filepath.Join(dir, "chroma", "index.db"))
}

func TestBuild_QueryEmptyStore(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test/model", r.URL.Path)
		var body struct {
			Inputs     string `json:"inputs"`
			Parameters struct {
				MaxNewTokens int     `json:"max_new_tokens"`
				Temperature  float64 `json:"temperature"`
			} `json:"parameters"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Inputs
		assert.Equal(t, 128, body.Parameters.MaxNewTokens)
		assert.InDelta(t, 0.5, body.Parameters.Temperature, 1e-9)
		_, _ = w.Write([]byte(`[{"generated_text":"nothing indexed"}]`))
	}))
	defer srv.Close()
	t.Setenv("TEST_APP_HF_KEY", "hf")
	path, _ := writeConfig(t, srv.URL)

	a, err := Build(context.Background(), path)
	require.NoError(t, err)
	defer a.Close()

	answer, err := a.Query(context.Background(), "what is indexed?")

	require.NoError(t, err)
	assert.Equal(t, "nothing indexed", answer.Text)
	assert.Empty(t, answer.Sources)
	assert.True(t, strings.HasPrefix(prompt, "Query:\nwhat is indexed?\n"))
}

func TestBuild_QueryMissingKey(t *testing.T) {
	t.Setenv("TEST_APP_HF_KEY", "")
	path, _ := writeConfig(t, "http://unused")

	a, err := Build(context.Background(), path)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Query(context.Background(), "q")

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestBuild_MissingExplicitConfig(t *testing.T) {
	_, err := Build(context.Background(), filepath.Join(t.TempDir(), "typo.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vector_store:\n  type: chroma\n"), 0o644))

	_, err := Build(context.Background(), path)

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}
