package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// HuggingFaceConfig holds connection details for the Hugging Face Inference API.
type HuggingFaceConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// OpenAIConfig holds configuration for an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// GeminiConfig holds configuration for the Gemini API.
type GeminiConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
}

// HashingConfig configures the offline feature-hashing embedder.
type HashingConfig struct {
	Dimension int `yaml:"dimension"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type        string             `yaml:"type"`
	HuggingFace *HuggingFaceConfig `yaml:"huggingface,omitempty"`
	OpenAI      *OpenAIConfig      `yaml:"openai,omitempty"`
	Gemini      *GeminiConfig      `yaml:"gemini,omitempty"`
	Hashing     *HashingConfig     `yaml:"hashing,omitempty"`
}

// GeneratorConfig selects the language model used to answer queries.
type GeneratorConfig struct {
	Type        string             `yaml:"type"`
	MaxTokens   int                `yaml:"max_tokens"`
	Temperature float64            `yaml:"temperature"`
	HuggingFace *HuggingFaceConfig `yaml:"huggingface,omitempty"`
	OpenAI      *OpenAIConfig      `yaml:"openai,omitempty"`
	Gemini      *GeminiConfig      `yaml:"gemini,omitempty"`
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	Type              string `yaml:"type"`
	ChunkSize         int    `yaml:"chunk_size"`
	ChunkOverlap      int    `yaml:"chunk_overlap"`
	SentencesPerChunk int    `yaml:"sentences_per_chunk"`
	OverlapSentences  int    `yaml:"overlap_sentences"`
}

// VectorStoreConfig selects and configures the vector store implementation.
type VectorStoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKey      string `yaml:"api_key"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	DataPath    string            `yaml:"data_path"`
	StorePath   string            `yaml:"store_path"`
	Log         LogConfig         `yaml:"log"`
	Chunker     ChunkerConfig     `yaml:"chunker"`
	Embedder    EmbedderConfig    `yaml:"embedder"`
	Generator   GeneratorConfig   `yaml:"generator"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data and fills in defaults for keys the
// document leaves out. Keys set explicitly keep their value, zero included.
func Parse(data []byte) (*AppConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyConfigDefaults(&cfg, &doc)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/rag/config.yaml.
// If neither exists, it writes defaults to ~/.config/rag/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects unknown backend names and impossible chunk sizes.
func (c *AppConfig) Validate() error {
	checks := []struct {
		field string
		value string
		known []string
	}{
		{"chunker.type", c.Chunker.Type, []string{"recursive", "sentence"}},
		{"embedder.type", c.Embedder.Type, []string{"huggingface", "openai", "gemini", "hashing"}},
		{"generator.type", c.Generator.Type, []string{"huggingface", "openai", "gemini"}},
		{"vector_store.type", c.VectorStore.Type, []string{"bolt", "sqlite", "memory", "qdrant"}},
		{"log.format", c.Log.Format, []string{"console", "json"}},
	}
	for _, chk := range checks {
		if !contains(chk.known, chk.value) {
			return fmt.Errorf("%w: %s %q", domain.ErrUnknownBackend, chk.field, chk.value)
		}
	}
	if c.Chunker.ChunkOverlap < 0 || c.Chunker.ChunkOverlap >= c.Chunker.ChunkSize {
		return fmt.Errorf("%w: chunker.chunk_overlap must be in [0, chunker.chunk_size)", domain.ErrInvalidInput)
	}
	if c.VectorStore.Type == "qdrant" && (c.VectorStore.Qdrant == nil || c.VectorStore.Qdrant.URL == "") {
		return fmt.Errorf("%w: vector_store.qdrant.url is required", domain.ErrInvalidInput)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rag", "config.yaml"), nil
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg, nil)
	return cfg
}

// explicit reports whether doc sets the key at path. A nil doc sets nothing.
func explicit(doc *yaml.Node, path ...string) bool {
	if doc == nil {
		return false
	}
	n := doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return false
		}
		n = n.Content[0]
	}
	for _, key := range path {
		if n.Kind != yaml.MappingNode {
			return false
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == key {
				next = n.Content[i+1]
				break
			}
		}
		if next == nil {
			return false
		}
		n = next
	}
	return true
}

// applyConfigDefaults fills unset fields. Fields where zero is a valid
// choice are only defaulted when doc does not mention them.
func applyConfigDefaults(cfg *AppConfig, doc *yaml.Node) {
	if cfg.DataPath == "" {
		cfg.DataPath = "Data"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "chroma"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	if cfg.Chunker.Type == "" {
		cfg.Chunker.Type = "recursive"
	}
	if cfg.Chunker.ChunkSize == 0 {
		cfg.Chunker.ChunkSize = 800
	}
	if !explicit(doc, "chunker", "chunk_overlap") {
		cfg.Chunker.ChunkOverlap = cfg.Chunker.ChunkSize / 10
	}
	if cfg.Chunker.SentencesPerChunk == 0 {
		cfg.Chunker.SentencesPerChunk = 5
	}
	if !explicit(doc, "chunker", "overlap_sentences") {
		cfg.Chunker.OverlapSentences = 1
	}

	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "huggingface"
	}
	switch cfg.Embedder.Type {
	case "huggingface":
		cfg.Embedder.HuggingFace = huggingFaceDefaults(cfg.Embedder.HuggingFace, "sentence-transformers/all-MiniLM-L6-v2")
	case "openai":
		cfg.Embedder.OpenAI = openAIDefaults(cfg.Embedder.OpenAI, "text-embedding-3-small")
	case "gemini":
		cfg.Embedder.Gemini = geminiDefaults(cfg.Embedder.Gemini, "text-embedding-004")
	case "hashing":
		if cfg.Embedder.Hashing == nil {
			cfg.Embedder.Hashing = &HashingConfig{}
		}
		if cfg.Embedder.Hashing.Dimension == 0 {
			cfg.Embedder.Hashing.Dimension = 384
		}
	}

	if cfg.Generator.Type == "" {
		cfg.Generator.Type = "huggingface"
	}
	if cfg.Generator.MaxTokens == 0 {
		cfg.Generator.MaxTokens = 128
	}
	if !explicit(doc, "generator", "temperature") {
		cfg.Generator.Temperature = 0.5
	}
	switch cfg.Generator.Type {
	case "huggingface":
		cfg.Generator.HuggingFace = huggingFaceDefaults(cfg.Generator.HuggingFace, "mistralai/Mistral-7B-Instruct-v0.3")
	case "openai":
		cfg.Generator.OpenAI = openAIDefaults(cfg.Generator.OpenAI, "gpt-4o-mini")
	case "gemini":
		cfg.Generator.Gemini = geminiDefaults(cfg.Generator.Gemini, "gemini-2.0-flash")
	}

	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "bolt"
	}
	if cfg.VectorStore.Type == "qdrant" {
		if cfg.VectorStore.Qdrant == nil {
			cfg.VectorStore.Qdrant = &QdrantConfig{}
		}
		if cfg.VectorStore.Qdrant.Collection == "" {
			cfg.VectorStore.Qdrant.Collection = "chunks"
		}
		if cfg.VectorStore.Qdrant.TimeoutSecs == 0 {
			cfg.VectorStore.Qdrant.TimeoutSecs = 15
		}
	}
}

func huggingFaceDefaults(c *HuggingFaceConfig, model string) *HuggingFaceConfig {
	if c == nil {
		c = &HuggingFaceConfig{}
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://router.huggingface.co/hf-inference/models"
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = "HUGGINGFACE_API_KEY"
	}
	if c.Model == "" {
		c.Model = model
	}
	if c.TimeoutSecs == 0 {
		c.TimeoutSecs = 60
	}
	return c
}

func openAIDefaults(c *OpenAIConfig, model string) *OpenAIConfig {
	if c == nil {
		c = &OpenAIConfig{}
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.Model == "" {
		c.Model = model
	}
	if c.TimeoutSecs == 0 {
		c.TimeoutSecs = 30
	}
	return c
}

func geminiDefaults(c *GeminiConfig, model string) *GeminiConfig {
	if c == nil {
		c = &GeminiConfig{}
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = "GEMINI_API_KEY"
	}
	if c.Model == "" {
		c.Model = model
	}
	return c
}
