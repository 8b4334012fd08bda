// Package app assembles the pipeline components named in the config.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Samarth-Subramani/RAG-Application/internal/chunker"
	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/embedding"
	"github.com/Samarth-Subramani/RAG-Application/internal/llm"
	"github.com/Samarth-Subramani/RAG-Application/internal/loader"
	"github.com/Samarth-Subramani/RAG-Application/internal/logger"
	"github.com/Samarth-Subramani/RAG-Application/internal/service"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore"
)

// App owns the opened store and the clients built from one config.
// The generator is only created when a query needs it.
type App struct {
	cfg      *config.AppConfig
	logger   *zap.Logger
	chunker  domain.Chunker
	embedder domain.Embedder
	store    domain.VectorStore
}

// Build loads the config at configPath, or the default lookup when it is
// empty, and opens every component ingestion and querying share.
func Build(ctx context.Context, configPath string) (*App, error) {
	cfg, path, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", zap.String("path", path))

	split, err := chunker.New(cfg.Chunker)
	if err != nil {
		return nil, err
	}
	emb, err := embedding.New(ctx, cfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}
	store, err := vectorstore.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("vector store: %w", err)
	}
	log.Debug("components ready",
		zap.String("chunker", cfg.Chunker.Type),
		zap.String("embedder", emb.Name()),
		zap.String("store", cfg.VectorStore.Type),
	)
	return &App{cfg: cfg, logger: log, chunker: split, embedder: emb, store: store}, nil
}

func loadConfig(path string) (*config.AppConfig, string, error) {
	if path == "" {
		return config.LoadDefault()
	}
	// An explicit path must exist; only the default lookup falls back.
	if _, err := os.Stat(path); err != nil {
		return nil, path, err
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

// Populate ingests the configured data directory.
func (a *App) Populate(ctx context.Context, reset bool) (service.PopulateReport, error) {
	p := service.NewPopulator(
		a.cfg.DataPath,
		loader.NewPDFDirectoryLoader(a.logger),
		a.chunker,
		a.embedder,
		a.store,
		a.logger,
	)
	return p.Populate(ctx, reset)
}

// Query answers text from the stored chunks.
func (a *App) Query(ctx context.Context, text string) (service.Answer, error) {
	gen, err := llm.New(ctx, a.cfg.Generator)
	if err != nil {
		return service.Answer{}, fmt.Errorf("generator: %w", err)
	}
	q := service.NewQuerier(a.embedder, a.store, gen, llm.Options(a.cfg.Generator), a.logger)
	return q.Query(ctx, text)
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	err := a.store.Close()
	// Sync on a terminal stderr reports EINVAL on some platforms.
	_ = a.logger.Sync()
	return err
}
