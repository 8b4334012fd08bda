// Package vectorstore opens the configured vector store backend.
package vectorstore

import (
	"fmt"
	"time"

	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/bolt"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/memory"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/qdrant"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/sqlite"
)

// Open returns the store selected by cfg.VectorStore.Type. Local backends
// keep their files under cfg.StorePath.
func Open(cfg *config.AppConfig) (domain.VectorStore, error) {
	switch cfg.VectorStore.Type {
	case "bolt", "":
		s, err := bolt.Open(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.Open(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return memory.NewStorage(), nil
	case "qdrant":
		q := cfg.VectorStore.Qdrant
		if q == nil || q.URL == "" {
			return nil, fmt.Errorf("%w: vector_store.qdrant.url is required", domain.ErrInvalidInput)
		}
		return qdrant.NewStorage(qdrant.Config{
			URL:        q.URL,
			APIKey:     q.APIKey,
			Collection: q.Collection,
			Timeout:    time.Duration(q.TimeoutSecs) * time.Second,
		}), nil
	default:
		return nil, fmt.Errorf("%w: vector store %q", domain.ErrUnknownBackend, cfg.VectorStore.Type)
	}
}
