// Package chunker splits page documents into retrieval chunks and assigns
// their stable ids.
package chunker

import (
	"fmt"

	"github.com/Samarth-Subramani/RAG-Application/internal/config"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// New returns the chunker selected by cfg.Type.
func New(cfg config.ChunkerConfig) (domain.Chunker, error) {
	switch cfg.Type {
	case "recursive", "":
		return NewRecursiveChunker(cfg.ChunkSize, cfg.ChunkOverlap), nil
	case "sentence":
		return NewSentenceChunker(cfg.SentencesPerChunk, cfg.OverlapSentences), nil
	default:
		return nil, fmt.Errorf("%w: chunker %q", domain.ErrUnknownBackend, cfg.Type)
	}
}
