package memory

import (
	"context"
	"sync"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/scoring"
)

var _ domain.VectorStore = (*Storage)(nil)

// Storage is a simple in-memory vector store using brute-force cosine similarity.
// Records keep their first insertion position when replaced.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	records   []scoring.Record
	byID      map[string]int
}

func NewStorage() *Storage {
	return &Storage{byID: make(map[string]int)}
}

func (s *Storage) IDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.records))
	for i, r := range s.records {
		ids[i] = r.Chunk.ID
	}
	return ids, nil
}

func (s *Storage) Upsert(ctx context.Context, chunks []domain.Chunk, vectors [][]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dim, err := scoring.CheckBatch(chunks, vectors, s.dimension)
	if err != nil {
		return err
	}
	s.dimension = dim
	for i, c := range chunks {
		v := append([]float64(nil), vectors[i]...)
		if pos, ok := s.byID[c.ID]; ok {
			s.records[pos] = scoring.Record{Chunk: c, Vector: v}
			continue
		}
		s.byID[c.ID] = len(s.records)
		s.records = append(s.records, scoring.Record{Chunk: c, Vector: v})
	}
	return nil
}

func (s *Storage) Search(ctx context.Context, vector []float64, topK int) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scoring.TopK(vector, s.records, topK)
}

func (s *Storage) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *Storage) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = 0
	s.records = nil
	s.byID = make(map[string]int)
	return nil
}

func (s *Storage) Close() error { return nil }
