// Package scoring holds the brute-force similarity search shared by the
// local vector stores.
package scoring

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// Record is a stored chunk together with its embedding.
type Record struct {
	Chunk  domain.Chunk
	Vector []float64
}

// Cosine returns the cosine similarity of a and b, or 0 when either has zero norm.
func Cosine(a, b []float64) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// TopK scores every record against query and returns the k best, most
// similar first. Equal scores keep the order of records.
func TopK(query []float64, records []Record, k int) ([]domain.SearchResult, error) {
	if k <= 0 || len(records) == 0 {
		return []domain.SearchResult{}, nil
	}
	results := make([]domain.SearchResult, 0, len(records))
	for _, r := range records {
		if len(r.Vector) != len(query) {
			return nil, fmt.Errorf("%w: query has %d dimensions, stored vector has %d",
				domain.ErrDimensionMismatch, len(query), len(r.Vector))
		}
		results = append(results, domain.SearchResult{Chunk: r.Chunk, Score: Cosine(query, r.Vector)})
	}
	slices.SortStableFunc(results, func(a, b domain.SearchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}

// CheckBatch validates an upsert batch and returns its vector dimension.
// dim is the dimension already stored, or 0 when the store is empty.
func CheckBatch(chunks []domain.Chunk, vectors [][]float64, dim int) (int, error) {
	if len(chunks) != len(vectors) {
		return 0, fmt.Errorf("%w: %d chunks but %d vectors", domain.ErrInvalidInput, len(chunks), len(vectors))
	}
	seen := make(map[string]struct{}, len(chunks))
	for i, c := range chunks {
		if c.ID == "" {
			return 0, fmt.Errorf("%w: chunk %d has no id", domain.ErrInvalidInput, i)
		}
		if _, dup := seen[c.ID]; dup {
			return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateChunkID, c.ID)
		}
		seen[c.ID] = struct{}{}

		v := vectors[i]
		if len(v) == 0 {
			return 0, fmt.Errorf("%w: empty vector for %s", domain.ErrInvalidInput, c.ID)
		}
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return 0, fmt.Errorf("%w: %s has %d dimensions, want %d", domain.ErrDimensionMismatch, c.ID, len(v), dim)
		}
	}
	return dim, nil
}
