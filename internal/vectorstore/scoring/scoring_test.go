package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func rec(id string, v ...float64) Record {
	return Record{Chunk: domain.Chunk{ID: id}, Vector: v}
}

func ids(results []domain.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Chunk.ID
	}
	return out
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 2}, b: []float64{1, 2}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 3}, want: 0},
		{name: "opposite", a: []float64{1, 1}, b: []float64{-2, -2}, want: -1},
		{name: "scale invariant", a: []float64{3, 4}, b: []float64{6, 8}, want: 1},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 1}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestTopK_Ordering(t *testing.T) {
	records := []Record{rec("c", 0, 1), rec("a", 1, 0), rec("b", 0.6, 0.8)}

	got, err := TopK([]float64{1, 0}, records, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
	assert.InDelta(t, 0.6, got[1].Score, 1e-9)
}

func TestTopK_LimitAndTies(t *testing.T) {
	records := []Record{rec("x", 1, 0), rec("y", 1, 0), rec("z", 2, 0), rec("w", 0, 1)}

	got, err := TopK([]float64{1, 0}, records, 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, ids(got))
}

func TestTopK_Empty(t *testing.T) {
	got, err := TopK([]float64{1}, nil, 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = TopK([]float64{1}, []Record{rec("a", 1)}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopK_DimensionMismatch(t *testing.T) {
	_, err := TopK([]float64{1, 0, 0}, []Record{rec("a", 1, 0)}, 5)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestCheckBatch(t *testing.T) {
	a := domain.Chunk{ID: "a"}
	b := domain.Chunk{ID: "b"}

	dim, err := CheckBatch([]domain.Chunk{a, b}, [][]float64{{1, 2}, {3, 4}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	dim, err = CheckBatch(nil, nil, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, dim)

	tests := []struct {
		name    string
		chunks  []domain.Chunk
		vectors [][]float64
		dim     int
		want    error
	}{
		{name: "length mismatch", chunks: []domain.Chunk{a}, vectors: nil, want: domain.ErrInvalidInput},
		{name: "missing id", chunks: []domain.Chunk{{}}, vectors: [][]float64{{1}}, want: domain.ErrInvalidInput},
		{name: "empty vector", chunks: []domain.Chunk{a}, vectors: [][]float64{{}}, want: domain.ErrInvalidInput},
		{name: "duplicate id", chunks: []domain.Chunk{a, a}, vectors: [][]float64{{1}, {1}}, want: domain.ErrDuplicateChunkID},
		{name: "ragged batch", chunks: []domain.Chunk{a, b}, vectors: [][]float64{{1}, {1, 2}}, want: domain.ErrDimensionMismatch},
		{name: "stored dimension", chunks: []domain.Chunk{a}, vectors: [][]float64{{1, 2}}, dim: 3, want: domain.ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckBatch(tt.chunks, tt.vectors, tt.dim)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
