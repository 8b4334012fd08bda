package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/storetest"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.VectorStore {
		s, err := Open(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	first := domain.Chunk{ID: "Data/b.pdf:1:0", Source: "Data/b.pdf", Page: 1, Text: "first"}
	second := domain.Chunk{ID: "Data/a.pdf:0:0", Source: "Data/a.pdf", Text: "second"}
	require.NoError(t, s.Upsert(ctx, []domain.Chunk{first, second}, [][]float64{{1, 0}, {1, 0}}))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, ids)

	results, err := s.Search(ctx, []float64{1, 0}, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, first, results[0].Chunk)
	assert.Equal(t, second, results[1].Chunk)
}

func TestVectorCodec(t *testing.T) {
	v := []float64{0, -1.5, 3.25e-7, 42}

	assert.Equal(t, v, decodeVector(encodeVector(v)))
	assert.Len(t, encodeVector(v), 32)
}
