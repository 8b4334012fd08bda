package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/storetest"
)

func TestStorage(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.VectorStore { return NewStorage() })
}

func TestStorage_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	chunks := []domain.Chunk{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	require.NoError(t, s.Upsert(ctx, chunks, [][]float64{{1}, {1}, {1}}))
	require.NoError(t, s.Upsert(ctx, []domain.Chunk{{ID: "a", Text: "again"}}, [][]float64{{1}}))

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, ids)

	results, err := s.Search(ctx, []float64{1}, 5)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "b", results[0].Chunk.ID)
	assert.Equal(t, "again", results[1].Chunk.Text)
}

func TestStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStorage().IDs(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
