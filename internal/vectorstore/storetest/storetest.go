// Package storetest runs the behaviour every domain.VectorStore must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// Factory returns an empty store; the suite closes it.
type Factory func(t *testing.T) domain.VectorStore

func chunk(source string, page, index int, text string) domain.Chunk {
	return domain.Chunk{
		ID:     domain.ChunkID(source, page, index),
		Source: source,
		Page:   page,
		Index:  index,
		Text:   text,
	}
}

func open(t *testing.T, newStore Factory) domain.VectorStore {
	t.Helper()
	s := newStore(t)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// Run executes the shared suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		s := open(t, newStore)

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		ids, err := s.IDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)

		results, err := s.Search(ctx, []float64{1, 0}, 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("upsert and ids", func(t *testing.T) {
		s := open(t, newStore)
		a := chunk("Data/a.pdf", 0, 0, "alpha")
		b := chunk("Data/a.pdf", 0, 1, "beta")

		require.NoError(t, s.Upsert(ctx, []domain.Chunk{a, b}, [][]float64{{1, 0}, {0, 1}}))

		ids, err := s.IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("upsert replaces by id", func(t *testing.T) {
		s := open(t, newStore)
		a := chunk("Data/a.pdf", 0, 0, "old")
		require.NoError(t, s.Upsert(ctx, []domain.Chunk{a}, [][]float64{{1, 0}}))

		a.Text = "new"
		require.NoError(t, s.Upsert(ctx, []domain.Chunk{a}, [][]float64{{0, 1}}))

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		results, err := s.Search(ctx, []float64{0, 1}, 5)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "new", results[0].Chunk.Text)
		assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	})

	t.Run("search ranks by cosine", func(t *testing.T) {
		s := open(t, newStore)
		far := chunk("Data/b.pdf", 2, 0, "far")
		near := chunk("Data/b.pdf", 2, 1, "near")
		mid := chunk("Data/c.pdf", 0, 0, "mid")
		require.NoError(t, s.Upsert(ctx,
			[]domain.Chunk{far, near, mid},
			[][]float64{{0, 1}, {1, 0}, {0.6, 0.8}},
		))

		results, err := s.Search(ctx, []float64{1, 0}, 2)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, near, results[0].Chunk)
		assert.Equal(t, mid, results[1].Chunk)
		assert.InDelta(t, 1.0, results[0].Score, 1e-6)
		assert.InDelta(t, 0.6, results[1].Score, 1e-6)
	})

	t.Run("rejects bad batches", func(t *testing.T) {
		s := open(t, newStore)
		a := chunk("Data/a.pdf", 0, 0, "alpha")

		err := s.Upsert(ctx, []domain.Chunk{a}, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		require.NoError(t, s.Upsert(ctx, []domain.Chunk{a}, [][]float64{{1, 0}}))
		b := chunk("Data/a.pdf", 0, 1, "beta")
		err = s.Upsert(ctx, []domain.Chunk{b}, [][]float64{{1, 0, 0}})
		assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	})

	t.Run("clear", func(t *testing.T) {
		s := open(t, newStore)
		a := chunk("Data/a.pdf", 0, 0, "alpha")
		require.NoError(t, s.Upsert(ctx, []domain.Chunk{a}, [][]float64{{1, 0}}))

		require.NoError(t, s.Clear(ctx))

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		ids, err := s.IDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)

		// A cleared store accepts a new dimension.
		require.NoError(t, s.Upsert(ctx, []domain.Chunk{a}, [][]float64{{1, 0, 0}}))
		n, err = s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("clear on empty store", func(t *testing.T) {
		s := open(t, newStore)
		assert.NoError(t, s.Clear(ctx))
	})
}
