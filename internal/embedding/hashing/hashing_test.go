package hashing

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func norm(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func TestEmbed_Deterministic(t *testing.T) {
	e := NewEmbedder(64)
	ctx := context.Background()

	a, err := e.Embed(ctx, "Monopoly rules for buying hotels")
	require.NoError(t, err)
	b, err := NewEmbedder(64).Embed(ctx, "Monopoly rules for buying hotels")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.InDelta(t, 1.0, norm(a), 1e-9)
}

func TestEmbed_SimilarTextScoresHigher(t *testing.T) {
	e := NewEmbedder(256)
	ctx := context.Background()

	q, _ := e.Embed(ctx, "how many houses before a hotel")
	near, _ := e.Embed(ctx, "you need four houses before you can build a hotel")
	far, _ := e.Embed(ctx, "the train leaves the station at noon")

	assert.Greater(t, dot(q, near), dot(q, far))
}

func TestEmbed_StopwordsOnly(t *testing.T) {
	e := NewEmbedder(0)

	v, err := e.Embed(context.Background(), "the and of")

	require.NoError(t, err)
	assert.Len(t, v, DefaultDimension)
	assert.Zero(t, norm(v))
}

func TestEmbed_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmbedder(8).Embed(ctx, "text")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestName(t *testing.T) {
	e := NewEmbedder(8)
	assert.Equal(t, "hashing", e.Name())
	assert.Equal(t, 8, e.Dimension())
}
