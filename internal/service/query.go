package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// TopK is the number of chunks retrieved for every query.
const TopK = 5

// Answer is the generated response and the chunks it was grounded on.
type Answer struct {
	Text    string
	Sources []string // chunk ids, most similar first
	Results []domain.SearchResult
	Prompt  string
}

// Querier answers questions from the chunks in a vector store.
type Querier struct {
	embedder  domain.Embedder
	store     domain.VectorStore
	generator domain.Generator
	opts      domain.GenerateOptions
	logger    *zap.Logger
}

func NewQuerier(
	embedder domain.Embedder,
	store domain.VectorStore,
	generator domain.Generator,
	opts domain.GenerateOptions,
	logger *zap.Logger,
) *Querier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Querier{
		embedder:  embedder,
		store:     store,
		generator: generator,
		opts:      opts,
		logger:    logger,
	}
}

// Query retrieves the closest chunks to text and asks the generator to
// answer from them. An empty store still reaches the generator with an
// empty context.
func (q *Querier) Query(ctx context.Context, text string) (Answer, error) {
	vector, err := q.embedder.Embed(ctx, text)
	if err != nil {
		return Answer{}, fmt.Errorf("embed query: %w", err)
	}
	results, err := q.store.Search(ctx, vector, TopK)
	if err != nil {
		return Answer{}, fmt.Errorf("search store: %w", err)
	}

	sources := make([]string, len(results))
	for i, r := range results {
		sources[i] = r.Chunk.ID
	}
	q.logger.Debug("retrieved chunks", zap.Strings("sources", sources))

	rendered, err := RenderPrompt(text, BuildContext(results))
	if err != nil {
		return Answer{}, fmt.Errorf("render prompt: %w", err)
	}
	out, err := q.generator.Generate(ctx, rendered, q.opts)
	if err != nil {
		return Answer{}, fmt.Errorf("generate with %s: %w", q.generator.Name(), err)
	}
	return Answer{Text: out, Sources: sources, Results: results, Prompt: rendered}, nil
}
