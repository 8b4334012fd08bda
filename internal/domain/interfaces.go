package domain

import (
	"context"
	"strconv"
)

// Document is the text of a single page of a source file.
type Document struct {
	Source  string
	Page    int
	Content string
}

// PageKey identifies the (source, page) group a document belongs to.
func (d Document) PageKey() string {
	return PageKey(d.Source, d.Page)
}

// Chunk is a bounded part of a document used for indexing.
// Index is the position among chunks sharing the same source and page.
type Chunk struct {
	ID     string
	Source string
	Page   int
	Index  int
	Text   string
}

// PageKey identifies the (source, page) group the chunk belongs to.
func (c Chunk) PageKey() string {
	return PageKey(c.Source, c.Page)
}

// PageKey formats the "{source}:{page}" prefix shared by chunk ids.
func PageKey(source string, page int) string {
	return source + ":" + strconv.Itoa(page)
}

// ChunkID formats the stable "{source}:{page}:{index}" chunk identifier.
func ChunkID(source string, page, index int) string {
	return PageKey(source, page) + ":" + strconv.Itoa(index)
}

// SearchResult represents a matching chunk with a relevance score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// DocumentLoader reads every document under a directory.
type DocumentLoader interface {
	Load(ctx context.Context, dir string) ([]Document, error)
}

// Chunker splits documents into chunks suitable for retrieval indexing.
// Chunks come back grouped by page, in page order, without ids.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Embedder converts free text into a numeric vector representation.
type Embedder interface {
	Name() string
	Embed(ctx context.Context, text string) ([]float64, error)
}

// GenerateOptions tunes a single text generation request.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

// Generator produces text from a prompt using a hosted language model.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// VectorStore persists chunk vectors and supports similarity search.
// Upsert replaces records with the same chunk id.
type VectorStore interface {
	IDs(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, chunks []Chunk, vectors [][]float64) error
	Search(ctx context.Context, vector []float64, topK int) ([]SearchResult, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Close() error
}
