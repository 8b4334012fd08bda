// Package service drives ingestion and question answering over the
// configured loader, chunker, embedder, vector store and generator.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Samarth-Subramani/RAG-Application/internal/chunker"
	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

// PopulateReport summarizes one ingestion run.
type PopulateReport struct {
	Loaded   int // documents (pages) read from the data directory
	Chunks   int // chunks produced this run
	Existing int // ids already in the store before adding
	Added    int // chunks embedded and upserted
}

// Populator loads documents from a directory and adds chunks the store
// does not hold yet.
type Populator struct {
	dataPath string
	loader   domain.DocumentLoader
	chunker  domain.Chunker
	embedder domain.Embedder
	store    domain.VectorStore
	logger   *zap.Logger
}

func NewPopulator(
	dataPath string,
	loader domain.DocumentLoader,
	splitter domain.Chunker,
	embedder domain.Embedder,
	store domain.VectorStore,
	logger *zap.Logger,
) *Populator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Populator{
		dataPath: dataPath,
		loader:   loader,
		chunker:  splitter,
		embedder: embedder,
		store:    store,
		logger:   logger,
	}
}

// Populate ingests the data directory. With reset the store is cleared first.
// Chunks whose id is already stored are neither embedded nor written again,
// so running Populate twice over the same input adds nothing the second time.
func (p *Populator) Populate(ctx context.Context, reset bool) (PopulateReport, error) {
	var report PopulateReport

	if reset {
		p.logger.Info("clearing vector store")
		if err := p.store.Clear(ctx); err != nil {
			return report, fmt.Errorf("clear store: %w", err)
		}
	}

	docs, err := p.loader.Load(ctx, p.dataPath)
	if err != nil {
		return report, fmt.Errorf("load documents: %w", err)
	}
	if len(docs) == 0 {
		return report, fmt.Errorf("%w in %s", domain.ErrNoDocuments, p.dataPath)
	}
	report.Loaded = len(docs)

	chunks, err := p.split(docs)
	if err != nil {
		return report, err
	}
	report.Chunks = len(chunks)
	p.logger.Debug("split documents", zap.Int("documents", len(docs)), zap.Int("chunks", len(chunks)))

	existing, err := p.store.IDs(ctx)
	if err != nil {
		return report, fmt.Errorf("list stored ids: %w", err)
	}
	report.Existing = len(existing)

	fresh := NewChunks(chunks, existing)
	if len(fresh) == 0 {
		p.logger.Info("no new chunks", zap.Int("existing", report.Existing))
		return report, nil
	}

	vectors := make([][]float64, len(fresh))
	for i, c := range fresh {
		v, err := p.embedder.Embed(ctx, c.Text)
		if err != nil {
			return report, fmt.Errorf("embed %s: %w", c.ID, err)
		}
		vectors[i] = v
	}
	if err := p.store.Upsert(ctx, fresh, vectors); err != nil {
		return report, fmt.Errorf("upsert chunks: %w", err)
	}
	report.Added = len(fresh)
	p.logger.Info("added chunks",
		zap.Int("added", report.Added),
		zap.Int("existing", report.Existing),
		zap.String("embedder", p.embedder.Name()),
	)
	return report, nil
}

func (p *Populator) split(docs []domain.Document) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	for _, d := range docs {
		cs, err := p.chunker.Chunk(d)
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", d.PageKey(), err)
		}
		chunks = append(chunks, cs...)
	}
	chunks = chunker.AssignIDs(chunks)
	if dup := chunker.Collisions(chunks); len(dup) > 0 {
		p.logger.Error("chunk id collision", zap.Strings("ids", dup))
		return nil, fmt.Errorf("%w: %v", domain.ErrDuplicateChunkID, dup)
	}
	return chunks, nil
}

// NewChunks returns the chunks whose id is not in existing, in input order.
func NewChunks(chunks []domain.Chunk, existing []string) []domain.Chunk {
	stored := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		stored[id] = struct{}{}
	}
	var fresh []domain.Chunk
	for _, c := range chunks {
		if _, ok := stored[c.ID]; !ok {
			fresh = append(fresh, c)
		}
	}
	return fresh
}
