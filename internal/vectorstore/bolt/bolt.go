// Package bolt persists chunk vectors in a bbolt file and searches them by
// full-scan cosine similarity.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
	"github.com/Samarth-Subramani/RAG-Application/internal/vectorstore/scoring"
)

var _ domain.VectorStore = (*Store)(nil)

// FileName is the database file created inside the store directory.
const FileName = "index.db"

var (
	bucketChunks = []byte("chunks")
	bucketMeta   = []byte("meta")
	keyDimension = []byte("dimension")
)

type record struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Page   int       `json:"page"`
	Index  int       `json:"index"`
	Text   string    `json:"text"`
	Vector []float64 `json:"vector"`
}

func (r record) chunk() domain.Chunk {
	return domain.Chunk{ID: r.ID, Source: r.Source, Page: r.Page, Index: r.Index, Text: r.Text}
}

// Store is a bbolt-backed vector store. Records are keyed by chunk id.
type Store struct {
	db *bbolt.DB
}

// Open creates dir if needed and opens dir/index.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	db, err := bbolt.Open(filepath.Join(dir, FileName), 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	if err := db.Update(createBuckets); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bolt store: %w", err)
	}
	return &Store{db: db}, nil
}

func createBuckets(tx *bbolt.Tx) error {
	if _, err := tx.CreateBucketIfNotExists(bucketChunks); err != nil {
		return err
	}
	_, err := tx.CreateBucketIfNotExists(bucketMeta)
	return err
}

func (s *Store) IDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := []string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChunks).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}
	return ids, nil
}

func (s *Store) Upsert(ctx context.Context, chunks []domain.Chunk, vectors [][]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		stored := 0
		if raw := meta.Get(keyDimension); raw != nil {
			n, err := strconv.Atoi(string(raw))
			if err != nil {
				return fmt.Errorf("read dimension: %w", err)
			}
			stored = n
		}
		dim, err := scoring.CheckBatch(chunks, vectors, stored)
		if err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		if err := meta.Put(keyDimension, []byte(strconv.Itoa(dim))); err != nil {
			return err
		}
		b := tx.Bucket(bucketChunks)
		for i, c := range chunks {
			data, err := json.Marshal(record{
				ID:     c.ID,
				Source: c.Source,
				Page:   c.Page,
				Index:  c.Index,
				Text:   c.Text,
				Vector: vectors[i],
			})
			if err != nil {
				return fmt.Errorf("encode %s: %w", c.ID, err)
			}
			if err := b.Put([]byte(c.ID), data); err != nil {
				return fmt.Errorf("put %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// Search scans every record; ties keep key order.
func (s *Store) Search(ctx context.Context, vector []float64, topK int) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []scoring.Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChunks).ForEach(func(k, v []byte) error {
			var r record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}
			records = append(records, scoring.Record{Chunk: r.chunk(), Vector: r.Vector})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return scoring.TopK(vector, records, topK)
}

func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketChunks).Stats().KeyN
		return nil
	})
	return n, err
}

// Clear drops and recreates both buckets.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketChunks, bucketMeta} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("drop %s: %w", name, err)
			}
		}
		return createBuckets(tx)
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
