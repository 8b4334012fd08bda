// Package loader reads source documents from disk.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

var _ domain.DocumentLoader = (*PDFDirectoryLoader)(nil)

// PageReader extracts the plain text of every page of one PDF file.
type PageReader func(path string) ([]string, error)

// PDFDirectoryLoader walks a directory and returns one document per PDF page.
// Pages are numbered from zero. Hidden files and directories are skipped.
type PDFDirectoryLoader struct {
	readPages PageReader
	logger    *zap.Logger
}

// NewPDFDirectoryLoader creates a loader backed by github.com/ledongthuc/pdf.
func NewPDFDirectoryLoader(logger *zap.Logger) *PDFDirectoryLoader {
	return NewPDFDirectoryLoaderWithReader(ReadPDFPages, logger)
}

// NewPDFDirectoryLoaderWithReader creates a loader with a custom page reader.
func NewPDFDirectoryLoaderWithReader(read PageReader, logger *zap.Logger) *PDFDirectoryLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFDirectoryLoader{readPages: read, logger: logger}
}

// Load returns the pages of every PDF under dir in lexical path order.
func (l *PDFDirectoryLoader) Load(ctx context.Context, dir string) ([]domain.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	paths, err := pdfFiles(dir)
	if err != nil {
		return nil, err
	}

	var docs []domain.Document
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages, err := l.readPages(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		l.logger.Debug("loaded pdf", zap.String("source", p), zap.Int("pages", len(pages)))
		for i, text := range pages {
			docs = append(docs, domain.Document{Source: p, Page: i, Content: text})
		}
	}
	return docs, nil
}

func pdfFiles(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if path != dir && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(name), ".pdf") {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk data directory: %w", err)
	}
	return out, nil
}

// ReadPDFPages extracts the plain text of each page of the PDF at path.
// Pages without content yield an empty string so numbering is preserved.
func ReadPDFPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	n := reader.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
