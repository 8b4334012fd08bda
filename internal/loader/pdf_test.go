package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samarth-Subramani/RAG-Application/internal/domain"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func fakePages(pages map[string][]string) PageReader {
	return func(path string) ([]string, error) {
		p, ok := pages[filepath.Base(path)]
		if !ok {
			return nil, errors.New("unexpected file " + path)
		}
		return p, nil
	}
}

func TestLoad_OneDocumentPerPage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.pdf"))
	writeFile(t, filepath.Join(dir, "a.PDF"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, ".hidden.pdf"))
	writeFile(t, filepath.Join(dir, ".cache", "c.pdf"))
	writeFile(t, filepath.Join(dir, "sub", "d.pdf"))

	l := NewPDFDirectoryLoaderWithReader(fakePages(map[string][]string{
		"a.PDF": {"a0", "a1"},
		"b.pdf": {"b0"},
		"d.pdf": {"", "d1"},
	}), nil)

	docs, err := l.Load(context.Background(), dir)
	require.NoError(t, err)

	want := []domain.Document{
		{Source: filepath.Join(dir, "a.PDF"), Page: 0, Content: "a0"},
		{Source: filepath.Join(dir, "a.PDF"), Page: 1, Content: "a1"},
		{Source: filepath.Join(dir, "b.pdf"), Page: 0, Content: "b0"},
		{Source: filepath.Join(dir, "sub", "d.pdf"), Page: 0, Content: ""},
		{Source: filepath.Join(dir, "sub", "d.pdf"), Page: 1, Content: "d1"},
	}
	assert.Equal(t, want, docs)
}

func TestLoad_MissingDirectory(t *testing.T) {
	l := NewPDFDirectoryLoader(nil)

	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.pdf")
	writeFile(t, path)
	l := NewPDFDirectoryLoader(nil)

	_, err := l.Load(context.Background(), path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	l := NewPDFDirectoryLoader(nil)

	docs, err := l.Load(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoad_ReaderErrorAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.pdf"))
	boom := errors.New("boom")
	l := NewPDFDirectoryLoaderWithReader(func(string) ([]string, error) { return nil, boom }, nil)

	_, err := l.Load(context.Background(), dir)

	assert.ErrorIs(t, err, boom)
}

func TestLoad_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewPDFDirectoryLoaderWithReader(fakePages(map[string][]string{"a.pdf": {"x"}}), nil)

	_, err := l.Load(ctx, dir)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadPDFPages_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := ReadPDFPages(path)

	assert.Error(t, err)
}
