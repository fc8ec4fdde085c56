package storage

import (
	"context"
	"io"
	"log/slog"
	"newsagent/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJSONFileStore_Load_MissingFile(t *testing.T) {
	store := NewJSONFileStore(filepath.Join(t.TempDir(), "absent.json"), testLogger())

	records, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJSONFileStore_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))
	store := NewJSONFileStore(path, testLogger())

	records, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJSONFileStore_SaveAndLoad_PreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "articles.json")
	store := NewJSONFileStore(path, testLogger())

	saved := []domain.Record{
		{Title: "B", Link: "https://example.com/b", Fetched: "2024-03-05"},
		{Title: "A", Link: "https://example.com/a", Fetched: "2024-03-01"},
	}
	require.NoError(t, store.Save(context.Background(), saved))

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestJSONFileStore_Save_OverwritesCompletely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	store := NewJSONFileStore(path, testLogger())

	require.NoError(t, store.Save(context.Background(), []domain.Record{
		{Title: "Old", Link: "https://example.com/old", Fetched: "2024-01-01"},
	}))
	require.NoError(t, store.Save(context.Background(), []domain.Record{
		{Title: "New", Link: "https://example.com/new", Fetched: "2024-03-05"},
	}))

	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New", loaded[0].Title)
}
