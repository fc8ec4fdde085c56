package usecase

import (
	"context"
	"newsagent/internal/domain"
	"newsagent/storage"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	records []domain.Record
	saved   []domain.Record
}

func (f *fakeStore) Load(ctx context.Context) ([]domain.Record, error) {
	return f.records, nil
}

func (f *fakeStore) Save(ctx context.Context, records []domain.Record) error {
	f.saved = records
	return nil
}

func newTestMerger(store RecordStore, today string) *MergeUseCase {
	uc := NewMergeUseCase(store, NewDrawbackAnnotator(nil, testLogger()), testLogger())
	runDate, _ := time.Parse("2006-01-02", today)
	uc.now = func() time.Time { return runDate }
	return uc
}

func digestOf(articles ...domain.Article) *domain.Digest {
	digest := domain.NewDigest()
	for _, a := range articles {
		digest.Add(a)
	}
	return digest
}

func TestMerge_RefetchReplacesRecord(t *testing.T) {
	store := &fakeStore{records: []domain.Record{
		{Title: "Old title", Link: "https://example.com/a", Drawback: "old", Fetched: "2024-01-01"},
	}}
	uc := newTestMerger(store, "2024-03-05")

	merged, err := uc.Merge(context.Background(), digestOf(domain.Article{
		Title:  "New title",
		Link:   "https://example.com/a",
		Source: "Acme",
	}))

	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "New title", merged[0].Title)
	assert.Equal(t, "2024-03-05", merged[0].Fetched)
	assert.Equal(t, fallbackDrawback, merged[0].Drawback)
}

func TestMerge_DistinctLinksKeepExistingRecords(t *testing.T) {
	store := &fakeStore{records: []domain.Record{
		{Title: "Untouched", Link: "https://example.com/old", Fetched: "2024-01-01"},
	}}
	uc := newTestMerger(store, "2024-03-05")

	merged, err := uc.Merge(context.Background(), digestOf(
		domain.Article{Title: "A", Link: "https://example.com/a", Source: "Acme"},
		domain.Article{Title: "B", Link: "https://example.com/b", Source: "Acme"},
	))

	require.NoError(t, err)
	require.Len(t, merged, 3)
	// Fresh records are stamped with the run date and sort first.
	assert.Equal(t, "A", merged[0].Title)
	assert.Equal(t, "B", merged[1].Title)
	assert.Equal(t, "Untouched", merged[2].Title)
	assert.Equal(t, "2024-01-01", merged[2].Fetched)
}

func TestMerge_EqualDatesKeepInsertionOrder(t *testing.T) {
	store := &fakeStore{records: []domain.Record{
		{Title: "First", Link: "https://example.com/1", Fetched: "2024-02-01"},
		{Title: "Second", Link: "https://example.com/2", Fetched: "2024-02-01"},
		{Title: "Newer", Link: "https://example.com/3", Fetched: "2024-02-20"},
	}}
	uc := newTestMerger(store, "2024-03-05")

	merged, err := uc.Merge(context.Background(), digestOf(domain.Article{
		Title: "Fresh", Link: "https://example.com/4", Source: "Acme",
	}))

	require.NoError(t, err)
	require.Len(t, merged, 4)
	assert.Equal(t, "Fresh", merged[0].Title)
	assert.Equal(t, "Newer", merged[1].Title)
	assert.Equal(t, "First", merged[2].Title)
	assert.Equal(t, "Second", merged[3].Title)
}

func TestMerge_SavesFullRecordSet(t *testing.T) {
	store := &fakeStore{}
	uc := newTestMerger(store, "2024-03-05")

	merged, err := uc.Merge(context.Background(), digestOf(domain.Article{
		Title: "A", Link: "https://example.com/a", Source: "Acme", Category: "vendor",
	}))

	require.NoError(t, err)
	assert.Equal(t, merged, store.saved)
	assert.Equal(t, "vendor", store.saved[0].Category)
	assert.Equal(t, "Acme", store.saved[0].Source)
}

func TestMerge_CorruptStoreTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := storage.NewJSONFileStore(path, testLogger())
	uc := newTestMerger(store, "2024-03-05")

	merged, err := uc.Merge(context.Background(), digestOf(domain.Article{
		Title: "Only current", Link: "https://example.com/a", Source: "Acme",
	}))

	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "Only current", merged[0].Title)

	reloaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "https://example.com/a", reloaded[0].Link)
}
