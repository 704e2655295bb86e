package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testRecord(fileName, id string, docType model.DocumentType, lang model.Language) model.OutputRecord {
	return model.OutputRecord{
		FileName: fileName,
		Type:     docType,
		General: model.FieldSet{
			model.KeyDocumentID:   id,
			model.KeyDocumentType: string(docType),
			model.KeyLanguage:     string(lang),
		},
		Domain: model.FieldSet{},
	}
}

func TestNewSQLiteStorage(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)

	store := createTestStorage(t)
	assert.Equal(t, "test.db", filepath.Base(store.Path()))
}

func TestRuns(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first, err := store.StartRun(ctx)
	require.NoError(t, err)
	second, err := store.StartRun(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, store.FinishRun(ctx, first.ID, 3, 1))

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Nil(t, runs[0].FinishedAt)
	assert.Equal(t, first.ID, runs[1].ID)
	require.NotNil(t, runs[1].FinishedAt)
	assert.Equal(t, 3, runs[1].Processed)
	assert.Equal(t, 1, runs[1].Failed)

	err = store.FinishRun(ctx, "missing", 0, 0)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
