package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/clippings/internal/entities"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "clippings_test.db")
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func storedLibrary() *entities.HighlightLibrary {
	added := time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)
	library := &entities.HighlightLibrary{
		Books: []entities.BookHighlights{
			{
				Title:  "First Book",
				Author: "First Author",
				Highlights: []entities.Highlight{
					{
						Title: "First Book", Author: "First Author",
						Content: "Opening thought", Location: "5-6",
						DateAdded: added, Type: entities.EntryTypeHighlight, Tags: []string{},
					},
					{
						Title: "First Book", Author: "First Author",
						Content: "A later note", Location: "80",
						DateAdded: added.Add(time.Hour), Type: entities.EntryTypeNote,
						Tags: []string{"important"},
					},
				},
			},
			{
				Title: "Second Book",
				Highlights: []entities.Highlight{
					{
						Title:   "Second Book",
						Content: "", Location: "12",
						DateAdded: added, Type: entities.EntryTypeBookmark, Tags: []string{},
					},
				},
			},
		},
		TotalHighlights: 3,
		LastUpdated:     added,
	}
	return library
}

func TestDatabase_ReplaceAndLoadLibrary(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ReplaceLibrary(storedLibrary()))

	loaded, err := db.LoadLibrary()
	require.NoError(t, err)

	require.Len(t, loaded.Books, 2)
	assert.Equal(t, "First Book", loaded.Books[0].Title)
	assert.Equal(t, "Second Book", loaded.Books[1].Title)
	assert.Equal(t, 3, loaded.TotalHighlights)

	first := loaded.Books[0].Highlights
	require.Len(t, first, 2)
	assert.Equal(t, "Opening thought", first[0].Content)
	assert.Equal(t, "5-6", first[0].Location)
	assert.Equal(t, entities.EntryTypeNote, first[1].Type)
	assert.Equal(t, []string{"important"}, first[1].Tags)
}

func TestDatabase_ReplaceLibraryIsIdempotentPerImport(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.ReplaceLibrary(storedLibrary()))
	require.NoError(t, db.ReplaceLibrary(storedLibrary()))

	count, err := db.CountHighlights()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDatabase_UpdateHighlightTags(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.ReplaceLibrary(storedLibrary()))

	loaded, err := db.LoadLibrary()
	require.NoError(t, err)
	target := loaded.Books[0].Highlights[0]
	require.Empty(t, target.Tags)

	require.NoError(t, db.UpdateHighlightTags(target.ID, []string{"concept", "definition"}))

	reloaded, err := db.LoadLibrary()
	require.NoError(t, err)
	assert.Equal(t, []string{"concept", "definition"}, reloaded.Books[0].Highlights[0].Tags)
}

func TestDatabase_LoadEmptyLibrary(t *testing.T) {
	db := setupTestDB(t)

	loaded, err := db.LoadLibrary()
	require.NoError(t, err)
	assert.Empty(t, loaded.Books)
	assert.Zero(t, loaded.TotalHighlights)
}
