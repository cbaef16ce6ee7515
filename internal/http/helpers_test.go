package http

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/clippings/internal/database"
	"github.com/mrlokans/clippings/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// seedLibrary stores a small two-book fixture and returns it.
func seedLibrary(t *testing.T, db *database.Database) *entities.HighlightLibrary {
	t.Helper()

	added := time.Date(2023, time.October, 15, 21, 13, 42, 0, time.UTC)
	library := &entities.HighlightLibrary{
		Books: []entities.BookHighlights{
			{
				Title:  "Atomic Habits",
				Author: "James Clear",
				Highlights: []entities.Highlight{
					{
						Title:     "Atomic Habits",
						Author:    "James Clear",
						Content:   "Habits are the compound interest of self-improvement.",
						Location:  "100-101",
						DateAdded: added,
						Type:      entities.EntryTypeHighlight,
					},
					{
						Title:     "Atomic Habits",
						Author:    "James Clear",
						Content:   "For example, small overall wins accumulate with time.",
						Location:  "210",
						DateAdded: added.Add(time.Hour),
						Type:      entities.EntryTypeHighlight,
					},
				},
			},
			{
				Title:  "Meditations",
				Author: "Marcus Aurelius",
				Highlights: []entities.Highlight{
					{
						Title:     "Meditations",
						Author:    "Marcus Aurelius",
						Content:   "You have power over your mind, not outside events.",
						Location:  "55",
						DateAdded: added.Add(2 * time.Hour),
						Type:      entities.EntryTypeHighlight,
					},
				},
			},
		},
		TotalHighlights: 3,
		LastUpdated:     added.Add(2 * time.Hour),
	}

	require.NoError(t, db.ReplaceLibrary(library))
	return library
}
