package exporters

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/clippings/internal/entities"
)

func exportLibrary() *entities.HighlightLibrary {
	added := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	library := &entities.HighlightLibrary{
		Books: []entities.BookHighlights{
			{
				Title:  "Book One",
				Author: "Author One",
				Highlights: []entities.Highlight{
					{
						Title: "Book One", Author: "Author One",
						Content: `He said "hello"`, Location: "12-13", Page: "8",
						DateAdded: added, Type: entities.EntryTypeHighlight,
						Tags: []string{"quote"},
					},
					{
						Title: "Book One", Author: "Author One",
						Content: "Plain highlight, nothing special", Location: entities.LocationUnknown,
						DateAdded: added, Type: entities.EntryTypeHighlight,
						Tags: []string{},
					},
				},
			},
			{
				Title: "Book Two",
				Highlights: []entities.Highlight{
					{
						Title:   "Book Two",
						Content: "Second book text", Location: "44",
						DateAdded: added, Type: entities.EntryTypeNote,
						Tags: []string{"important"},
					},
				},
			},
		},
		LastUpdated: added,
	}
	library.TotalHighlights = library.CountHighlights()
	return library
}

func TestExport_Markdown(t *testing.T) {
	t.Run("grouped by book", func(t *testing.T) {
		out, err := Export(exportLibrary(), FormatMarkdown, ExportOptions{})
		require.NoError(t, err)

		assert.Contains(t, out, "# Book One\n\n*Author One*")
		assert.Contains(t, out, "# Book Two")
		assert.Contains(t, out, "> He said \"hello\"\n")
		assert.Contains(t, out, "*Location: 12-13 | Page: 8 | Tags: quote*")
		assert.Contains(t, out, "---\n")
		assert.NotContains(t, out, "From:")
		// "unknown" locations are not rendered
		assert.NotContains(t, out, "Location: unknown")
	})

	t.Run("flat with attribution lines", func(t *testing.T) {
		out, err := Export(exportLibrary(), FormatMarkdown, ExportOptions{Flat: true})
		require.NoError(t, err)

		assert.NotContains(t, out, "# Book One")
		assert.Contains(t, out, "*From: Book One by Author One*")
		assert.Contains(t, out, "*From: Book Two*")
	})

	t.Run("include books filter", func(t *testing.T) {
		out, err := Export(exportLibrary(), FormatMarkdown, ExportOptions{IncludeBooks: []string{"Book Two"}})
		require.NoError(t, err)

		assert.NotContains(t, out, "Book One")
		assert.Contains(t, out, "# Book Two")
	})

	t.Run("include tags filter", func(t *testing.T) {
		out, err := Export(exportLibrary(), FormatMarkdown, ExportOptions{IncludeTags: []string{"quote"}})
		require.NoError(t, err)

		assert.Contains(t, out, `He said "hello"`)
		assert.NotContains(t, out, "Plain highlight")
		assert.NotContains(t, out, "Second book text")
	})
}

func TestExport_CSV(t *testing.T) {
	t.Run("header and quoting", func(t *testing.T) {
		out, err := Export(exportLibrary(), FormatCSV, ExportOptions{})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Book Title,Author,Content,Location,Page,Date Added,Type,Tags", lines[0])

		// Embedded quotes are doubled and the field wrapped
		assert.Contains(t, lines[1], `"He said ""hello"""`)
		assert.Contains(t, lines[1], "2024-01-01T10:00:00Z")
		assert.Contains(t, lines[1], "quote")

		// Fields with commas are wrapped too
		assert.Contains(t, lines[2], `"Plain highlight, nothing special"`)
	})

	t.Run("newlines become spaces", func(t *testing.T) {
		library := exportLibrary()
		library.Books[0].Highlights[0].Content = "line one\nline two"

		out, err := Export(library, FormatCSV, ExportOptions{})
		require.NoError(t, err)
		assert.Contains(t, out, "line one line two")
	})
}

func TestExport_JSON(t *testing.T) {
	t.Run("recomputes totals over the filtered set", func(t *testing.T) {
		out, err := Export(exportLibrary(), FormatJSON, ExportOptions{IncludeBooks: []string{"Book One"}})
		require.NoError(t, err)

		var decoded struct {
			Books           []entities.BookHighlights `json:"books"`
			TotalHighlights int                       `json:"totalHighlights"`
			LastUpdated     time.Time                 `json:"lastUpdated"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))

		require.Len(t, decoded.Books, 1)
		assert.Equal(t, "Book One", decoded.Books[0].Title)
		assert.Equal(t, 2, decoded.TotalHighlights)
		assert.False(t, decoded.LastUpdated.IsZero())
	})

	t.Run("empty library is a valid export", func(t *testing.T) {
		out, err := Export(&entities.HighlightLibrary{}, FormatJSON, ExportOptions{})
		require.NoError(t, err)
		assert.Contains(t, out, `"books": []`)
		assert.Contains(t, out, `"totalHighlights": 0`)
	})
}

func TestExport_UnsupportedFormat(t *testing.T) {
	out, err := Export(exportLibrary(), "weird", ExportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "weird")
	assert.Empty(t, out)
}

func TestExport_DoesNotMutateLibrary(t *testing.T) {
	library := exportLibrary()
	_, err := Export(library, FormatMarkdown, ExportOptions{IncludeTags: []string{"quote"}})
	require.NoError(t, err)

	assert.Equal(t, 2, len(library.Books[0].Highlights))
	assert.Equal(t, 3, library.TotalHighlights)
}
