package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mrlokans/clippings/internal/entities"
)

const noHighlightsSummary = "No highlights available for this book."

// Summarize renders a Markdown outline of a book's highlights: entries are
// sorted by reading position and partitioned into roughly five contiguous
// sections, listing highlight and note content as bullets. Bookmarks carry
// no text and are skipped.
func Summarize(book *entities.BookHighlights) string {
	if book == nil || len(book.Highlights) == 0 {
		return noHighlightsSummary
	}

	sorted := make([]entities.Highlight, len(book.Highlights))
	copy(sorted, book.Highlights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return locationStart(sorted[i].Location) < locationStart(sorted[j].Location)
	})

	var builder strings.Builder
	fmt.Fprintf(&builder, "# Summary: %s\n\n", book.Title)
	if book.Author != "" {
		fmt.Fprintf(&builder, "*%s*\n\n", book.Author)
	}

	// Books with fewer than five highlights collapse to a single section,
	// otherwise the floor division would produce a zero-length chunk.
	chunkSize := len(sorted) / 5
	if chunkSize == 0 {
		chunkSize = len(sorted)
	}

	section := 0
	for start := 0; start < len(sorted); start += chunkSize {
		end := start + chunkSize
		if end > len(sorted) {
			end = len(sorted)
		}
		section++

		fmt.Fprintf(&builder, "## Section %d\n\n", section)
		for _, h := range sorted[start:end] {
			if h.Type == entities.EntryTypeBookmark {
				continue
			}
			fmt.Fprintf(&builder, "- %s\n", h.Content)
		}
		builder.WriteString("\n")
	}

	return strings.TrimRight(builder.String(), "\n") + "\n"
}

// locationStart extracts the numeric prefix of a locator, the text before
// the first hyphen. Unparseable locators ("unknown") sort first.
func locationStart(location string) int {
	prefix, _, _ := strings.Cut(location, "-")
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return n
}
