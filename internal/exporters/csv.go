package exporters

import (
	"strings"
	"time"

	"github.com/mrlokans/clippings/internal/entities"
)

const csvHeader = "Book Title,Author,Content,Location,Page,Date Added,Type,Tags"

// renderCSV emits one row per highlight. Embedded newlines become spaces,
// and any field holding a comma or quote is double-quote wrapped with
// internal quotes doubled.
func renderCSV(books []entities.BookHighlights) string {
	var builder strings.Builder
	builder.WriteString(csvHeader + "\n")

	for i := range books {
		book := &books[i]
		for _, h := range book.Highlights {
			row := []string{
				csvField(book.Title),
				csvField(book.Author),
				csvField(h.Content),
				csvField(h.Location),
				csvField(h.Page),
				csvField(h.DateAdded.Format(time.RFC3339)),
				csvField(string(h.Type)),
				csvField(strings.Join(h.Tags, ", ")),
			}
			builder.WriteString(strings.Join(row, ",") + "\n")
		}
	}

	return builder.String()
}

func csvField(value string) string {
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	if strings.ContainsAny(value, `,"`) {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
