package exporters

import (
	"fmt"
	"strings"

	"github.com/mrlokans/clippings/internal/entities"
)

// renderMarkdown renders the filtered books either grouped under book
// headings (default) or as a flat stream with attribution lines.
func renderMarkdown(books []entities.BookHighlights, flat bool) string {
	var builder strings.Builder

	for i := range books {
		book := &books[i]

		if !flat {
			fmt.Fprintf(&builder, "# %s\n\n", book.Title)
			if book.Author != "" {
				fmt.Fprintf(&builder, "*%s*\n\n", book.Author)
			}
		}

		for _, h := range book.Highlights {
			writeBlockquote(&builder, h.Content)

			if flat {
				fmt.Fprintf(&builder, "*From: %s*\n\n", attribution(book))
			}

			if meta := metadataLine(&h); meta != "" {
				fmt.Fprintf(&builder, "*%s*\n\n", meta)
			}

			builder.WriteString("---\n\n")
		}
	}

	return builder.String()
}

func writeBlockquote(builder *strings.Builder, content string) {
	fmt.Fprintf(builder, "> %s\n\n", strings.ReplaceAll(content, "\n", "\n> "))
}

// metadataLine joins the locator, page, and tag fields that are actually
// present with " | ". A highlight with none of them gets no line at all.
func metadataLine(h *entities.Highlight) string {
	var parts []string
	if h.Location != "" && h.Location != entities.LocationUnknown {
		parts = append(parts, "Location: "+h.Location)
	}
	if h.Page != "" {
		parts = append(parts, "Page: "+h.Page)
	}
	if len(h.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(h.Tags, ", "))
	}
	return strings.Join(parts, " | ")
}

func attribution(book *entities.BookHighlights) string {
	if book.Author != "" {
		return fmt.Sprintf("%s by %s", book.Title, book.Author)
	}
	return book.Title
}
