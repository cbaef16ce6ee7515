package exporters

import (
	"errors"
	"fmt"

	"github.com/mrlokans/clippings/internal/entities"
)

// Supported export formats.
const (
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// ErrUnsupportedFormat is returned when Export is asked for a format it
// does not know. Callers can match it with errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportOptions filters what gets exported and tunes the rendering.
type ExportOptions struct {
	// IncludeBooks restricts the export to these titles; empty means all.
	IncludeBooks []string
	// IncludeTags keeps only highlights carrying at least one of these
	// tags; empty means all.
	IncludeTags []string
	// Flat renders markdown as a single stream with per-highlight
	// attribution lines instead of grouping under book headings.
	Flat bool
}

// Export renders the library in the requested format and returns it as a
// string. Unknown formats are a hard error, never silently defaulted.
func Export(library *entities.HighlightLibrary, format string, opts ExportOptions) (string, error) {
	books := filterBooks(library, opts)

	switch format {
	case FormatMarkdown:
		return renderMarkdown(books, opts.Flat), nil
	case FormatCSV:
		return renderCSV(books), nil
	case FormatJSON:
		return renderJSON(books)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// filterBooks applies the shared pre-filtering: the include-book list,
// then the tag restriction on each book's highlights. The original
// library is never mutated.
func filterBooks(library *entities.HighlightLibrary, opts ExportOptions) []entities.BookHighlights {
	if library == nil {
		return nil
	}

	include := make(map[string]bool, len(opts.IncludeBooks))
	for _, title := range opts.IncludeBooks {
		include[title] = true
	}
	tags := make(map[string]bool, len(opts.IncludeTags))
	for _, tag := range opts.IncludeTags {
		tags[tag] = true
	}

	books := make([]entities.BookHighlights, 0, len(library.Books))
	for _, book := range library.Books {
		if len(include) > 0 && !include[book.Title] {
			continue
		}

		filtered := book
		if len(tags) > 0 {
			filtered.Highlights = nil
			for _, h := range book.Highlights {
				for _, tag := range h.Tags {
					if tags[tag] {
						filtered.Highlights = append(filtered.Highlights, h)
						break
					}
				}
			}
		}
		books = append(books, filtered)
	}
	return books
}
