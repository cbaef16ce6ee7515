package kindle

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/mrlokans/clippings/internal/entities"
)

// Parser parses Kindle "My Clippings.txt" exports into a HighlightLibrary.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

const entrySeparator = "=========="

// Regex patterns for parsing title and metadata lines
var (
	// Title with author: "Book Title (Author Name)"
	// The lazy title capture plus the end anchor means the author is the
	// contents of the last parenthesised group on the line.
	titleAuthorPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)

	// Location patterns: "Location 64-64" or "at location 784-785"
	locationPattern = regexp.MustCompile(`(?i)(?:at )?location (\d+(?:-\d+)?)`)

	// Page patterns: "on page 8" or "page 207-207"
	pagePattern = regexp.MustCompile(`(?i)(?:on )?page (\d+(?:-\d+)?)`)

	// Date layouts observed in the wild:
	// "Added on Tuesday, April 15, 2025 10:16:21 PM"
	// "Added on Saturday, 26 March 2016 14:59:39"
	datePatterns = []string{
		"Added on Monday, January 2, 2006 3:04:05 PM",
		"Added on Monday, January 2, 2006 15:04:05",
		"Added on Monday, 2 January 2006 3:04:05 PM",
		"Added on Monday, 2 January 2006 15:04:05",
	}
)

// Warning describes a recoverable problem found during strict parsing.
type Warning struct {
	Entry   int    // zero-based index of the entry in the source
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("entry %d: %s", w.Entry, w.Message)
}

// Parse reads a clippings export and returns the extracted library.
// Extraction is best-effort: malformed entries are logged and skipped,
// one bad entry never aborts the batch.
func (p *Parser) Parse(r io.Reader) (*entities.HighlightLibrary, error) {
	library, warnings, err := p.parse(r)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Printf("kindle: %s", w)
	}
	return library, nil
}

// ParseStrict behaves like Parse but also reports skipped entries and
// silent date fallbacks instead of only logging them.
func (p *Parser) ParseStrict(r io.Reader) (*entities.HighlightLibrary, []Warning, error) {
	return p.parse(r)
}

func (p *Parser) parse(r io.Reader) (*entities.HighlightLibrary, []Warning, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var highlights []entities.Highlight
	var warnings []Warning
	var currentLines []string
	entryIndex := 0

	flush := func() {
		if len(currentLines) == 0 {
			return
		}
		highlight, warn := parseEntry(currentLines)
		if warn != "" {
			warnings = append(warnings, Warning{Entry: entryIndex, Message: warn})
		}
		if highlight != nil {
			highlights = append(highlights, *highlight)
		}
		currentLines = nil
		entryIndex++
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == entrySeparator {
			flush()
			continue
		}
		currentLines = append(currentLines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading clippings: %w", err)
	}

	// Handle the last entry if the export does not end with a separator
	flush()

	return groupIntoLibrary(highlights), warnings, nil
}

// parseEntry parses one delimiter-separated block. A nil highlight with a
// non-empty warning means the entry was skipped; insufficient data is not
// an error.
func parseEntry(rawLines []string) (*entities.Highlight, string) {
	var lines []string
	for _, line := range rawLines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) < 2 {
		return nil, "entry too short"
	}

	title, author := parseTitleAuthor(lines[0])

	metadataLine := lines[1]
	entryType := parseEntryType(metadataLine)
	location := parseLocation(metadataLine)
	page := parsePage(metadataLine)
	dateAdded, dateWarning := parseDate(metadataLine)

	// Content may legitimately be empty (bookmarks)
	content := strings.Join(lines[2:], "\n")

	return &entities.Highlight{
		Title:     title,
		Author:    author,
		Content:   content,
		Location:  location,
		Page:      page,
		DateAdded: dateAdded,
		Type:      entryType,
		Tags:      []string{},
	}, dateWarning
}

func parseTitleAuthor(line string) (title, author string) {
	matches := titleAuthorPattern.FindStringSubmatch(line)
	if len(matches) == 3 {
		return strings.TrimSpace(matches[1]), strings.TrimSpace(matches[2])
	}
	// No author in parentheses, use the whole line as title
	return line, ""
}

// parseEntryType checks the three fixed markers in precedence order and
// defaults to highlight when none match.
func parseEntryType(line string) entities.EntryType {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "your highlight"):
		return entities.EntryTypeHighlight
	case strings.Contains(lower, "your note"):
		return entities.EntryTypeNote
	case strings.Contains(lower, "your bookmark"):
		return entities.EntryTypeBookmark
	default:
		return entities.EntryTypeHighlight
	}
}

func parseLocation(line string) string {
	matches := locationPattern.FindStringSubmatch(line)
	if len(matches) == 2 {
		return matches[1]
	}
	return entities.LocationUnknown
}

func parsePage(line string) string {
	matches := pagePattern.FindStringSubmatch(line)
	if len(matches) == 2 {
		return matches[1]
	}
	return ""
}

// parseDate extracts the "Added on ..." clause. An absent or unparseable
// date falls back to the current time; the warning carries the detail for
// strict callers, default callers only log it.
func parseDate(line string) (time.Time, string) {
	idx := strings.Index(strings.ToLower(line), "added on")
	if idx == -1 {
		return time.Now(), ""
	}

	dateStr := "Added on" + line[idx+8:]
	dateStr = strings.TrimSpace(dateStr)

	for _, pattern := range datePatterns {
		t, err := time.Parse(pattern, dateStr)
		if err == nil {
			return t, ""
		}
	}

	return time.Now(), fmt.Sprintf("unparseable date %q, using current time", dateStr)
}

// groupIntoLibrary groups highlights by exact title, preserving the order
// in which each title first appears. The author of a book is taken from
// the first highlight encountered for that title.
func groupIntoLibrary(highlights []entities.Highlight) *entities.HighlightLibrary {
	bookMap := make(map[string]*entities.BookHighlights)
	var titleOrder []string

	for _, h := range highlights {
		book, exists := bookMap[h.Title]
		if !exists {
			book = &entities.BookHighlights{
				Title:      h.Title,
				Author:     h.Author,
				Highlights: []entities.Highlight{},
			}
			bookMap[h.Title] = book
			titleOrder = append(titleOrder, h.Title)
		}
		book.Highlights = append(book.Highlights, h)
	}

	library := &entities.HighlightLibrary{
		Books:       make([]entities.BookHighlights, 0, len(titleOrder)),
		LastUpdated: time.Now(),
	}
	for _, title := range titleOrder {
		library.Books = append(library.Books, *bookMap[title])
	}
	library.TotalHighlights = library.CountHighlights()

	return library
}
