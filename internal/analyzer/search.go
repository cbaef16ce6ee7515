package analyzer

import (
	"regexp"
	"strings"

	"github.com/mrlokans/clippings/internal/entities"
)

// SearchOptions narrows a full-text search over the library.
// Zero values mean no restriction.
type SearchOptions struct {
	CaseSensitive bool
	WholeWord     bool
	IncludeBooks  []string
	ExcludeBooks  []string
	Types         []entities.EntryType
}

// Search returns the highlights whose content matches the query, in
// book-then-highlight encounter order. An empty query matches nothing.
func Search(library *entities.HighlightLibrary, query string, opts SearchOptions) []entities.Highlight {
	if library == nil || query == "" {
		return nil
	}

	include := toSet(opts.IncludeBooks)
	exclude := toSet(opts.ExcludeBooks)
	types := make(map[entities.EntryType]bool, len(opts.Types))
	for _, t := range opts.Types {
		types[t] = true
	}

	matches := newMatcher(query, opts)

	var results []entities.Highlight
	for i := range library.Books {
		book := &library.Books[i]
		if len(include) > 0 && !include[book.Title] {
			continue
		}
		if exclude[book.Title] {
			continue
		}
		for _, h := range book.Highlights {
			if len(types) > 0 && !types[h.Type] {
				continue
			}
			if matches(h.Content) {
				results = append(results, h)
			}
		}
	}
	return results
}

// newMatcher builds the content predicate. Whole-word matching anchors
// the query (escaped as a literal) on word boundaries; otherwise plain
// substring matching is used, case-folded unless CaseSensitive is set.
func newMatcher(query string, opts SearchOptions) func(string) bool {
	if opts.WholeWord {
		pattern := `\b` + regexp.QuoteMeta(query) + `\b`
		if !opts.CaseSensitive {
			pattern = `(?i)` + pattern
		}
		re := regexp.MustCompile(pattern)
		return re.MatchString
	}

	if opts.CaseSensitive {
		return func(content string) bool {
			return strings.Contains(content, query)
		}
	}

	folded := strings.ToLower(query)
	return func(content string) bool {
		return strings.Contains(strings.ToLower(content), folded)
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
